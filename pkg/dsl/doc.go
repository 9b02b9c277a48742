/*
Package dsl provides a fluent builder for cmdform command trees.

It is the code-first alternative to tree files and cobra conversion, handy
for tests and for programs that describe their commands statically.

Example usage:

	root, err := dsl.Group("cli").
		Help("Project tooling.").
		Command("db", func(db *dsl.CommandBuilder) {
			db.Help("Database tasks.").
				Command("migrate", func(m *dsl.CommandBuilder) {
					m.Help("Run migrations.\n\b\ncli db migrate --steps 2").
						Option("steps", domain.TypeInt, "--steps").Default(1)
				})
		}).
		Build()
*/
package dsl

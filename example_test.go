package cmdform_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/aretw0/cmdform"
	"github.com/aretw0/cmdform/pkg/domain"
	"github.com/aretw0/cmdform/pkg/dsl"
)

func Example() {
	root := dsl.Group("cli").
		Help("Project tooling.").
		Command("build", func(c *dsl.CommandBuilder) {
			c.Help("Build the project.\n"+domain.PreformattedMarker+"\ncli build -o bin/").
				Option("out", domain.TypePath, "--out", "-o").Default("bin/")
		}).
		MustBuild()

	eng, err := cmdform.New(root)
	if err != nil {
		fmt.Println(err)
		return
	}

	form, err := eng.Form(context.Background(), "cli/build", domain.WebRenderOptions())
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, level := range form.Levels {
		fmt.Printf("%s: %q\n", level.Command.Name, level.HelpHTML)
		for _, f := range level.Fields {
			fmt.Printf("  %s (%s) default=%s\n", f.Name, f.Widget, f.Default)
		}
	}

	// Output:
	// cli: "Project tooling."
	// build: "Build the project.<pre>\ncli build -o bin/"
	//   1.0.option.path.out (text) default=bin/
}

func ExampleEngine_Resolve() {
	root := dsl.Group("cli").
		Command("db", func(c *dsl.CommandBuilder) {
			c.Command("migrate", nil).Command("dump", nil)
		}).
		MustBuild()

	eng, _ := cmdform.New(root)

	chain, _ := eng.Resolve(context.Background(), "cli/db/migrate")
	fmt.Println(chain.Leaf().Scope.CommandPath())

	_, err := eng.Resolve(context.Background(), "cli/db/seed")
	fmt.Println(errors.Is(err, domain.ErrCommandNotFound))
	fmt.Println(err)

	// Output:
	// cli db migrate
	// true
	// failed to find command for path "cli/db/seed": command "seed" not found, must be one of [dump, migrate]
}

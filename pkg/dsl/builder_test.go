package dsl_test

import (
	"testing"

	"github.com/aretw0/cmdform/pkg/domain"
	"github.com/aretw0/cmdform/pkg/dsl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	root, err := dsl.Group("cli").
		Short("Tooling").
		Help("Developer tooling.").
		Flag("verbose", "--verbose", "-v").
		Command("db", func(c *dsl.CommandBuilder) {
			c.Option("dsn", domain.TypeString, "--dsn").Required().Describe("Connection string")
			c.Command("migrate", func(c *dsl.CommandBuilder) {
				c.HelpOption().
					Help("Apply migrations.\n" + domain.PreformattedMarker + "\ncli db migrate --to 5").
					Option("to", domain.TypeInt, "--to").Default(0).
					Choice("direction", []string{"up", "down"}, "--direction").Default("up").
					Argument("target", domain.TypePath)
			})
		}).
		Command("debug", func(c *dsl.CommandBuilder) { c.Hidden() }).
		Build()
	require.NoError(t, err)

	assert.Equal(t, "cli", root.Name)
	assert.Equal(t, "Tooling", root.Short)
	require.Len(t, root.Params, 1)
	assert.True(t, root.Params[0].IsFlag)
	assert.Equal(t, []string{"db", "debug"}, root.ListCommands())
	assert.True(t, root.Commands[1].Hidden)

	db := root.Commands[0]
	require.Len(t, db.Params, 1)
	assert.True(t, db.Params[0].Required)
	assert.Equal(t, "Connection string", db.Params[0].Help)

	migrate, ok := db.Lookup("migrate")
	require.True(t, ok)
	assert.True(t, migrate.AddHelpOption)
	require.Len(t, migrate.Params, 3)
	assert.Equal(t, 0, migrate.Params[0].Default)
	assert.Equal(t, domain.TypeChoice, migrate.Params[1].Type)
	assert.Equal(t, "up", migrate.Params[1].Default)
	assert.Equal(t, domain.ParamArgument, migrate.Params[2].Kind)
	assert.True(t, migrate.Params[2].Required)
}

func TestBuilder_CommandReuse(t *testing.T) {
	root := dsl.Group("cli").
		Command("db", func(c *dsl.CommandBuilder) { c.Short("first") }).
		Command("db", func(c *dsl.CommandBuilder) { c.Command("migrate", nil) }).
		MustBuild()

	require.Len(t, root.Commands, 1)
	assert.Equal(t, "first", root.Commands[0].Short)
	assert.Equal(t, []string{"migrate"}, root.Commands[0].ListCommands())
}

func TestBuilder_BuildIsIndependent(t *testing.T) {
	b := dsl.Group("cli").Option("a", domain.TypeString, "--a")
	first := b.MustBuild()
	b.Option("b", domain.TypeString, "--b")
	second := b.MustBuild()

	assert.Len(t, first.Params, 1)
	assert.Len(t, second.Params, 2)
}

func TestBuilder_ModifiersWithoutParams(t *testing.T) {
	root := dsl.Group("cli").Required().Default(1).Describe("x").MustBuild()
	assert.Empty(t, root.Params)
}

func TestBuilder_Invalid(t *testing.T) {
	_, err := dsl.Group("cli").Command("a/b", nil).Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTree)
	assert.Contains(t, err.Error(), "failed to build command tree")

	assert.Panics(t, func() { dsl.Group("").MustBuild() })
}

package fields_test

import (
	"sync"
	"testing"

	"github.com/aretw0/cmdform/pkg/domain"
	"github.com/aretw0/cmdform/pkg/fields"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func command() *domain.Command {
	return &domain.Command{
		Name:          "build",
		AddHelpOption: true,
		Params: []domain.Param{
			{Name: "out", Kind: domain.ParamOption, Type: domain.TypePath, Opts: []string{"-o", "--out"}, Default: "bin/"},
			{Name: "jobs", Kind: domain.ParamOption, Type: domain.TypeInt, Opts: []string{"--jobs"}, Default: 4},
			{Name: "ratio", Type: domain.TypeFloat},
			{Name: "verbose", Type: domain.TypeBool, Opts: []string{"--verbose"}, IsFlag: true, Default: true},
			{Name: "mode", Type: domain.TypeChoice, Choices: []string{"fast", "safe"}},
			{Name: "manifest", Type: domain.TypeFile, Default: "ignored.txt"},
			{Name: "timeout", Type: domain.TypeDuration},
			{Name: "secret", Hidden: true},
			{Name: "target_dir", Kind: domain.ParamArgument, Required: true, Nargs: -1},
			{Name: "tags", Type: "semver", Default: []any{"v1", 2}},
		},
	}
}

func byParam(fs []domain.Field) map[string]domain.Field {
	m := make(map[string]domain.Field, len(fs))
	for _, f := range fs {
		m[f.Param] = f
	}
	return m
}

func TestExtract(t *testing.T) {
	cmd := command()
	got := fields.Extract(nil, domain.NewScope(cmd, nil), 2, domain.RenderOptions{})

	// hidden "secret" skipped, implicit help appended
	require.Len(t, got, 10)
	for i, f := range got {
		assert.Equal(t, i, f.ParamIndex)
		assert.Equal(t, 2, f.CommandIndex)
	}

	fs := byParam(got)

	out := fs["out"]
	assert.Equal(t, "2.0.option.path.out", out.Name)
	assert.Equal(t, "--out", out.Label)
	assert.Equal(t, fields.WidgetText, out.Widget)
	assert.Equal(t, "bin/", out.Default)

	jobs := fs["jobs"]
	assert.Equal(t, fields.WidgetNumber, jobs.Widget)
	assert.Equal(t, "1", jobs.Step)
	assert.Equal(t, "4", jobs.Default)

	assert.Equal(t, "any", fs["ratio"].Step)
	assert.Equal(t, "2.2.option.float.ratio", fs["ratio"].Name)

	verbose := fs["verbose"]
	assert.Equal(t, fields.WidgetCheckbox, verbose.Widget)
	assert.True(t, verbose.Checked)
	assert.Empty(t, verbose.Default)

	mode := fs["mode"]
	assert.Equal(t, fields.WidgetSelect, mode.Widget)
	assert.Equal(t, []string{"fast", "safe"}, mode.Choices)

	manifest := fs["manifest"]
	assert.Equal(t, fields.WidgetFile, manifest.Widget)
	assert.Empty(t, manifest.Default)

	assert.Equal(t, "e.g. 1m30s", fs["timeout"].Placeholder)

	target := fs["target_dir"]
	assert.Equal(t, "2.7.argument.string.target_dir", target.Name)
	assert.Equal(t, "target dir", target.Label)
	assert.True(t, target.Required)
	assert.True(t, target.Multiple)

	tags := fs["tags"]
	assert.Equal(t, fields.WidgetText, tags.Widget, "unknown types fall back to text")
	assert.Equal(t, "v1,2", tags.Default)

	help := got[len(got)-1]
	assert.Equal(t, "help", help.Param)
	assert.Equal(t, "2.9.option.bool.help", help.Name)
	assert.Equal(t, fields.WidgetCheckbox, help.Widget)
}

func TestExtract_SuppressHelpOption(t *testing.T) {
	cmd := command()
	got := fields.Extract(nil, domain.NewScope(cmd, nil), 0, domain.WebRenderOptions())

	assert.Len(t, got, 9)
	assert.NotContains(t, byParam(got), "help")
	// the tree itself is untouched
	assert.True(t, cmd.AddHelpOption)
	assert.Len(t, cmd.Params, 10)
}

func TestRegistry_Register(t *testing.T) {
	r := fields.DefaultRegistry()
	r.Register("color", func(_ domain.Param, f *domain.Field) {
		f.Widget = "color"
	})
	// overwrite
	r.Register(domain.TypeInt, func(_ domain.Param, f *domain.Field) {
		f.Widget = "range"
	})

	cmd := &domain.Command{Name: "x", Params: []domain.Param{
		{Name: "bg", Type: "color"},
		{Name: "n", Type: domain.TypeInt},
	}}
	fs := byParam(fields.Extract(r, domain.NewScope(cmd, nil), 0, domain.RenderOptions{}))

	assert.Equal(t, "color", fs["bg"].Widget)
	assert.Equal(t, "range", fs["n"].Widget)
}

func TestRegistry_Concurrent(t *testing.T) {
	r := fields.DefaultRegistry()
	cmd := command()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			r.Register("custom", func(_ domain.Param, f *domain.Field) { f.Widget = "custom" })
		}()
		go func() {
			defer wg.Done()
			_ = fields.Extract(r, domain.NewScope(cmd, nil), 0, domain.RenderOptions{})
		}()
	}
	wg.Wait()
}

func TestParams(t *testing.T) {
	cmd := &domain.Command{Name: "x", Params: []domain.Param{{Name: "a"}, {Name: "b", Hidden: true}}}
	assert.Len(t, fields.Params(cmd, domain.RenderOptions{}), 1)

	cmd.AddHelpOption = true
	assert.Len(t, fields.Params(cmd, domain.RenderOptions{}), 2)
	assert.Len(t, fields.Params(cmd, domain.WebRenderOptions()), 1)
}

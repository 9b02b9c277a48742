package main

import (
	"fmt"
	"os"

	"github.com/aretw0/cmdform"
	"github.com/aretw0/cmdform/internal/cli"
	"github.com/aretw0/cmdform/internal/config"
	"github.com/aretw0/cmdform/internal/logging"
	"github.com/aretw0/cmdform/pkg/domain"
	"github.com/spf13/cobra"
)

var (
	cfg    = config.Default()
	logger = logging.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "cmdform",
	Short: "cmdform turns command trees into web forms",
	Long: `cmdform resolves slash separated command paths in a command tree and renders
every command along the path as an HTML form with its help text.

Trees come from a YAML/JSON file (--tree) or from this CLI itself (--self).`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML configuration file")
	rootCmd.PersistentFlags().StringP("tree", "t", "", "Command tree file (YAML or JSON)")
	rootCmd.PersistentFlags().Bool("self", false, "Use the cmdform CLI's own command tree")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")
}

// loadConfig layers defaults, the config file, CMDFORM_* variables and the
// flags that were set explicitly, in that order.
func loadConfig(cmd *cobra.Command, _ []string) error {
	cfg = config.Default()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		if err := cfg.FromFile(path); err != nil {
			return err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return err
	}
	if err := applyFlags(cmd, &cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger = logging.New(level)
	return nil
}

func applyFlags(cmd *cobra.Command, c *config.Config) error {
	flags := cmd.Flags()
	var err error

	set := func(name string, fn func() error) {
		if err == nil && flags.Lookup(name) != nil && flags.Changed(name) {
			err = fn()
		}
	}

	set("tree", func() (e error) { c.TreeFile, e = flags.GetString("tree"); return })
	set("self", func() (e error) { c.Self, e = flags.GetBool("self"); return })
	set("log-level", func() (e error) { c.LogLevel, e = flags.GetString("log-level"); return })
	set("addr", func() (e error) { c.Addr, e = flags.GetString("addr"); return })
	set("title", func() (e error) { c.Title, e = flags.GetString("title"); return })
	set("form-action", func() (e error) { c.FormAction, e = flags.GetString("form-action"); return })
	set("metrics", func() (e error) { c.Metrics, e = flags.GetBool("metrics"); return })
	set("cache", func() (e error) { c.Cache.Backend, e = flags.GetString("cache"); return })
	set("cache-ttl", func() (e error) { c.Cache.TTL, e = flags.GetDuration("cache-ttl"); return })
	set("redis-addr", func() (e error) { c.Cache.RedisAddr, e = flags.GetString("redis-addr"); return })
	set("redis-db", func() (e error) { c.Cache.RedisDB, e = flags.GetInt("redis-db"); return })

	return err
}

// newEngine builds the engine for the configured tree source.
func newEngine(cmd *cobra.Command, hooks ...domain.LifecycleHooks) (*cmdform.Engine, error) {
	opts := cli.EngineOptions{TreeFile: cfg.TreeFile, Hooks: domain.ComposeHooks(hooks...)}
	if cfg.Self {
		opts.Self = rootCmd
	}
	return cli.CreateEngine(cmd.Context(), opts, logger.With("component", "engine"))
}

// pathArg returns the command path argument, defaulting to the root.
func pathArg(engine *cmdform.Engine, args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return engine.Root().Name
}

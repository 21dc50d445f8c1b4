// Package cli implements the kata command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/kata/pkg/buildinfo"
	"github.com/matzehuels/kata/pkg/catalog"
	"github.com/matzehuels/kata/pkg/observability"
)

// appName is the application name used for directories and display.
const appName = "kata"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config

	verbose    bool
	configPath string
}

// New creates a new CLI instance with a default logger and default config.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: defaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "kata runs small string and list exercises",
		Long: `kata is a workbench of small coding exercises: text transformers, counting
utilities, sequence filters and threshold classifiers, plus a minimal grep.

Run 'kata list' to see every exercise and 'kata run <name> [args...]' to run one.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/kata/config.toml)")

	root.AddCommand(c.runCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.pickCommand())
	root.AddCommand(c.grepCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the config file, applies the log level and attaches the
// logger to the command context. It runs before every subcommand.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg

	level := LogInfo
	if c.verbose || cfg.Verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)
	observability.SetKataHooks(logHooks{logger: c.Logger})

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	c.Logger.Debug("config loaded", "path", cfg.path, "group_width", cfg.GroupWidth, "delete_cap", cfg.DeleteCap)
	return nil
}

// newCatalog builds the catalog from the loaded config.
func (c *CLI) newCatalog() (*catalog.Catalog, error) {
	opts, err := c.Config.Options()
	if err != nil {
		return nil, err
	}
	return catalog.New(opts), nil
}

package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/kata/pkg/errors"
)

// runOpts holds the flags that override config for a single run.
type runOpts struct {
	width int
	pad   string
	cap   int
}

// apply copies every flag the user set onto the CLI config.
func (o runOpts) apply(cmd *cobra.Command, cfg *Config) {
	if cmd.Flags().Changed("width") {
		cfg.GroupWidth = o.width
	}
	if cmd.Flags().Changed("pad") {
		cfg.Pad = o.pad
	}
	if cmd.Flags().Changed("cap") {
		cfg.DeleteCap = o.cap
	}
}

// runCommand creates the run command.
func (c *CLI) runCommand() *cobra.Command {
	var opts runOpts

	cmd := &cobra.Command{
		Use:   "run <kata> [args...]",
		Short: "Run one kata on the given arguments",
		Long: `Run one kata on the given arguments and print the result.

Text katas join their arguments with spaces, so quoting is optional:

  kata run disemvowel This website is for losers LOL!
  kata run delete-nth 20 37 20 21
  kata run categorize 55,8 54,8

Flags must come before the kata name; everything after it is passed to the
kata unchanged, so negative numbers work: kata run min 3 -7 2`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.Invalid("expected <kata> [args...], got no kata name")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.apply(cmd, &c.Config)
			return c.runKata(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], args[1:])
		},
	}
	cmd.Flags().SetInterspersed(false)

	cmd.Flags().IntVar(&opts.width, "width", 2, "group width for the group kata")
	cmd.Flags().StringVar(&opts.pad, "pad", "_", "pad character for the group kata")
	cmd.Flags().IntVar(&opts.cap, "cap", 1, "occurrence cap for the delete-nth kata")

	return cmd
}

// runKata runs name from the catalog and prints the result on out.
func (c *CLI) runKata(ctx context.Context, out, errOut io.Writer, name string, args []string) error {
	cat, err := c.newCatalog()
	if err != nil {
		return err
	}

	result, err := cat.Run(ctx, name, args)
	if err != nil {
		if errors.Is(err, errors.ErrCodeNotFound) {
			printNextStep(errOut, "See available katas", "kata list")
		}
		return fmt.Errorf("%s: %w", name, err)
	}

	fmt.Fprintln(out, result)
	return nil
}

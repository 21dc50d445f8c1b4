package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/kata/pkg/errors"
	"github.com/matzehuels/kata/pkg/grep"
)

// grepOpts holds the command-line flags for the grep command.
type grepOpts struct {
	match      bool // print only matching lines
	ignoreCase bool // case-insensitive matching (implies match)
}

// grepCommand creates the grep command.
func (c *CLI) grepCommand() *cobra.Command {
	var opts grepOpts

	cmd := &cobra.Command{
		Use:   "grep <query> <filename>",
		Short: "Print a file, or the lines of it that contain a query",
		Long: `Print a file, or the lines of it that contain a query.

Without flags the whole file is printed after a "With text:" header. With
--match only lines containing the query are printed. A missing file,
unreadable file, or file that is not UTF-8 text aborts with an error.`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.Invalid("expected <query> <filename>, got %d argument(s)", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("ignore-case") {
				opts.ignoreCase = c.Config.Grep.IgnoreCase
			}
			cfg, err := grep.NewConfig(append([]string{"grep"}, args...))
			if err != nil {
				return err
			}
			return runGrep(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.match, "match", "m", false, "print only lines containing the query")
	cmd.Flags().BoolVarP(&opts.ignoreCase, "ignore-case", "i", false, "match without regard to case (implies --match)")

	return cmd
}

func runGrep(ctx context.Context, out, errOut io.Writer, cfg grep.Config, opts grepOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	logger.Debug("grep", "query", cfg.Query, "file", cfg.Filename)

	if !opts.match && !opts.ignoreCase {
		if err := grep.Run(cfg, out); err != nil {
			return err
		}
		prog.done("Read " + cfg.Filename)
		return nil
	}

	contents, err := grep.ReadContents(cfg)
	if err != nil {
		return err
	}

	search := grep.Search
	if opts.ignoreCase {
		search = grep.SearchInsensitive
	}
	lines := search(cfg.Query, contents)
	prog.done(fmt.Sprintf("Searched %s", cfg.Filename))

	if len(lines) == 0 {
		printWarning(errOut, "No lines in %s contain %q", cfg.Filename, cfg.Query)
		return nil
	}
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
	return nil
}

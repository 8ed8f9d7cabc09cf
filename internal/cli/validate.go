package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clbarnes/jsoncanvas/pkg/canvasio"
)

// validateOpts holds the command-line flags for the validate command.
type validateOpts struct {
	strict bool // treat duplicate ids as failures
}

// newValidateCmd creates the validate command. It decodes each file and
// runs the advisory integrity checks: unknown edge endpoints always fail
// validation; duplicate ids fail only with --strict (or strict=true in
// the config) and warn otherwise.
func newValidateCmd() *cobra.Command {
	var opts validateOpts

	cmd := &cobra.Command{
		Use:   "validate <file>...",
		Short: "Check canvas files for schema and reference problems",
		Long: `Validate decodes each file against the canvas schema and checks that
every edge endpoint references a declared node.

A file fails validation when it cannot be decoded or when edges reference
unknown nodes. Duplicate node or edge ids are reported as warnings, or as
failures with --strict.

Examples:
  jsoncanvas validate board.canvas
  jsoncanvas validate --strict *.canvas`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("strict") {
				opts.strict = configFromContext(cmd.Context()).Strict
			}
			return runValidate(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.strict, "strict", false, "treat duplicate ids as failures")

	return cmd
}

// runValidate validates each file in turn and returns an error naming the
// number of failing files, so the process exits non-zero on any failure.
func runValidate(cmd *cobra.Command, paths []string, opts validateOpts) error {
	logger := loggerFromContext(cmd.Context())
	out := cmd.OutOrStdout()

	failed := 0
	for _, path := range paths {
		logger.Debugf("validating %s", path)

		c, err := canvasio.ImportJSON(path)
		if err != nil {
			printError(out, "%s: %v", path, err)
			failed++
			continue
		}

		ok := true
		if unknown := c.UnknownNodes(); len(unknown) > 0 {
			printError(out, "%s: edges reference %d unknown node(s): %v", path, len(unknown), unknown)
			ok = false
		}
		if dups := c.DuplicateIDs(); len(dups) > 0 {
			if opts.strict {
				printError(out, "%s: duplicate id(s): %v", path, dups)
				ok = false
			} else {
				printWarning(out, "%s: duplicate id(s): %v", path, dups)
			}
		}

		if ok {
			printSuccess(out, "%s: %d node(s), %d edge(s)", path, len(c.Nodes), len(c.Edges))
		} else {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed validation", failed, len(paths))
	}
	return nil
}

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/vieta/internal/codec"
	"github.com/roach88/vieta/internal/docstore"
	"github.com/roach88/vieta/internal/record"
)

// ShowOptions holds flags for the show command.
type ShowOptions struct {
	*RootOptions
	File string
}

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ShowOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "show",
		Short:         "Print the current document with decoded roots",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.File, "file", docstore.DefaultPath, "document path")

	return cmd
}

// showPayload is the JSON shape emitted by show.
type showPayload struct {
	File     string          `json:"file"`
	Document record.Document `json:"document"`
	Alpha    string          `json:"alpha"`
	Beta     string          `json:"beta"`
}

func runShow(opts *ShowOptions, cmd *cobra.Command) error {
	doc, err := docstore.Load(opts.File)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load document", err)
	}

	alpha, beta, err := doc.DecodedRoots(codec.Base64{})
	if err != nil {
		return WrapExitError(ExitFailure, "failed to decode roots", err)
	}

	if opts.Format == "json" {
		formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
		return formatter.Success(showPayload{
			File:     opts.File,
			Document: doc,
			Alpha:    alpha,
			Beta:     beta,
		})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Document: %s\n", opts.File)
	fmt.Fprintf(out, "  form: %s\n", doc.Polynomial.Form)
	fmt.Fprintf(out, "  a = %d, b = %d, c = %s\n", doc.Polynomial.A, doc.Polynomial.B, describeC(doc.Polynomial.C))
	fmt.Fprintf(out, "  alpha = %s (stored as %s)\n", alpha, doc.Roots.Alpha)
	fmt.Fprintf(out, "  beta  = %s (stored as %s)\n", beta, doc.Roots.Beta)
	return nil
}

func describeC(c *float64) string {
	if c == nil {
		return "null"
	}
	return strconv.FormatFloat(*c, 'g', -1, 64)
}

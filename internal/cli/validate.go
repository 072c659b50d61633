package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/vieta/internal/docstore"
	"github.com/roach88/vieta/internal/schema"
)

// ValidateOptions holds flags for the validate command.
type ValidateOptions struct {
	*RootOptions
	File string
}

// ValidationResult holds validation results.
type ValidationResult struct {
	File  string `json:"file"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ValidateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the document against the embedded schema",
		Long: `Validate the on-disk document against the embedded CUE schema.

Checks that both sections are present, coefficients are integers, the
constant is a number or null, and the roots are strings.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.File, "file", docstore.DefaultPath, "document path")

	return cmd
}

func runValidate(opts *ValidateOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}

	data, err := os.ReadFile(opts.File)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read document", err)
	}

	if err := schema.Validate(data); err != nil {
		result := ValidationResult{File: opts.File, Valid: false, Error: err.Error()}
		if opts.Format == "json" {
			if encErr := formatter.Success(result); encErr != nil {
				return encErr
			}
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "INVALID %s\n  %v\n", opts.File, err)
		}
		return WrapExitError(ExitFailure, "document is invalid", err)
	}

	if opts.Format == "json" {
		return formatter.Success(ValidationResult{File: opts.File, Valid: true})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "OK %s\n", opts.File)
	return nil
}

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/extcheck/extcheck/internal/adapters/outbound/config"
	"github.com/extcheck/extcheck/internal/adapters/outbound/gitinfo"
	"github.com/extcheck/extcheck/internal/adapters/outbound/scanner"
	"github.com/extcheck/extcheck/internal/adapters/outbound/tui"
	"github.com/extcheck/extcheck/internal/application"
)

func newValidateCmd() *cobra.Command {
	var (
		jsonOutput bool
		strict     bool
	)

	cmd := &cobra.Command{
		Use:   "validate [path]",
		Short: "Cross-check manifest.json against the files it declares",
		Long:  "Load the project's manifest.json, validate its required fields, and verify that every declared icon, script, and popup resolves to an existing file. Fatal issues set exit code 1; warnings do not, unless --strict.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			svc := application.NewConsistencyService(scanner.New(), config.New(), gitinfo.New())

			report, err := svc.Run(path)
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderConsistencyReport(report))
			}

			if !report.OK() {
				return fmt.Errorf("%d critical issue(s) found", len(report.Issues))
			}
			if strict && len(report.Warnings) > 0 {
				return fmt.Errorf("%d warning(s) found (strict mode)", len(report.Warnings))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&strict, "strict", false, "Treat warnings as fatal for the exit code")

	return cmd
}

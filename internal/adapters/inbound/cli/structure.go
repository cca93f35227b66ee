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

func newStructureCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "structure [path]",
		Short: "Run the structural checklist against an extension project",
		Long:  "Execute the ordered checklist of file, content, and manifest checks against the project at path (default: current directory). Every check always runs; the exit code reports overall success.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			svc := application.NewStructureService(scanner.New(), config.New(), gitinfo.New())

			report, err := svc.Run(path)
			if err != nil {
				return fmt.Errorf("structure check failed: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderStructureReport(report))
			}

			if !report.OK() {
				return fmt.Errorf("%d structure check(s) failed", report.Failed())
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

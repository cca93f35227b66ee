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
	"github.com/extcheck/extcheck/internal/domain"
)

func newRefsCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "refs [path]",
		Short: "Show the manifest reference tree",
		Long:  "Render every file reference manifest.json declares (service worker, content scripts, popup, icons, web accessible resources) with a present/missing marker per node. Inspection only: missing files do not change the exit code.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			svc := application.NewConsistencyService(scanner.New(), config.New(), gitinfo.New())

			m, scan, list, err := svc.LoadManifest(path)
			if err != nil {
				return fmt.Errorf("loading manifest: %w", err)
			}

			tree := domain.BuildRefTree(m, scan, list.ExtensionDir)

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(tree)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderRefTree(tree))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/extcheck/extcheck/internal/domain"
)

const configFileName = ".extcheck.yaml"

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .extcheck.yaml configuration file",
		Long:  "Create a .extcheck.yaml carrying the default checklist, ready to edit for a different extension layout.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, configFileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", configFileName)
				}
			}

			if err := os.WriteFile(dest, []byte(generateConfig()), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configFileName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .extcheck.yaml")

	return cmd
}

// generateConfig renders the default checklist as a commented YAML template.
// Ordered output for readability.
func generateConfig() string {
	list := domain.DefaultChecklist()

	var b strings.Builder
	b.WriteString("# extcheck configuration\n\n")
	fmt.Fprintf(&b, "extension_dir: %s\n\n", list.ExtensionDir)

	b.WriteString("required_permissions:\n")
	for _, p := range list.RequiredPermissions {
		fmt.Fprintf(&b, "  - %s\n", p)
	}
	b.WriteString("\n")

	b.WriteString("# Paths are relative to extension_dir. class is the construct the\n")
	b.WriteString("# file must declare; tokens are extra literal substrings to require.\n")
	b.WriteString("source_files:\n")
	for _, sf := range list.SourceFiles {
		fmt.Fprintf(&b, "  - path: %s\n", sf.Path)
		fmt.Fprintf(&b, "    section: %s\n", sf.Section)
		if sf.Class != "" {
			fmt.Fprintf(&b, "    class: %s\n", sf.Class)
		}
		if len(sf.Tokens) > 0 {
			b.WriteString("    tokens:\n")
			for _, tok := range sf.Tokens {
				fmt.Fprintf(&b, "      - %s\n", tok)
			}
		}
	}
	b.WriteString("\n")

	b.WriteString("html_files:\n")
	for _, h := range list.HTMLFiles {
		fmt.Fprintf(&b, "  - %s\n", h)
	}
	b.WriteString("\n")

	b.WriteString("# Missing icons warn but never fail a run.\n")
	b.WriteString("icon_files:\n")
	for _, icon := range list.IconFiles {
		fmt.Fprintf(&b, "  - %s\n", icon)
	}
	b.WriteString("\n")

	b.WriteString("expected_dirs:\n")
	for _, d := range list.ExpectedDirs {
		fmt.Fprintf(&b, "  - %s\n", d)
	}
	b.WriteString("\n")

	b.WriteString("# Demo page path is relative to the project root, outside extension_dir.\n")
	fmt.Fprintf(&b, "demo_page:\n  path: %s\n  marker: %s\n", list.DemoPage.Path, list.DemoPage.Marker)

	return b.String()
}

package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "extcheck",
		Short:         "Static validation for browser extension projects",
		Long:          "extcheck validates a WebExtension project on disk: a structural checklist over the extension tree and a consistency check of every file reference the manifest declares.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newStructureCmd())
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newRefsCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}

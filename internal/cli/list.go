// internal/cli/list.go
package temno

import (
	"github.com/spf13/cobra"
)

// listCmd represents the 'list' command group for enumerating resources.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Group commands for listing resources",
	Long:  `The 'list' command groups subcommands that enumerate resources known to temno.`,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

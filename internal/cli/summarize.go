// internal/cli/summarize.go
package temno

import (
	"fmt"

	"github.com/mwiater/temno/internal/logging"
	"github.com/mwiater/temno/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// summarizeCmd implements 'summarize', which previews every text file in the
// data directory and, with --chunk, also splits each file into overlapping
// chunks and previews those.
var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Load and summarize text files from the data directory",
	Long:  `The 'summarize' command prints a bounded preview of each .txt file in the data directory, in sorted order. With --chunk it also splits each file into overlapping chunks (by sentence or by word) and previews the first few chunks.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		if cfg == nil {
			return fmt.Errorf("config is nil")
		}

		if err := logging.Init(cfg.LogFilePath()); err != nil {
			return fmt.Errorf("init logging: %w", err)
		}
		defer logging.Close()

		return report.Run(cmd.OutOrStdout(), cfg)
	},
}

func init() {
	summarizeCmd.Flags().Bool("chunk", false, "also chunk files after loading")
	_ = viper.BindPFlag("chunk", summarizeCmd.Flags().Lookup("chunk"))

	rootCmd.AddCommand(summarizeCmd)
}

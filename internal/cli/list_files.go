// internal/cli/list_files.go
package temno

import (
	"fmt"
	"path/filepath"

	"github.com/mwiater/temno/internal/corpus"
	"github.com/spf13/cobra"
)

// listFilesCmd implements 'list files', which enumerates the .txt files the
// other commands would process, after filtering, in sorted order.
var listFilesCmd = &cobra.Command{
	Use:   "files",
	Short: "List the text files in the data directory",
	Long:  `The 'files' subcommand lists every .txt file in the data directory that matches the configured filter, in the order they would be processed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		if cfg == nil {
			return fmt.Errorf("config is nil")
		}

		dataDir, err := corpus.Resolve(cfg.DataDirPath())
		if err != nil {
			return err
		}
		files, err := corpus.ListTextFiles(dataDir)
		if err != nil {
			return err
		}
		files, err = corpus.Filter(files, cfg.FilterPattern())
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if len(files) == 0 {
			fmt.Fprintf(w, "No .txt files found in %s\n", dataDir)
			return nil
		}
		for _, path := range files {
			fmt.Fprintln(w, filepath.Base(path))
		}
		return nil
	},
}

func init() {
	listCmd.AddCommand(listFilesCmd)
}

// internal/cli/browse.go
package temno

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mwiater/temno/internal/chunker"
	"github.com/mwiater/temno/internal/corpus"
	"github.com/mwiater/temno/internal/tui"
	"github.com/spf13/cobra"
)

// browseCmd implements 'browse', an interactive pager over the chunks of one
// file. The file argument is a name inside the data directory or a path.
var browseCmd = &cobra.Command{
	Use:   "browse <file>",
	Short: "Interactively browse a file's chunks",
	Long:  `The 'browse' command chunks one text file with the configured method, size, and overlap, then opens an interactive viewer for paging through the resulting chunks.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		if cfg == nil {
			return fmt.Errorf("config is nil")
		}

		method, err := chunker.ParseMethod(cfg.ChunkMethod())
		if err != nil {
			return err
		}

		path := args[0]
		if _, err := os.Stat(path); err != nil {
			// Fall back to a name inside the data directory.
			dataDir, dirErr := corpus.Resolve(cfg.DataDirPath())
			if dirErr != nil {
				return dirErr
			}
			path = filepath.Join(dataDir, args[0])
		}

		text, err := corpus.LoadTextFile(path)
		if err != nil {
			return err
		}
		chunks, err := chunker.Split(text, chunker.Options{
			Method:    method,
			ChunkSize: cfg.ChunkSizeWords(),
			Overlap:   cfg.OverlapWords(),
		})
		if err != nil {
			return err
		}

		return tui.Browse(filepath.Base(path), method, chunks)
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

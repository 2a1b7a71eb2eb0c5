// internal/cli/root.go
package temno

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/mwiater/temno/internal/appconfig"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
)

var rootCmd = &cobra.Command{
	Use:   "temno",
	Short: "temno — preview and chunk plain-text corpora for retrieval pipelines",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 1) Load config (file or defaults)
		if err := ensureConfigLoaded(); err != nil {
			return err
		}

		// 2) If user did NOT set a flag, copy the config value into the flag so
		//    both pflags and viper reflect the same, final value.
		if !cmd.Flags().Changed("debug") {
			_ = cmd.Flags().Set("debug", strconv.FormatBool(viper.GetBool("debug")))
		}

		// 3) Materialize the fully merged configuration into currentConfig
		//    (flags > config > defaults). This gives other packages a stable snapshot.
		var cfg appconfig.Config
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("unmarshal config: %w", err)
		}
		cfg.ConfigPath = viper.ConfigFileUsed()
		currentConfig = &cfg

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// --config (defaults to the standard path)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/config.json)")

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("data-dir", "Data", "directory containing the .txt corpus")
	rootCmd.PersistentFlags().Int("chunk-size", 200, "chunk size in words")
	rootCmd.PersistentFlags().Int("overlap", 50, "overlap size in words")
	rootCmd.PersistentFlags().String("method", "sentence", "chunking method: sentence or word")
	rootCmd.PersistentFlags().Int("preview-chunks", 3, "number of chunk previews to show")
	rootCmd.PersistentFlags().Int("preview-chars", 400, "preview length in characters")
	rootCmd.PersistentFlags().String("filter", "*", "glob pattern to filter file names (e.g., '*Summary*.txt')")

	// Bind flags to Viper keys (flags override config)
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("dataDir", rootCmd.PersistentFlags().Lookup("data-dir"))
	_ = viper.BindPFlag("chunkSize", rootCmd.PersistentFlags().Lookup("chunk-size"))
	_ = viper.BindPFlag("overlap", rootCmd.PersistentFlags().Lookup("overlap"))
	_ = viper.BindPFlag("method", rootCmd.PersistentFlags().Lookup("method"))
	_ = viper.BindPFlag("previewChunks", rootCmd.PersistentFlags().Lookup("preview-chunks"))
	_ = viper.BindPFlag("previewChars", rootCmd.PersistentFlags().Lookup("preview-chars"))
	_ = viper.BindPFlag("filter", rootCmd.PersistentFlags().Lookup("filter"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// ensureConfigLoaded reads the config file, validates it against the schema,
// and falls back to defaults when no file exists.
func ensureConfigLoaded() error {
	viper.SetDefault("debug", false)
	viper.SetDefault("chunk", false)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || os.IsNotExist(err)
		if missing && cfgFile == appconfig.DefaultConfigPath {
			// No file at the default path: fine, we'll use defaults/flags
			return nil
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	if file := viper.ConfigFileUsed(); file != "" {
		if err := appconfig.ValidateFile(file); err != nil {
			return err
		}
	}
	return nil
}

// GetConfig returns the loaded application configuration for other packages.
func GetConfig() *appconfig.Config {
	return currentConfig
}

// DebugEnabled reflects the merged Viper state.
func DebugEnabled() bool { return viper.GetBool("debug") }

// Package cli holds the cryptonews command tree.
package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/m3rciful/cryptonews/core/buildinfo"
	corecmd "github.com/m3rciful/cryptonews/core/cmd"
	"github.com/m3rciful/cryptonews/news/bot"
)

// ConfigEnvVar names the environment variable holding the config path.
const ConfigEnvVar = "CONFIG_PATH"

// NewRootCmd builds the command tree. run is the long-running bot; the rest
// work offline against the compiled-in catalogs.
func NewRootCmd() *cobra.Command {
	var configPath, envFile string

	root := &cobra.Command{
		Use:           "cryptonews",
		Short:         "Menu-driven crypto news Telegram bot",
		Long:          "cryptonews serves a browsable crypto news catalog through Telegram commands and inline buttons.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default $"+ConfigEnvVar+" or config.yaml)")
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the config; missing is fine")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return loadEnvFile(envFile)
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "run",
			Short: "Run the Telegram bot",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return corecmd.Run(corecmd.Options{
					ConfigPath:        configPath,
					ConfigEnvVar:      ConfigEnvVar,
					DefaultConfigPath: "config.yaml",
					LoadConfig:        bot.LoadCarrier,
					Bootstrap:         bot.Bootstrap,
				})
			},
		},
		newPreviewCmd(),
		newBrowseCmd(),
		newCatalogCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				printVersion(cmd.OutOrStdout())
			},
		},
	)
	return root
}

// loadEnvFile exports the variables in path without overriding ones already
// set, so BOT_TOKEN and friends can live in a local .env file.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "cryptonews %s\n", buildinfo.String())
}

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

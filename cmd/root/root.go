// Package root contains the root command for the application.
package root

import (
	"akaul/billsnap/internal/config"
	"akaul/billsnap/internal/container"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands.
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands.
	Log = logrus.New()

	// App is the dependency container, built in PersistentPreRun.
	App *container.Container

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "billsnap",
		Short: "A CLI tool to extract structured bill data from scanned images.",
		Long: `billsnap recognizes the text on a bill image and extracts vendor,
amount, date, category, and description into a structured record.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to billsnap!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				return err
			}

			App, err = container.NewContainer(cfg)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if App != nil {
				if err := App.Close(); err != nil {
					Log.Warnf("Failed to close application resources: %v", err)
				}
			}
		},
	}

	// SharedFlags holds common flags accessible to all commands.
	SharedFlags = CommonFlags{}

	// Text is the categorize command's input snippet.
	Text string

	// Language overrides the configured OCR language for one scan.
	Language string
)

// Init initializes the root command and all flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output CSV file")
}

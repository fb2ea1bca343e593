package cmd

import (
	"fmt"
	"os"

	"log/slog"

	"github.com/gookit/event"
	"github.com/printdeck/printdeck/cmd/flags"
	"github.com/printdeck/printdeck/internal/eventType"

	"github.com/spf13/cobra"
)

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

var RootCmd = &cobra.Command{
	Use:   "printdeck",
	Short: "PrintDeck is a web dashboard for Duet-based machine control",
	Long: `PrintDeck hosts a web-based machine-control dashboard and its
plugin subsystem: built-in UI plugins plus externally installed ones.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.SetArgs([]string{"server"})
		cmd.Execute()
	},
}

func Execute() {
	if err := os.MkdirAll(flags.PluginsDir, os.ModePerm); err != nil {
		slog.Error("Failed to create plugins directory", slog.Any("error", err))
	}
	err, _ := event.Trigger(eventType.ProcessStart, event.M{})
	if err != nil {
		slog.Error("Something went wrong during process start.", slog.Any("error", err))
		os.Exit(1)
	}
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&flags.ConfigFile, "config", "c", GetEnv("PRINTDECK_CONFIG_FILE", "./data/printdeck.json"), "Configuration file path [env: PRINTDECK_CONFIG_FILE]")
	RootCmd.PersistentFlags().StringVarP(&flags.Listen, "listen", "l", GetEnv("PRINTDECK_LISTEN", ":8080"), "Listen address [env: PRINTDECK_LISTEN]")
	RootCmd.PersistentFlags().StringVarP(&flags.PluginsDir, "plugins", "p", GetEnv("PRINTDECK_PLUGINS_DIR", "./data/plugins"), "External plugin directory [env: PRINTDECK_PLUGINS_DIR]")
}

package cmd

import (
	"context"
	"os"
	"time"

	"github.com/printdeck/printdeck/internal/conf"
	"github.com/printdeck/printdeck/internal/dbcore"
	"github.com/printdeck/printdeck/internal/plugin"
	"github.com/printdeck/printdeck/internal/scheduler"
	"github.com/printdeck/printdeck/internal/server"
	"github.com/printdeck/printdeck/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var ServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the dashboard server",
	Long:  `Start the dashboard server`,
	Run: func(cmd *cobra.Command, args []string) {
		fxApp := fx.New(
			conf.FxModule(),
			dbcore.FxModule(),
			store.FxModule(),
			plugin.FxModule(),
			server.FxModule(),
			scheduler.FxModule(),
			fx.NopLogger,
		)
		if err := runFxUntilSignal(context.Background(), fxApp, 5*time.Second); err != nil {
			cmd.PrintErrln(err)
			os.Exit(1)
		}
	},
}

func init() {
	RootCmd.AddCommand(ServerCmd)
}

package main

import (
	"log"
	"log/slog"

	"github.com/printdeck/printdeck/cmd"
	logutil "github.com/printdeck/printdeck/internal/log"
	"github.com/printdeck/printdeck/internal/version"
)

func main() {
	if version.IsDevelopment() {
		logutil.SetupGlobalLogger(slog.LevelDebug)
	} else {
		logutil.SetupGlobalLogger(slog.LevelInfo)
	}

	log.Printf("PrintDeck %s (hash: %s)", version.CurrentVersion, version.CommitHash)

	cmd.Execute()
}

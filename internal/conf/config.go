package conf

import (
	"encoding/json"
	"fmt"
	"os"

	"log/slog"

	"github.com/gookit/event"
	"github.com/printdeck/printdeck/cmd/flags"
	"github.com/printdeck/printdeck/internal/eventType"
)

func Default() Config {
	return Config{
		Site: Site{
			Sitename:    "PrintDeck",
			Description: "PrintDeck, a web dashboard for Duet-based machine control.",
			AllowCors:   false,
			Theme:       "default",
		},
		Plugins: Plugins{
			Dir:          flags.PluginsDir,
			AutoDiscover: true,
		},
		Database: Database{
			DatabaseType: "sqlite",
			DatabaseFile: "./data/printdeck.db",
		},
		Listen: flags.Listen,
	}
}

// Override replaces the in-memory configuration and writes it to disk.
func Override(cst Config) error {
	b, err := json.MarshalIndent(cst, "", "  ")
	if err != nil {
		return err
	}

	oldConf := *Conf
	Conf = &cst

	err, _ = event.Trigger(eventType.ConfigUpdated, event.M{
		"old": oldConf,
		"new": cst,
	})
	if err != nil {
		// Roll the update back so listeners and file stay consistent.
		Conf = &oldConf
		b, _ = json.MarshalIndent(oldConf, "", "  ")
		slog.Error("Configuration update reverted due to error in ConfigUpdated event.", slog.Any("error", err))
	}
	if werr := os.WriteFile(flags.ConfigFile, b, 0644); werr != nil {
		return werr
	}
	return err
}

// FromEvent extracts the old and new configuration from a ConfigUpdated event.
func FromEvent(e event.Event) (Config, Config, error) {
	oldConf, ok := e.Get("old").(Config)
	if !ok {
		return Config{}, Config{}, fmt.Errorf("FromEvent: 'old' key value is not of type Config. Got: %T", e.Get("old"))
	}

	newConf, ok := e.Get("new").(Config)
	if !ok {
		return Config{}, Config{}, fmt.Errorf("FromEvent: 'new' key value is not of type Config. Got: %T", e.Get("new"))
	}

	return oldConf, newConf, nil
}

func init() {
	Conf = &Config{}
}

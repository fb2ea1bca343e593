package dbcore

import (
	"context"

	"github.com/gookit/event"
	"github.com/printdeck/printdeck/internal/conf"
	"github.com/printdeck/printdeck/internal/eventType"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// FxModule provides the database instance and lifecycle hooks.
func FxModule() fx.Option {
	return fx.Options(
		fx.Provide(provideDB),
		fx.Invoke(registerDBHooks),
	)
}

func provideDB(cfg *conf.Config) (*gorm.DB, error) {
	if err := BootWithConfig(cfg); err != nil {
		return nil, err
	}
	return GetDBInstance(), nil
}

func registerDBHooks(lc fx.Lifecycle, _db *gorm.DB) {
	// _db forces construction of DB before installing hooks.
	lc.Append(fx.Hook{
		OnStart: func(_ctx context.Context) error {
			event.On(eventType.SchedulerEvery5Minutes, event.ListenerFunc(func(e event.Event) error {
				db := GetDBInstance()
				if db == nil {
					return nil
				}
				if conf.Conf.Database.DatabaseType == "sqlite" || conf.Conf.Database.DatabaseType == "" {
					db.Exec("PRAGMA wal_checkpoint(TRUNCATE);")
				}
				return nil
			}))
			return nil
		},
	})
}

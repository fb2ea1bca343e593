package scheduler

import (
	"context"
	"time"

	"github.com/gookit/event"
	"github.com/printdeck/printdeck/internal/eventType"
	"go.uber.org/fx"
)

type Module struct {
	stops []StopFunc
}

func FxModule() fx.Option {
	return fx.Options(
		fx.Provide(func() *Module { return &Module{} }),
		fx.Invoke(registerSchedulerLifecycle),
	)
}

func registerSchedulerLifecycle(lc fx.Lifecycle, m *Module) {
	lc.Append(fx.Hook{
		OnStart: func(_ctx context.Context) error {
			m.start()
			return nil
		},
		OnStop: func(_ctx context.Context) error {
			m.stop()
			return nil
		},
	})
}

func (m *Module) start() {
	m.stops = append(m.stops,
		Every(1*time.Minute, func() { event.Async(eventType.SchedulerEveryMinute, event.M{"interval": "1m"}) }),
		Every(5*time.Minute, func() { event.Async(eventType.SchedulerEvery5Minutes, event.M{"interval": "5m"}) }),
	)
}

func (m *Module) stop() {
	for i := len(m.stops) - 1; i >= 0; i-- {
		if m.stops[i] != nil {
			m.stops[i]()
		}
	}
	m.stops = nil
}

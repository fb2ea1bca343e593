package server

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"
	"github.com/gookit/event"
	_ "github.com/printdeck/printdeck/internal"
	"github.com/printdeck/printdeck/internal/conf"
	"github.com/printdeck/printdeck/internal/eventType"
	logutil "github.com/printdeck/printdeck/internal/log"
	"github.com/printdeck/printdeck/internal/version"
	"go.uber.org/fx"
)

// FxModule provides the HTTP engine and its lifecycle. Routes themselves are
// registered by the packages owning them via ServerInitializeStart.
func FxModule() fx.Option {
	return fx.Options(
		fx.Provide(newEngine),
		fx.Invoke(registerServerLifecycle),
	)
}

func newEngine(cfg *conf.Config) *gin.Engine {
	if !version.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(logutil.GinLogger())
	r.Use(logutil.GinRecovery())

	corsEnabled := &atomic.Bool{}
	corsEnabled.Store(cfg.Site.AllowCors)

	r.Use(func(c *gin.Context) {
		if corsEnabled.Load() {
			c.Header("Access-Control-Allow-Origin", "*")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, HEAD, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Origin, Content-Length, Content-Type, Authorization, Accept, X-Requested-With")
			c.Header("Access-Control-Max-Age", "43200")
			if c.Request.Method == "OPTIONS" {
				c.AbortWithStatus(204)
				return
			}
		}
		c.Next()
	})

	event.On(eventType.ConfigUpdated, event.ListenerFunc(func(e event.Event) error {
		newConf := e.Get("new").(conf.Config)
		corsEnabled.Store(newConf.Site.AllowCors)
		return nil
	}), event.High)

	return r
}

type httpServer struct {
	srv     *http.Server
	stopped chan struct{}
}

func registerServerLifecycle(lc fx.Lifecycle, engine *gin.Engine, cfg *conf.Config) {
	s := &httpServer{stopped: make(chan struct{})}

	lc.Append(fx.Hook{
		OnStart: func(_ctx context.Context) error {
			if err, _ := event.Trigger(eventType.ServerInitializeStart, event.M{"engine": engine}); err != nil {
				slog.Error("Route registration failed", slog.Any("error", err))
				return err
			}

			s.srv = &http.Server{Addr: cfg.Listen, Handler: engine}
			event.Trigger(eventType.ServerInitializeDone, event.M{})

			log.Printf("Starting server on %s ...", cfg.Listen)
			go func() {
				defer close(s.stopped)
				if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					slog.Error("Server terminated", slog.Any("error", err))
					event.Trigger(eventType.ProcessExit, event.M{})
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			event.Trigger(eventType.ProcessExit, event.M{})
			if s.srv == nil {
				return nil
			}
			err := s.srv.Shutdown(ctx)
			select {
			case <-s.stopped:
			case <-ctx.Done():
			}
			return err
		},
	})
}

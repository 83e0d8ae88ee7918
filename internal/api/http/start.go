package http

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/dermee/dermee_backend/config"
	"github.com/dermee/dermee_backend/internal/api/http/router"
	"github.com/dermee/dermee_backend/internal/app"
	"github.com/dermee/dermee_backend/internal/ws"
)

// Start boots the full API: REST app, websocket server and NATS workers.
func Start(cfg *config.Config, timeout time.Duration) {
	fx.New(
		fx.Supply(cfg),
		app.InfraModule,
		app.ServiceModule,
		app.WorkerModule,
		router.Module,
		Module, // http.Module from server.go

		// Invoking the servers forces their construction, which registers
		// the OnStart hooks that actually listen.
		fx.Invoke(func(*fiber.App) {}),
		fx.Invoke(func(*ws.Server) {}),

		fx.StopTimeout(timeout),
		fx.WithLogger(func() fxevent.Logger { return fxevent.NopLogger }),
	).Run()
}

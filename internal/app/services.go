package app

import (
	"context"
	"log/slog"

	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/dermee/dermee_backend/config"
	"github.com/dermee/dermee_backend/internal/repo"
	"github.com/dermee/dermee_backend/internal/service/appointment"
	"github.com/dermee/dermee_backend/internal/service/auth"
	"github.com/dermee/dermee_backend/internal/service/message"
	"github.com/dermee/dermee_backend/internal/service/scheduling"
	"github.com/dermee/dermee_backend/internal/service/user"
	"github.com/dermee/dermee_backend/internal/ws"
	"github.com/dermee/dermee_backend/pkg/authorize"
	pasetotoken "github.com/dermee/dermee_backend/pkg/paseto"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideUserService,
		ProvideAuthService,
		ProvideSchedulingService,
		ProvideAppointmentService,
		ProvideMessageService,
		ProvidePasetoManager,
		ProvideWSHub,
		ProvideWSHandler,
		ProvideWSServer,
	),
)

func ProvideUserService(db *repo.Client) user.Service {
	return user.New(db)
}

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	paseto *pasetotoken.Manager,
	authz authorize.IAuthorization,
	cfg *config.Config,
) auth.Service {
	return auth.New(db, rdb, paseto, authz, cfg)
}

func ProvideSchedulingService(db *repo.Client) scheduling.Service {
	return scheduling.New(db)
}

func ProvideAppointmentService(db *repo.Client, nc *nats.Conn) appointment.Service {
	return appointment.New(db, nc)
}

func ProvideMessageService(db *repo.Client, nc *nats.Conn) message.Service {
	return message.New(db, nc)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}

func ProvideWSHub() *ws.Hub {
	return ws.NewHub()
}

func ProvideWSHandler(hub *ws.Hub, paseto *pasetotoken.Manager, messages message.Service) *ws.Handler {
	return ws.NewHandler(hub, paseto, messages)
}

// ProvideWSServer runs the chat endpoint on its own listener; fiber's
// fasthttp transport cannot host the gorilla upgrader.
func ProvideWSServer(lc fx.Lifecycle, cfg *config.Config, handler *ws.Handler) *ws.Server {
	srv := ws.NewServer(cfg.Server.WSPort, handler)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.Start(); err != nil {
					slog.Error("websocket server error", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
	return srv
}

package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/beesweeper-server/internal/auth"
	"github.com/vancomm/beesweeper-server/internal/config"
	"github.com/vancomm/beesweeper-server/internal/middleware"
	"github.com/vancomm/beesweeper-server/internal/session"
)

type App struct {
	log    *logrus.Logger
	cfg    *config.Config
	router *http.ServeMux
	store  *session.Store
	issuer *auth.Issuer
}

func New(log *logrus.Logger, cfg *config.Config, issuer *auth.Issuer) *App {
	app := &App{
		log:    log,
		cfg:    cfg,
		router: http.NewServeMux(),
		store:  session.NewStore(log),
		issuer: issuer,
	}
	app.loadRoutes()
	return app
}

func (a *App) Handler() http.Handler {
	return middleware.Wrap(
		a.router,
		middleware.Auth(a.log, a.issuer),
		middleware.Cors(),
		middleware.Logging(a.log),
	)
}

// Start serves HTTP and reaps idle games until ctx is cancelled or the
// server fails.
func (a *App) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:    a.cfg.Addr,
		Handler: a.Handler(),
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.log.Infof("ready to serve @ %s", a.cfg.Addr)
		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return server.Shutdown(sCtx)
	})
	g.Go(func() error {
		return a.store.Run(gCtx, a.cfg.Game.ReapInterval, a.cfg.Game.IdleTimeout)
	})

	return g.Wait()
}

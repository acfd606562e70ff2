package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/beesweeper-server/internal/app"
	"github.com/vancomm/beesweeper-server/internal/auth"
	"github.com/vancomm/beesweeper-server/internal/config"
	"github.com/vancomm/beesweeper-server/internal/logging"
)

var configPath string

func init() {
	const usage = "config file path"
	flag.StringVar(&configPath, "config", "", usage)
	flag.StringVar(&configPath, "c", "", usage+" (shorthand)")
}

func main() {
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		logrus.Fatal("unable to load config: ", err)
	}

	log, err := logging.New(cfg)
	if err != nil {
		logrus.Fatal("unable to set up logging: ", err)
	}
	log.WithFields(cfg.Fields()).Debug("loaded config")

	privateKey, publicKey, err := cfg.JWT.LoadKeys()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.JWT.Ephemeral() {
		log.Warn("no JWT keys configured, game tokens will not survive a restart")
	}
	issuer := auth.NewIssuer(privateKey, publicKey, cfg.JWT.TokenLifetime)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := app.New(log, cfg, issuer).Start(ctx); err != nil {
		cancel()
		log.WithError(err).Fatal("server stopped")
	}
	log.Info("server stopped")
}

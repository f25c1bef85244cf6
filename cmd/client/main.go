package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-field-inspections/internal/adapter"
	"github.com/MKhiriev/go-field-inspections/internal/client"
	"github.com/MKhiriev/go-field-inspections/internal/config"
	"github.com/MKhiriev/go-field-inspections/internal/gateway"
	"github.com/MKhiriev/go-field-inspections/internal/logger"
	"github.com/MKhiriev/go-field-inspections/internal/service"
	"github.com/MKhiriev/go-field-inspections/internal/store"
	"github.com/MKhiriev/go-field-inspections/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewClientLogger("field-inspections-client", os.Getenv("CLIENT_LOG_PATH"))
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	gw, err := gateway.NewGateway(cfg.Gateway, cfg.Adapter.HTTPAddress, localStorage.Cache, nil, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create caching gateway")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, gw, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewClientServices(localStorage, serverAdapter, cfg.App, log)

	proxy := gateway.NewProxy(gw, client.LocalRoutes(services, log))

	app, err := client.NewApp(services, gw, proxy, localStorage, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-field-inspections/internal/config"
	"github.com/MKhiriev/go-field-inspections/internal/logger"
	"github.com/MKhiriev/go-field-inspections/internal/service"
	"github.com/MKhiriev/go-field-inspections/internal/workers"
)

const (
	defaultInstallRetry = 30 * time.Second
	proxyShutdownWait   = 5 * time.Second
)

type App struct {
	services *service.ClientServices
	shell    ShellInstaller
	proxy    http.Handler
	closer   io.Closer

	cfg    config.ClientConfig
	logger *logger.Logger
}

// NewApp assembles the client runtime. proxy may be nil, in which case no
// local gateway listener is started even if cfg.Adapter.ProxyAddress is set.
// closer, if not nil, is closed when Run returns.
func NewApp(services *service.ClientServices, shell ShellInstaller, proxy http.Handler, closer io.Closer, cfg config.ClientConfig, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("client services are required")
	}
	if shell == nil {
		return nil, errors.New("shell installer is required")
	}

	return &App{
		services: services,
		shell:    shell,
		proxy:    proxy,
		closer:   closer,
		cfg:      cfg,
		logger:   logger,
	}, nil
}

// Run installs the shell, pulls the server view once and then keeps the
// background jobs running until ctx is cancelled. Failing to reach the
// backend at startup is not an error: the client keeps working offline.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	ctx = a.logger.WithContext(ctx)

	if err := a.shell.Install(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("application shell not installed, will retry")
	}

	if err := a.services.SyncService.Refresh(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("initial refresh failed, working with local data")
	}

	ws := workers.NewWorkers(a.logger, a.workers()...)
	return ws.Run(ctx)
}

func (a *App) workers() []workers.Worker {
	list := []workers.Worker{
		workers.FromJob(a.services.SyncJob, a.cfg.Workers.SyncInterval),
		workers.FromJob(a.services.RefreshJob, a.cfg.Workers.RefreshInterval),
		workers.Func(a.installShell),
	}

	if a.proxy != nil && a.cfg.Adapter.ProxyAddress != "" {
		list = append(list, workers.Func(a.serveProxy))
	}

	return list
}

// installShell retries the shell install until it succeeds.
func (a *App) installShell(ctx context.Context) error {
	if a.shell.Controlling() {
		return nil
	}

	interval := a.cfg.Workers.SyncInterval
	if interval <= 0 {
		interval = defaultInstallRetry
	}

	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			if err := a.shell.Install(ctx); err != nil {
				a.logger.Debug().Err(err).Msg("application shell install retry failed")
				continue
			}
			return nil
		}
	}
}

// serveProxy runs the local gateway listener until ctx ends.
func (a *App) serveProxy(ctx context.Context) error {
	listener, err := net.Listen("tcp", a.cfg.Adapter.ProxyAddress)
	if err != nil {
		return fmt.Errorf("gateway proxy listen: %w", err)
	}

	srv := &http.Server{
		Handler:           a.proxy,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info().Str("address", listener.Addr().String()).Msg("gateway proxy started")
		errCh <- srv.Serve(listener)
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("gateway proxy: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), proxyShutdownWait)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		a.logger.Err(err).Msg("gateway proxy shutdown failed")
	}
	a.logger.Info().Msg("gateway proxy stopped")
	return nil
}

func (a *App) close() {
	if a.closer == nil {
		return
	}
	if err := a.closer.Close(); err != nil {
		a.logger.Err(err).Msg("failed to close local storage")
	}
}

package container

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"frauddash/adapters/tabular"
	"frauddash/app"
	"frauddash/internal"
	"frauddash/internal/api"
	"frauddash/internal/config"
	"frauddash/internal/dataset"
	"frauddash/internal/errors"
	"frauddash/ui"
)

// Container holds all application dependencies and manages their lifecycle
type Container struct {
	Config *config.Config
	Logger *internal.Logger

	// Data access
	Loader *dataset.Loader

	// Application services
	Dashboard *app.DashboardService

	// Transports
	API *api.Handler
	UI  *ui.Server

	httpServer *http.Server
}

// New creates a container with the loader and dashboard service wired.
// Transports are built on demand so the CLI does not pay for them.
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	logger := internal.NewLogger(cfg.Log.Level)

	readerConfig := tabular.DefaultReaderConfig(cfg.Data.File)
	readerConfig.SheetName = cfg.Data.Sheet

	c := &Container{
		Config: cfg,
		Logger: logger,
		Loader: dataset.NewLoader(readerConfig, logger.With("component", "loader")),
	}
	c.Dashboard = app.NewDashboardService(c.Loader, DashboardConfig(cfg), logger.With("component", "dashboard"))
	return c, nil
}

// DashboardConfig extracts the service settings from cfg
func DashboardConfig(cfg *config.Config) app.DashboardConfig {
	return app.DashboardConfig{
		FlagColumn:    cfg.Data.FlagColumn,
		NullPolicy:    cfg.Analysis.NullPolicy,
		DensityPoints: cfg.Analysis.DensityPoints,
		HeadRows:      cfg.Analysis.HeadRows,
	}
}

// Warm loads the dataset once up front. A failure is logged and memoized;
// the dashboard reports it on every request.
func (c *Container) Warm() error {
	start := time.Now()
	rel, err := c.Loader.Load()
	if err != nil {
		c.Logger.Error("dataset %s unavailable: %v", c.Loader.Path(), err)
		return err
	}
	c.Logger.Info("dataset %s loaded: %d rows, %d columns in %s",
		c.Loader.Path(), rel.RowCount(), rel.ColumnCount(), time.Since(start))
	return nil
}

// InitHTTP builds the JSON API and the dashboard server
func (c *Container) InitHTTP() error {
	c.API = api.NewHandler(c.Dashboard, c.Logger.With("component", "api"))

	server, err := ui.NewServer(c.Dashboard, c.Logger.With("component", "ui"), ui.Options{
		GinMode: c.Config.Server.GinMode,
		API:     c.API,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to create ui server on port %s", c.Config.Server.Port)
	}
	c.UI = server

	c.httpServer = &http.Server{
		Addr:              ":" + c.Config.Server.Port,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return nil
}

// Serve blocks serving HTTP until Shutdown is called
func (c *Container) Serve() error {
	if c.httpServer == nil {
		return fmt.Errorf("http transport not initialized")
	}
	c.Logger.Info("dashboard listening on http://localhost%s", c.httpServer.Addr)
	if err := c.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down all components
func (c *Container) Shutdown(ctx context.Context) error {
	if c.httpServer != nil {
		return c.httpServer.Shutdown(ctx)
	}
	return nil
}

// Package app wires configuration, persistence and the core services into one
// interactive session.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/librarykit/lending-system/internal/cli"
	"github.com/librarykit/lending-system/internal/core/domain"
	"github.com/librarykit/lending-system/internal/core/service"
	"github.com/librarykit/lending-system/internal/metrics"
	"github.com/librarykit/lending-system/internal/pkg/config"
	"github.com/librarykit/lending-system/pkg/logger"
)

// App is a loaded library ready to serve a session.
type App struct {
	menu        *cli.Menu
	stores      stores
	metrics     *metrics.Collector
	metricsFile string
	log         zerolog.Logger
}

// Build opens the configured store, loads the catalog and roster, and
// assembles the services. now is the session clock.
func Build(ctx context.Context, cfg *config.Config, log zerolog.Logger, now func() time.Time) (*App, error) {
	st, err := openStores(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Store, err)
	}

	books, err := st.books.LoadBooks(ctx)
	if err != nil {
		_ = st.close(ctx)
		return nil, fmt.Errorf("load books: %w", err)
	}
	users, err := st.users.LoadUsers(ctx)
	if err != nil {
		_ = st.close(ctx)
		return nil, fmt.Errorf("load users: %w", err)
	}

	catalog := domain.NewCatalog(books)
	roster := domain.NewRoster(users)
	collector := metrics.NewCollector()

	menu := cli.NewMenu(cli.Services{
		Catalog: service.NewCatalogService(catalog, st.books, logger.Component(log, "catalog")),
		Roster:  service.NewRosterService(roster, st.users, logger.Component(log, "roster")),
		Lending: service.NewLendingService(catalog, roster, st.books, st.users, st.txlog, collector, logger.Component(log, "lending")),
		Reports: service.NewReportService(roster, collector),
	}, now, logger.Component(log, "menu"))

	log.Info().
		Str("store", cfg.Store).
		Int("books", catalog.Len()).
		Int("users", roster.Len()).
		Msg("library loaded")

	return &App{
		menu:        menu,
		stores:      st,
		metrics:     collector,
		metricsFile: cfg.MetricsFile,
		log:         log,
	}, nil
}

// Run serves the menu until the operator exits or input ends.
func (a *App) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	return a.menu.Run(ctx, in, out)
}

// Close writes the metrics textfile, if configured, and releases the store.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if a.metricsFile != "" {
		if err := a.metrics.WriteTextfile(a.metricsFile); err != nil {
			errs = append(errs, fmt.Errorf("write metrics: %w", err))
		}
	}
	if err := a.stores.close(ctx); err != nil {
		errs = append(errs, err)
	}
	a.log.Info().Msg("session closed")
	return errors.Join(errs...)
}

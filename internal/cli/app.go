package cli

import (
	"fmt"

	"github.com/mesh-intelligence/bikerental/internal/fleet"
	"github.com/mesh-intelligence/bikerental/internal/info"
	"github.com/mesh-intelligence/bikerental/internal/logger"
	"github.com/mesh-intelligence/bikerental/internal/memory"
	"github.com/mesh-intelligence/bikerental/internal/notify"
	"github.com/mesh-intelligence/bikerental/internal/printer"
	"github.com/mesh-intelligence/bikerental/internal/rental"
	"github.com/mesh-intelligence/bikerental/internal/sqlite"
	"github.com/mesh-intelligence/bikerental/pkg/types"
)

// app is the wired set of capabilities a command runs against.
type app struct {
	cfg      types.Config
	log      *logger.Logger
	searcher types.BikeSearcher
	notifier types.Notifier
	bikes    []types.Bike
	closers  []func() error
}

// openApp resolves configuration, builds the logger and the configured
// searcher and notifier. The caller must defer app.Close.
func openApp(f *rootFlags) (*app, error) {
	cfg, err := resolveConfig(f)
	if err != nil {
		return nil, err
	}

	log := logger.Nop()
	if f.debug {
		log, err = logger.New("dev", true)
		if err != nil {
			return nil, err
		}
	}

	a := &app{cfg: cfg, log: log}
	a.closers = append(a.closers, func() error { log.Sync(); return nil })

	switch cfg.Backend {
	case types.BackendSQLite:
		s, err := sqlite.Open(sqlite.WithLogger(log.With("component", "sqlite")))
		if err != nil {
			a.Close()
			return nil, err
		}
		a.searcher = s
		a.closers = append(a.closers, s.Close)
	default:
		a.searcher = memory.New(memory.WithLogger(log.With("component", "memory")))
	}

	a.notifier, err = notify.New(cfg.Notifier)
	if err != nil {
		a.Close()
		return nil, err
	}

	log.Debug("app.opened", "notifier", cfg.Notifier, "backend", cfg.Backend, "fleet", cfg.Fleet)
	return a, nil
}

// loadFleet registers the bikes of the configured fleet file. With no fleet
// file configured the registry stays empty.
func (a *app) loadFleet() error {
	if a.cfg.Fleet == "" {
		a.log.Warn("fleet.none_configured")
		return nil
	}
	bikes, err := fleet.Load(a.cfg.Fleet)
	if err != nil {
		return err
	}
	a.register(bikes)
	return nil
}

// register adds bikes to the searcher in order.
func (a *app) register(bikes []types.Bike) {
	for _, b := range bikes {
		a.searcher.AddBike(b)
	}
	a.bikes = append(a.bikes, bikes...)
}

// registered returns one bike per registered ID, in order of first
// registration, as the searcher currently holds it. A repeated ID therefore
// shows the bike added last.
func (a *app) registered() []types.Bike {
	seen := make(map[string]bool, len(a.bikes))
	out := make([]types.Bike, 0, len(a.bikes))
	for _, b := range a.bikes {
		if seen[b.ID()] {
			continue
		}
		seen[b.ID()] = true
		if got, ok := a.searcher.FindBike(b.ID()); ok {
			out = append(out, got)
		}
	}
	return out
}

// service returns a rental Service that reports through notifier.
func (a *app) service(notifier types.Notifier) *rental.Service {
	return rental.NewService(a.searcher, printer.New(), notifier, info.New(),
		rental.WithLogger(a.log.With("component", "rental")))
}

// Close releases resources in reverse order of acquisition.
func (a *app) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

// closeInto closes the app and stores the close error in *errp unless the
// command already failed. Meant to be deferred with a named error result.
func (a *app) closeInto(errp *error) {
	if cerr := a.Close(); cerr != nil && *errp == nil {
		*errp = fmt.Errorf("close: %w", cerr)
	}
}

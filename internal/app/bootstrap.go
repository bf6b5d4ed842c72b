package app

import (
	"context"

	"github.com/dshills/dbterm/internal/config"
	"github.com/dshills/dbterm/internal/connector"
	"github.com/dshills/dbterm/internal/engine/buffer"
	"github.com/dshills/dbterm/internal/input/mode"
	"github.com/dshills/dbterm/internal/renderer"
	"github.com/dshills/dbterm/internal/renderer/core"
)

// bootstrapper handles application initialization.
type bootstrapper struct {
	app       *Application
	opts      Options
	initOrder []string
}

// newBootstrapper creates a new bootstrapper for the application.
func newBootstrapper(app *Application, opts Options) *bootstrapper {
	return &bootstrapper{
		app:       app,
		opts:      opts,
		initOrder: make([]string, 0, 5),
	}
}

// bootstrap initializes all components in dependency order.
// On failure, it cleans up already-initialized components.
func (b *bootstrapper) bootstrap(ctx context.Context) error {
	// 1. Logger - everything below logs
	b.initLogger()

	// 2. Config
	if err := b.initConfig(); err != nil {
		return b.fail(err)
	}

	// 3. Renderer options from the theme
	if err := b.initRenderer(); err != nil {
		return b.fail(err)
	}

	// 4. Connector and table list
	if err := b.initConnector(ctx); err != nil {
		return b.fail(err)
	}

	// 5. Buffer and mode controller
	b.initEditor()

	return nil
}

func (b *bootstrapper) initLogger() {
	logger := b.opts.Logger
	if logger == nil {
		logger = NullLogger
	}
	b.app.logger = logger.WithField("session", b.app.session)
	b.initOrder = append(b.initOrder, "logger")
}

func (b *bootstrapper) initConfig() error {
	cfg := b.opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return &InitError{Component: "config", Err: err}
	}
	b.app.config = cfg
	b.initOrder = append(b.initOrder, "config")
	return nil
}

func (b *bootstrapper) initRenderer() error {
	theme, err := themeFromConfig(b.app.config.UI.Theme)
	if err != nil {
		return &InitError{Component: "renderer", Err: err}
	}
	opts := renderer.DefaultOptions()
	opts.Theme = theme
	b.app.rendererOpts = opts
	b.initOrder = append(b.initOrder, "renderer")
	return nil
}

// themeFromConfig parses the configured hex colors.
func themeFromConfig(t config.Theme) (renderer.Theme, error) {
	var theme renderer.Theme
	fields := []struct {
		name  string
		value string
		dst   *core.Color
	}{
		{"border", t.Border, &theme.Border},
		{"title", t.Title, &theme.Title},
		{"text", t.Text, &theme.Text},
		{"tables", t.Tables, &theme.Tables},
		{"normal", t.Normal, &theme.Normal},
		{"insert", t.Insert, &theme.Insert},
	}
	for _, f := range fields {
		c, err := config.ParseColor(f.value)
		if err != nil {
			return renderer.Theme{}, WrapError(err, "theme color %s", f.name)
		}
		*f.dst = c
	}
	return theme, nil
}

func (b *bootstrapper) initConnector(ctx context.Context) error {
	db := b.app.config.Database
	timeout, err := db.TimeoutDuration()
	if err != nil {
		return &InitError{Component: "connector", Err: err}
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	conn := b.opts.Connector
	if conn == nil {
		conn, err = connector.Open(ctx, db, b.app.config.UI.Tables)
		if err != nil {
			return &InitError{Component: "connector", Err: NewOperationError("open", db.Driver, err)}
		}
		b.app.ownsConn = true
	}
	b.app.conn = conn
	b.initOrder = append(b.initOrder, "connector")

	tables, err := conn.Tables(ctx)
	if err != nil {
		return &InitError{Component: "connector", Err: NewOperationError("list tables", conn.Name(), err)}
	}
	b.app.tables = tables
	b.app.logger.WithComponent("connector").Info("loaded %d tables from %s", len(tables), conn.Name())
	return nil
}

func (b *bootstrapper) initEditor() {
	b.app.buffer = buffer.NewBuffer()
	b.app.controller = mode.NewController(b.app.buffer)

	logger := b.app.logger.WithComponent("mode")
	b.app.controller.OnChange(func(from, to mode.Mode) {
		logger.Debug("mode %s -> %s", from, to)
		b.app.metrics.RecordModeSwitch()
	})
	b.initOrder = append(b.initOrder, "editor")
}

// fail releases initialized components and returns cause together with any
// cleanup errors. cause stays first in the list.
func (b *bootstrapper) fail(cause error) error {
	errs := NewErrorList()
	errs.Add(cause)
	if err := b.cleanup(); err != nil {
		b.app.logger.Warn("cleanup: %v", err)
		errs.Add(err)
	}
	if errs.Len() == 1 {
		return cause
	}
	return errs.AsError()
}

// cleanup releases initialized components in reverse order.
// Called when bootstrap fails partway through.
func (b *bootstrapper) cleanup() error {
	errs := NewErrorList()
	for i := len(b.initOrder) - 1; i >= 0; i-- {
		errs.Add(b.cleanupComponent(b.initOrder[i]))
	}
	return errs.AsError()
}

// cleanupComponent cleans up a single component.
func (b *bootstrapper) cleanupComponent(component string) error {
	switch component {
	case "connector":
		err := b.app.Close()
		b.app.conn = nil
		return err
	case "editor":
		b.app.controller = nil
		b.app.buffer = nil
	}
	return nil
}

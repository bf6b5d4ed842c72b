package app

import (
	"context"
	"runtime/debug"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dshills/dbterm/internal/config"
	"github.com/dshills/dbterm/internal/connector"
	"github.com/dshills/dbterm/internal/engine/buffer"
	"github.com/dshills/dbterm/internal/input/mode"
	"github.com/dshills/dbterm/internal/renderer"
	"github.com/dshills/dbterm/internal/renderer/backend"
)

// Application owns the editor state and runs the terminal loop.
type Application struct {
	mu sync.Mutex

	// Core infrastructure
	config  *config.Config
	logger  *Logger
	metrics *Metrics
	session string

	// Editor state
	buffer     *buffer.Buffer
	controller *mode.Controller

	// Database
	conn     connector.Connector
	ownsConn bool
	tables   []string

	// Display
	backend      backend.Backend
	renderer     *renderer.Renderer
	rendererOpts renderer.Options

	// State
	running atomic.Bool
	exiting atomic.Bool
}

// Options configures the application.
type Options struct {
	// Config is the loaded configuration. Nil uses config.Default().
	Config *config.Config

	// Logger receives application logs. Nil discards them.
	Logger *Logger

	// Connector overrides the connector selected by Config.Database.
	// The caller keeps ownership and must close it.
	Connector connector.Connector
}

// New creates a new Application. It validates the configuration, opens the
// connector and loads the table list.
func New(ctx context.Context, opts Options) (*Application, error) {
	app := &Application{
		metrics: NewMetrics(),
		session: uuid.NewString(),
	}

	if err := newBootstrapper(app, opts).bootstrap(ctx); err != nil {
		return nil, err
	}

	return app, nil
}

// SetBackend sets the terminal backend.
// Must be called before Run().
func (app *Application) SetBackend(b backend.Backend) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}

	app.backend = b
	return nil
}

// Run initializes the backend and runs the main loop until the user quits,
// Shutdown is called or the backend fails. The backend is shut down on every
// exit path, including a panic, which is returned as a RecoveredPanicError.
func (app *Application) Run() (err error) {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	app.mu.Lock()
	b := app.backend
	app.mu.Unlock()
	if b == nil {
		return ErrNoBackend
	}

	if err := b.Init(); err != nil {
		return NewComponentError("backend", "init", err)
	}
	defer b.Shutdown()

	defer func() {
		if r := recover(); r != nil {
			err = NewRecoveredPanicError(r, string(debug.Stack()))
			app.logger.Error("recovered panic: %v", r)
		}
	}()

	app.renderer = renderer.New(b, app.rendererOpts)
	app.logger.Info("run loop started")
	defer func() {
		app.logger.Info("run loop stopped: %s", app.metrics.Snapshot())
	}()

	return app.eventLoop(b)
}

// Shutdown asks the run loop to stop. It is safe to call from any goroutine
// and before or after Run.
func (app *Application) Shutdown() {
	app.exiting.Store(true)

	app.mu.Lock()
	b := app.backend
	app.mu.Unlock()

	// Wake a PollEvent blocked in the loop.
	if b != nil && app.running.Load() {
		b.PostEvent(backend.Event{Type: backend.EventInterrupt})
	}
}

// Close releases the connector if the application opened it.
func (app *Application) Close() error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.conn == nil || !app.ownsConn {
		return nil
	}
	err := app.conn.Close()
	app.conn = nil
	if err != nil {
		return NewComponentError("connector", "close", err)
	}
	return nil
}

// IsRunning returns true if the application is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Exiting reports whether a quit has been requested.
func (app *Application) Exiting() bool {
	return app.exiting.Load()
}

// Mode returns the current interaction mode.
func (app *Application) Mode() mode.Mode {
	return app.controller.Current()
}

// Buffer returns the text buffer.
func (app *Application) Buffer() *buffer.Buffer {
	return app.buffer
}

// Tables returns the table names loaded at startup.
func (app *Application) Tables() []string {
	return slices.Clone(app.tables)
}

// Config returns the configuration in use.
func (app *Application) Config() *config.Config {
	return app.config
}

// SessionID identifies this run in the logs.
func (app *Application) SessionID() string {
	return app.session
}

// View returns the state the renderer draws.
func (app *Application) View() renderer.View {
	return renderer.View{
		Mode:   app.controller.Current(),
		Text:   app.buffer.Text(),
		Cursor: app.buffer.Cursor(),
		Tables: app.tables,
	}
}

// InitError represents an initialization failure.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return "failed to initialize " + e.Component + ": " + e.Err.Error()
}

func (e *InitError) Unwrap() error {
	return e.Err
}

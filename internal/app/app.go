package app

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/combonavi/internal/combo"
	"github.com/dshills/combonavi/internal/config"
	"github.com/dshills/combonavi/internal/event"
	"github.com/dshills/combonavi/internal/i18n"
	"github.com/dshills/combonavi/internal/input/detect"
	"github.com/dshills/combonavi/internal/input/key"
	"github.com/dshills/combonavi/internal/plugin/lua"
	"github.com/dshills/combonavi/internal/process"
)

// EdgeSource delivers raw input edges into the engine while running.
// The hook-backed implementation lives in internal/input/source.
type EdgeSource interface {
	Start() error
	Stop()
}

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file. Empty uses the
	// default location next to the executable.
	ConfigPath string

	// StatePath is the path to the session state file. Empty uses the
	// default location next to the executable.
	StatePath string

	// ComboFile is a combo file to load on startup. Empty resumes the
	// last session's file.
	ComboFile string

	// LogLevel overrides the configured log verbosity when non-empty.
	LogLevel string
}

// Application is the central coordinator. It owns the engine, the
// sequencer, the process watcher, and the session state, and runs the
// loop that consumes discrimination events.
type Application struct {
	mu sync.RWMutex

	cfg   config.Config
	state *config.State
	tr    *i18n.Translator

	bus       *event.Bus
	engine    *detect.Engine
	sequencer *combo.Sequencer
	watcher   *process.Watcher
	source    EdgeSource

	logger *Logger

	// Resolved hotkeys.
	openSettingsKey  key.Key
	toggleOverlayKey key.Key

	overlayVisible atomic.Bool

	// comboTitle is the loaded preset name, shown on every step.
	comboTitle string

	running  atomic.Bool
	done     chan struct{}
	stopOnce sync.Once

	opts Options
}

// New creates an Application with the given options.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts: opts,
		done: make(chan struct{}),
	}
	if err := app.bootstrap(); err != nil {
		return nil, err
	}
	return app, nil
}

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Configuration and session state.
	path := app.opts.ConfigPath
	if path == "" {
		path = config.ConfigPath()
	}
	app.cfg = config.LoadOrDefault(path)

	statePath := app.opts.StatePath
	if statePath == "" {
		statePath = config.StatePath()
	}
	app.state = config.OpenState(statePath)

	// 2. Logging.
	level := app.cfg.LogLevel
	if app.opts.LogLevel != "" {
		level = app.opts.LogLevel
	}
	app.logger = NewLogger(LoggerConfig{
		Level:  ParseLogLevel(level),
		Prefix: "combonavi",
	})

	// 3. Localization.
	app.tr = i18n.New(string(app.cfg.Language))

	// 4. Event bus. Handler panics are logged, never fatal.
	app.bus = event.NewBus(event.WithPanicHandler(func(topic event.Topic, v any) {
		app.logger.WithComponent("bus").Error("handler panic on %s: %v", topic, v)
	}))

	// 5. Discrimination engine and sequencer.
	engineOpts := []detect.Option{}
	if ms := app.cfg.Input.HoldThresholdMS; ms > 0 {
		engineOpts = append(engineOpts, detect.WithHoldThreshold(time.Duration(ms)*time.Millisecond))
	}
	if ms := app.cfg.Input.TickIntervalMS; ms > 0 {
		engineOpts = append(engineOpts, detect.WithTickInterval(time.Duration(ms)*time.Millisecond))
	}
	app.engine = detect.NewEngine(engineOpts...)
	app.sequencer = combo.NewSequencer(app.engine)

	// 6. Process watcher.
	watcherOpts := []process.WatcherOption{
		process.WithOnChange(func(running bool) {
			app.bus.Publish(context.Background(), event.TopicGameStatus, event.GameStatus{Running: running})
		}),
	}
	if s := app.cfg.Game.PollSeconds; s > 0 {
		watcherOpts = append(watcherOpts, process.WithInterval(time.Duration(s)*time.Second))
	}
	app.watcher = process.NewWatcher(app.cfg.Game.ProcessName, watcherOpts...)

	// 7. Hotkeys.
	app.openSettingsKey = key.FromName(app.cfg.KeyBindings.OpenSettings)
	app.toggleOverlayKey = key.FromName(app.cfg.KeyBindings.ToggleOverlay)

	app.overlayVisible.Store(app.state.OverlayVisible())

	// 8. Combo file: explicit option first, then the last session's.
	// A resumed session also restores the step position.
	comboPath := app.opts.ComboFile
	resume := false
	resumeIndex := 0
	if comboPath == "" {
		comboPath = app.state.LastComboFile()
		// LoadCombo resets the persisted index, so capture it first.
		resumeIndex = app.state.StepIndex()
		resume = true
	}
	if comboPath != "" {
		if err := app.LoadCombo(comboPath); err != nil {
			app.logger.WithComponent("combo").Warn("load %s: %v", comboPath, err)
		} else if resume {
			app.sequencer.Seek(resumeIndex)
			app.state.SetStepIndex(app.sequencer.Index())
		}
	}

	return nil
}

// LoadCombo loads the combo file at path and resets the sequence.
// Files ending in .lua run through the script loader; anything else is
// parsed as a combo text file.
func (app *Application) LoadCombo(path string) error {
	var (
		f   *combo.File
		err error
	)
	if strings.EqualFold(filepath.Ext(path), ".lua") {
		f, err = lua.NewLoader().LoadFile(path)
	} else {
		f, err = combo.ParseFile(path)
	}
	if err != nil {
		return WrapError(err, "load combo %s", path)
	}

	app.sequencer.Load(f)
	app.mu.Lock()
	app.comboTitle = f.Title
	app.mu.Unlock()
	app.state.SetLastComboFile(path)
	app.state.SetStepIndex(0)
	app.publishStep()
	app.logger.WithComponent("combo").Info("loaded %q (%d steps)", f.Title, app.sequencer.Len())
	return nil
}

// SetSource sets the raw input source. Must be called before Run.
func (app *Application) SetSource(s EdgeSource) error {
	app.mu.Lock()
	defer app.mu.Unlock()
	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.source = s
	return nil
}

// Bus returns the event bus.
func (app *Application) Bus() *event.Bus { return app.bus }

// Engine returns the discrimination engine.
func (app *Application) Engine() *detect.Engine { return app.engine }

// Sequencer returns the combo sequencer.
func (app *Application) Sequencer() *combo.Sequencer { return app.sequencer }

// Watcher returns the game process watcher.
func (app *Application) Watcher() *process.Watcher { return app.watcher }

// Config returns the loaded configuration.
func (app *Application) Config() config.Config { return app.cfg }

// Translator returns the localized message catalog.
func (app *Application) Translator() *i18n.Translator { return app.tr }

// Logger returns the application logger.
func (app *Application) Logger() *Logger { return app.logger }

// OverlayVisible reports the current overlay visibility.
func (app *Application) OverlayVisible() bool { return app.overlayVisible.Load() }

// IsRunning returns true while Run is active.
func (app *Application) IsRunning() bool { return app.running.Load() }

package app

import (
	"context"

	"github.com/dshills/combonavi/internal/event"
	"github.com/dshills/combonavi/internal/input/detect"
	"github.com/dshills/combonavi/internal/input/key"
)

// Run starts all components and blocks consuming discrimination events
// until the context is cancelled or Shutdown is called.
func (app *Application) Run(ctx context.Context) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := app.engine.Start(ctx); err != nil {
		return &InitError{Component: "engine", Err: err}
	}
	app.watcher.Start(ctx)

	app.mu.RLock()
	source := app.source
	app.mu.RUnlock()
	if source != nil {
		if err := source.Start(); err != nil {
			app.teardown(source)
			return &InitError{Component: "input source", Err: err}
		}
	}

	app.logger.Info("started (combo steps=%d, game=%s)", app.sequencer.Len(), app.cfg.Game.ProcessName)

	// Let subscribers see the restored state before any input arrives.
	app.publishStep()
	app.bus.Publish(ctx, event.TopicOverlayVisibility, event.OverlayVisibility{Visible: app.overlayVisible.Load()})

	events := app.engine.Events()
	for {
		select {
		case <-ctx.Done():
			app.teardown(source)
			drain(events)
			return nil
		case <-app.done:
			app.teardown(source)
			drain(events)
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			app.handleEvent(ctx, ev)
		}
	}
}

// Shutdown requests a graceful stop. Safe to call multiple times.
func (app *Application) Shutdown() {
	app.stopOnce.Do(func() { close(app.done) })
}

// teardown stops components in reverse start order and persists the
// session state.
func (app *Application) teardown(source EdgeSource) {
	if source != nil {
		source.Stop()
	}
	app.engine.Stop()
	app.watcher.Stop()

	if err := app.state.Save(); err != nil {
		app.logger.WithComponent("state").Warn("save session: %v", err)
	}
	app.logger.Info("stopped")
}

// drain consumes queued events after engine stop. The queue delivers
// everything already sent, then closes.
func drain(events <-chan detect.Event) {
	for range events {
	}
}

// handleEvent routes one discrimination event.
func (app *Application) handleEvent(ctx context.Context, ev detect.Event) {
	switch ev.Kind {
	case detect.KindTapComplete, detect.KindHoldComplete:
		app.advance(ctx)

	case detect.KindHoldProgress:
		app.bus.Publish(ctx, event.TopicHoldProgress, event.HoldProgress{Fraction: ev.Progress})

	case detect.KindKeyDown:
		app.handleKeyDown(ctx, ev.Key)

	case detect.KindKeyUp:
		if ev.Key == key.KeyAlt || ev.Key == key.KeyAltGr {
			app.bus.Publish(ctx, event.TopicModifierStatus, event.ModifierStatus{Alt: false})
		}
	}
}

// handleKeyDown handles presses that did not resolve a combo step:
// hotkeys, manual navigation, and modifier edges.
func (app *Application) handleKeyDown(ctx context.Context, k key.Key) {
	switch {
	case k == app.openSettingsKey && k != key.KeyNone:
		app.bus.Publish(ctx, event.TopicSettingsRequested, nil)

	case k == app.toggleOverlayKey && k != key.KeyNone:
		app.ToggleOverlay(ctx)

	case k == key.KeyRight:
		app.advance(ctx)

	case k == key.KeyLeft:
		app.previous(ctx)

	case k == key.KeyAlt || k == key.KeyAltGr:
		app.bus.Publish(ctx, event.TopicModifierStatus, event.ModifierStatus{Alt: true})
	}
}

// ToggleOverlay flips overlay visibility and notifies subscribers.
func (app *Application) ToggleOverlay(ctx context.Context) {
	visible := !app.overlayVisible.Load()
	app.overlayVisible.Store(visible)
	app.state.SetOverlayVisible(visible)
	app.bus.Publish(ctx, event.TopicOverlayVisibility, event.OverlayVisibility{Visible: visible})
}

// advance moves to the next step and notifies subscribers.
func (app *Application) advance(ctx context.Context) {
	if _, ok := app.sequencer.Advance(); !ok {
		return
	}
	app.state.SetStepIndex(app.sequencer.Index())
	app.publishStepCtx(ctx)
}

// previous moves back one step and notifies subscribers. At the first
// step the position floors and nothing is republished.
func (app *Application) previous(ctx context.Context) {
	before := app.sequencer.Index()
	if _, ok := app.sequencer.Previous(); !ok {
		return
	}
	if app.sequencer.Index() == before {
		return
	}
	app.state.SetStepIndex(app.sequencer.Index())
	app.publishStepCtx(ctx)
}

// publishStep publishes the current step with a background context.
func (app *Application) publishStep() {
	app.publishStepCtx(context.Background())
}

func (app *Application) publishStepCtx(ctx context.Context) {
	step, ok := app.sequencer.Current()
	if !ok {
		return
	}
	app.mu.RLock()
	title := app.comboTitle
	app.mu.RUnlock()
	app.bus.Publish(ctx, event.TopicComboUpdated, event.StepInfo{
		Index:      app.sequencer.Index(),
		Total:      app.sequencer.Len(),
		Title:      title,
		KeyDisplay: step.KeyDisplay(),
		Character:  step.Character,
		SkillType:  step.SkillType,
		Memo:       step.Memo,
		Hold:       step.Hold,
	})
}

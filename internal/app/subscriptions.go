package app

import (
	"context"

	"github.com/dshills/combonavi/internal/event"
	"github.com/dshills/combonavi/internal/overlay"
)

// AttachView subscribes the overlay view to the bus topics it renders
// from. Returns the subscriptions so a caller can detach the view.
func (app *Application) AttachView(v *overlay.View) []event.Subscription {
	subs := []event.Subscription{
		app.bus.Subscribe(event.TopicComboUpdated, func(_ context.Context, payload any) {
			info, ok := payload.(event.StepInfo)
			if !ok {
				return
			}
			v.Update(func(m *overlay.Model) {
				m.Step = &overlay.Step{
					Index:      info.Index,
					Total:      info.Total,
					Title:      info.Title,
					KeyDisplay: info.KeyDisplay,
					Character:  info.Character,
					SkillType:  info.SkillType,
					Memo:       info.Memo,
					Hold:       info.Hold,
				}
				// A step change ends any hold gauge in flight.
				m.HoldFraction = 0
			})
		}),

		app.bus.Subscribe(event.TopicHoldProgress, func(_ context.Context, payload any) {
			p, ok := payload.(event.HoldProgress)
			if !ok {
				return
			}
			v.Update(func(m *overlay.Model) { m.HoldFraction = p.Fraction })
		}),

		app.bus.Subscribe(event.TopicGameStatus, func(_ context.Context, payload any) {
			s, ok := payload.(event.GameStatus)
			if !ok {
				return
			}
			v.Update(func(m *overlay.Model) { m.GameRunning = s.Running })
		}),

		app.bus.Subscribe(event.TopicOverlayVisibility, func(_ context.Context, payload any) {
			s, ok := payload.(event.OverlayVisibility)
			if !ok {
				return
			}
			v.Update(func(m *overlay.Model) { m.Visible = s.Visible })
		}),

		app.bus.Subscribe(event.TopicModifierStatus, func(_ context.Context, payload any) {
			s, ok := payload.(event.ModifierStatus)
			if !ok {
				return
			}
			v.Update(func(m *overlay.Model) { m.AltHeld = s.Alt })
		}),
	}
	return subs
}

// DetachView removes the subscriptions returned by AttachView.
func (app *Application) DetachView(subs []event.Subscription) {
	for _, sub := range subs {
		app.bus.Unsubscribe(sub)
	}
}

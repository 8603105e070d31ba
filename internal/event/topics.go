package event

// Bus topics published by the application core.
const (
	// TopicComboUpdated is published after the current step changes.
	// Payload: StepInfo.
	TopicComboUpdated Topic = "combo.updated"

	// TopicHoldProgress is published on hold monitor progress ticks.
	// Payload: HoldProgress.
	TopicHoldProgress Topic = "hold.progress"

	// TopicGameStatus is published when the watched game process
	// appears or disappears. Payload: GameStatus.
	TopicGameStatus Topic = "game.status"

	// TopicOverlayVisibility is published when overlay visibility is
	// toggled. Payload: OverlayVisibility.
	TopicOverlayVisibility Topic = "overlay.visibility"

	// TopicModifierStatus is published on modifier press/release edges,
	// driving overlay click-through. Payload: ModifierStatus.
	TopicModifierStatus Topic = "modifier.status"

	// TopicSettingsRequested is published when the open-settings hotkey
	// fires. Payload: nil. The overlay host decides what to do with it;
	// the input path never manipulates windows directly.
	TopicSettingsRequested Topic = "settings.requested"
)

// StepInfo describes the current combo step for presentation.
type StepInfo struct {
	// Index is the zero-based position within the sequencable steps.
	Index int

	// Total is the number of sequencable steps.
	Total int

	// Title is the combo preset name.
	Title string

	// KeyDisplay is the rendered key text ("2", "Hold 2", "E", "L").
	KeyDisplay string

	// Character is the operator name.
	Character string

	// SkillType is the skill category.
	SkillType string

	// Memo is the authored note.
	Memo string

	// Hold is true for hold steps.
	Hold bool
}

// HoldProgress reports partial progress toward a hold threshold.
type HoldProgress struct {
	// Fraction is the completion fraction in [0, 1).
	Fraction float64
}

// GameStatus reports game process liveness.
type GameStatus struct {
	// Running is true when the watched process is present.
	Running bool
}

// OverlayVisibility reports the overlay visibility state.
type OverlayVisibility struct {
	// Visible is true when the overlay should be shown.
	Visible bool
}

// ModifierStatus reports a modifier key edge.
type ModifierStatus struct {
	// Alt is true while an Alt key is held.
	Alt bool
}

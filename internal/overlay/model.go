package overlay

// Step is the renderable projection of the current combo position.
type Step struct {
	Index      int
	Total      int
	Title      string
	KeyDisplay string
	Character  string
	SkillType  string
	Memo       string
	Hold       bool
}

// Model holds everything the view needs to draw a frame.
type Model struct {
	Step         *Step   // nil when no combo is loaded
	HoldFraction float64 // 0 when no hold is underway
	GameRunning  bool
	AltHeld      bool
	Visible      bool
}

package overlay

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/combonavi/internal/i18n"
)

func newTestView(t *testing.T) (*View, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(60, 12)

	return NewView(screen, i18n.New("en")), screen
}

// rowText reads a rendered row back from the simulation screen.
func rowText(screen tcell.SimulationScreen, row int) string {
	width, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := screen.GetContent(x, row)
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}

func TestRenderNoCombo(t *testing.T) {
	v, screen := newTestView(t)
	v.Update(func(*Model) {})

	if got := rowText(screen, 0); got != "ComboNavi" {
		t.Errorf("row 0 = %q", got)
	}
	if got := rowText(screen, 1); got != "No combo loaded" {
		t.Errorf("row 1 = %q", got)
	}
	if got := rowText(screen, 3); got != "Game not running" {
		t.Errorf("row 3 = %q", got)
	}
}

func TestRenderStep(t *testing.T) {
	v, screen := newTestView(t)
	v.Update(func(m *Model) {
		m.GameRunning = true
		m.Step = &Step{
			Index:      1,
			Total:      4,
			Title:      "opening",
			KeyDisplay: "2",
			Character:  "chen",
			SkillType:  "skill",
			Memo:       "after dodge",
		}
	})

	if got := rowText(screen, 1); got != "opening  Step 2/4" {
		t.Errorf("step row = %q", got)
	}
	if got := rowText(screen, 2); got != "2  chen / skill" {
		t.Errorf("key row = %q", got)
	}
	if got := rowText(screen, 3); got != "Memo: after dodge" {
		t.Errorf("memo row = %q", got)
	}
	if got := rowText(screen, 5); got != "Game running" {
		t.Errorf("status row = %q", got)
	}
}

func TestRenderHoldProgress(t *testing.T) {
	v, screen := newTestView(t)
	v.Update(func(m *Model) {
		m.Step = &Step{KeyDisplay: "Hold 3", Total: 1, Hold: true}
		m.HoldFraction = 0.5
	})

	bar := rowText(screen, 3)
	if !strings.HasPrefix(bar, "Hold [") {
		t.Fatalf("bar row = %q", bar)
	}
	filled := strings.Count(bar, "█")
	if filled != progressBarWidth/2 {
		t.Errorf("filled cells = %d, want %d", filled, progressBarWidth/2)
	}
}

func TestRenderHidden(t *testing.T) {
	v, screen := newTestView(t)
	v.Update(func(m *Model) {
		m.Step = &Step{KeyDisplay: "1", Total: 1}
	})
	v.Update(func(m *Model) { m.Visible = false })

	for row := 0; row < 6; row++ {
		if got := rowText(screen, row); got != "" {
			t.Errorf("row %d not cleared: %q", row, got)
		}
	}
}

func TestRenderAltIndicator(t *testing.T) {
	v, screen := newTestView(t)
	v.Update(func(m *Model) { m.AltHeld = true })

	if got := rowText(screen, 3); !strings.HasSuffix(got, "[Alt]") {
		t.Errorf("status row = %q", got)
	}
}

func TestProgressBarClamps(t *testing.T) {
	v, _ := newTestView(t)
	v.Update(func(m *Model) {
		m.Step = &Step{KeyDisplay: "Hold 1", Total: 1, Hold: true}
		m.HoldFraction = 1.7
	})
	if got := v.Model().HoldFraction; got != 1.7 {
		t.Fatalf("model mutated: %v", got)
	}

	v.mu.Lock()
	bar := v.progressBar()
	v.mu.Unlock()
	if strings.Count(bar, "█") != progressBarWidth {
		t.Errorf("over-full bar = %q", bar)
	}
}

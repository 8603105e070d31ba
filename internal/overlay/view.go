package overlay

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/combonavi/internal/i18n"
)

// progressBarWidth is the inner width of the hold progress gauge.
const progressBarWidth = 20

// View draws the overlay model onto a tcell screen.
type View struct {
	mu     sync.Mutex
	screen tcell.Screen
	tr     *i18n.Translator
	model  Model
}

// NewView creates a View drawing to screen with localized labels.
// The screen must already be initialized.
func NewView(screen tcell.Screen, tr *i18n.Translator) *View {
	return &View{
		screen: screen,
		tr:     tr,
		model:  Model{Visible: true},
	}
}

// Update replaces the model and redraws.
func (v *View) Update(mutate func(*Model)) {
	v.mu.Lock()
	mutate(&v.model)
	v.render()
	v.mu.Unlock()
}

// Model returns a copy of the current model.
func (v *View) Model() Model {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.model
}

// render draws the full frame. Caller holds v.mu.
func (v *View) render() {
	v.screen.Clear()
	if !v.model.Visible {
		v.screen.Show()
		return
	}

	base := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	accent := base.Foreground(tcell.ColorYellow).Bold(true)
	dim := base.Dim(true)

	row := 0
	v.drawLine(row, accent, v.tr.T("app.title"))
	row++

	if v.model.Step == nil {
		v.drawLine(row, dim, v.tr.T("combo.none"))
		row++
	} else {
		s := v.model.Step
		v.drawLine(row, base, fmt.Sprintf("%s  %s %d/%d", s.Title, v.tr.T("overlay.step"), s.Index+1, s.Total))
		row++

		keyLine := s.KeyDisplay
		if s.Character != "" {
			keyLine += "  " + s.Character
		}
		if s.SkillType != "" {
			keyLine += " / " + s.SkillType
		}
		v.drawLine(row, accent, keyLine)
		row++

		if s.Memo != "" {
			v.drawLine(row, base, v.tr.T("overlay.memo")+": "+s.Memo)
			row++
		}

		if s.Hold {
			v.drawLine(row, base, v.progressBar())
			row++
		}
	}
	row++

	status := v.tr.T("game.not_running")
	statusStyle := dim
	if v.model.GameRunning {
		status = v.tr.T("game.running")
		statusStyle = base.Foreground(tcell.ColorGreen)
	}
	if v.model.AltHeld {
		status += "  [Alt]"
	}
	v.drawLine(row, statusStyle, status)

	v.screen.Show()
}

// progressBar renders the hold gauge for the current fraction.
func (v *View) progressBar() string {
	f := v.model.HoldFraction
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	filled := int(f * progressBarWidth)
	bar := make([]rune, progressBarWidth)
	for i := range bar {
		if i < filled {
			bar[i] = '█'
		} else {
			bar[i] = '░'
		}
	}
	return v.tr.T("overlay.hold") + " [" + string(bar) + "]"
}

func (v *View) drawLine(row int, style tcell.Style, text string) {
	width, height := v.screen.Size()
	if row >= height {
		return
	}
	col := 0
	for _, r := range text {
		if col >= width {
			return
		}
		v.screen.SetContent(col, row, r, nil, style)
		col += runeWidth(r)
	}
}

// runeWidth reports the number of terminal cells a rune occupies.
// CJK characters in titles and memos take two cells.
func runeWidth(r rune) int {
	if r >= 0x1100 && (r <= 0x115F ||
		(r >= 0x2E80 && r <= 0xA4CF) ||
		(r >= 0xAC00 && r <= 0xD7A3) ||
		(r >= 0xF900 && r <= 0xFAFF) ||
		(r >= 0xFE30 && r <= 0xFE4F) ||
		(r >= 0xFF00 && r <= 0xFF60) ||
		(r >= 0xFFE0 && r <= 0xFFE6)) {
		return 2
	}
	return 1
}

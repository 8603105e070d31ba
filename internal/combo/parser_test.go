package combo

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dshills/combonavi/internal/input/key"
)

func TestParseTapStep(t *testing.T) {
	f, err := Parse("2,リーフォン,戦技,|")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(f.Steps) != 1 {
		t.Fatalf("got %d steps, want 1", len(f.Steps))
	}
	s := f.Steps[0]
	if s.Action != key.ActionSkill2 || s.Hold || s.Title {
		t.Errorf("step = %+v, want tap skill 2", s)
	}
	if s.Character != "リーフォン" || s.SkillType != "戦技" {
		t.Errorf("fields = %q, %q", s.Character, s.SkillType)
	}
}

func TestParseHoldStep(t *testing.T) {
	f, err := Parse("U2,リーフォン,必殺技,|")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	s := f.Steps[0]
	if s.Action != key.ActionSkill2 || !s.Hold {
		t.Errorf("step = %+v, want hold skill 2", s)
	}
	if s.HoldDuration != 300*time.Millisecond {
		t.Errorf("HoldDuration = %v, want 300ms", s.HoldDuration)
	}
}

func TestParseLowercaseHoldPrefix(t *testing.T) {
	f, err := Parse("u3,,,|")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s := f.Steps[0]; s.Action != key.ActionSkill3 || !s.Hold {
		t.Errorf("step = %+v, want hold skill 3", s)
	}
}

func TestParseChainAndHeavy(t *testing.T) {
	f, err := Parse("E,チェン,連携,|\nL,,通常,|")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if f.Steps[0].Action != key.ActionChain {
		t.Errorf("step 0 action = %v, want chain", f.Steps[0].Action)
	}
	if f.Steps[1].Action != key.ActionHeavy {
		t.Errorf("step 1 action = %v, want heavy", f.Steps[1].Action)
	}
}

func TestParseFullFile(t *testing.T) {
	content := `#,物理,,|
U2,リーフォン,必殺技,|
2,リーフォン,戦技,|

E,チェン,連携,|
!!!!!`
	f, err := Parse(content)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if f.Title != "物理" {
		t.Errorf("Title = %q, want 物理", f.Title)
	}
	if len(f.Steps) != 4 {
		t.Errorf("got %d steps, want 4 (title included)", len(f.Steps))
	}
	if got := len(f.Commands()); got != 3 {
		t.Errorf("got %d commands, want 3 (title excluded)", got)
	}
}

func TestParseTitleWithoutName(t *testing.T) {
	f, err := Parse("#,,,|\n1,,,|")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if f.Title != "Untitled" {
		t.Errorf("Title = %q, want Untitled", f.Title)
	}
}

func TestParseInvalidKey(t *testing.T) {
	_, err := Parse("2,,,|\nX,,,|")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
	if perr.Line != 2 {
		t.Errorf("Line = %d, want 2", perr.Line)
	}
	if !strings.Contains(perr.Error(), "invalid key") {
		t.Errorf("Error() = %q", perr.Error())
	}
}

func TestParseEmpty(t *testing.T) {
	for _, content := range []string{"", "\n\n", "!!!!!"} {
		if _, err := Parse(content); !errors.Is(err, ErrEmptyFile) {
			t.Errorf("Parse(%q) err = %v, want ErrEmptyFile", content, err)
		}
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	content := "#,物理,,|\nU2,リーフォン,必殺技,|\n2,リーフォン,戦技,メモ|\nE,チェン,連携,|\n!!!!!\n"
	f, err := Parse(content)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := Serialize(f); got != content {
		t.Errorf("Serialize:\n%s\nwant:\n%s", got, content)
	}
}

func TestKeyDisplay(t *testing.T) {
	tests := []struct {
		step Step
		want string
	}{
		{Step{Action: key.ActionSkill2}, "2"},
		{Step{Action: key.ActionSkill2, Hold: true}, "Hold 2"},
		{Step{Action: key.ActionChain}, "E"},
		{Step{Action: key.ActionHeavy}, "L"},
	}
	for _, tt := range tests {
		if got := tt.step.KeyDisplay(); got != tt.want {
			t.Errorf("KeyDisplay() = %q, want %q", got, tt.want)
		}
	}
}

package combo

import (
	"testing"
	"time"

	"github.com/dshills/combonavi/internal/input/detect"
	"github.com/dshills/combonavi/internal/input/key"
)

// captureSetter records every expected-action publication.
type captureSetter struct {
	calls []*detect.Expected
}

func (c *captureSetter) SetExpected(exp *detect.Expected) {
	c.calls = append(c.calls, exp)
}

func (c *captureSetter) last() *detect.Expected {
	if len(c.calls) == 0 {
		return nil
	}
	return c.calls[len(c.calls)-1]
}

func fourStepFile(t *testing.T) *File {
	t.Helper()
	f, err := Parse("#,テスト,,|\n1,,,|\nU2,,,|\n3,,,|\nE,,,|")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return f
}

func TestSequencerLoadPublishesFirstStep(t *testing.T) {
	setter := &captureSetter{}
	seq := NewSequencer(setter)
	seq.Load(fourStepFile(t))

	exp := setter.last()
	if exp == nil {
		t.Fatal("no expectation published on Load")
	}
	if exp.Action != key.ActionSkill1 || exp.Hold {
		t.Errorf("expected = %+v, want tap skill 1", exp)
	}
	if seq.Len() != 4 {
		t.Errorf("Len = %d, want 4 (title excluded)", seq.Len())
	}
}

func TestSequencerAdvanceWrapsAround(t *testing.T) {
	setter := &captureSetter{}
	seq := NewSequencer(setter)
	seq.Load(fourStepFile(t))

	for i, want := range []int{1, 2, 3, 0} {
		if _, ok := seq.Advance(); !ok {
			t.Fatalf("Advance %d returned ok=false", i)
		}
		if seq.Index() != want {
			t.Errorf("after advance %d: Index = %d, want %d", i, seq.Index(), want)
		}
	}
}

func TestSequencerPreviousFloorsAtZero(t *testing.T) {
	setter := &captureSetter{}
	seq := NewSequencer(setter)
	seq.Load(fourStepFile(t))

	seq.Advance()
	if _, ok := seq.Previous(); !ok || seq.Index() != 0 {
		t.Errorf("Previous: ok=%v Index=%d, want true 0", ok, seq.Index())
	}
	if _, ok := seq.Previous(); !ok || seq.Index() != 0 {
		t.Errorf("Previous at zero: ok=%v Index=%d, want true 0", ok, seq.Index())
	}
}

func TestSequencerPublishesHoldDuration(t *testing.T) {
	setter := &captureSetter{}
	seq := NewSequencer(setter)
	seq.Load(fourStepFile(t))

	seq.Advance() // U2 step
	exp := setter.last()
	if exp == nil || !exp.Hold || exp.Action != key.ActionSkill2 {
		t.Fatalf("expected = %+v, want hold skill 2", exp)
	}
	if exp.Duration != DefaultHoldDuration {
		t.Errorf("Duration = %v, want %v", exp.Duration, DefaultHoldDuration)
	}
}

func TestSequencerSeek(t *testing.T) {
	setter := &captureSetter{}
	seq := NewSequencer(setter)
	seq.Load(fourStepFile(t))

	step, ok := seq.Seek(2)
	if !ok || seq.Index() != 2 {
		t.Fatalf("Seek(2): ok=%v index=%d", ok, seq.Index())
	}
	if step.Action != key.ActionSkill3 {
		t.Errorf("step action = %v, want skill 3", step.Action)
	}
	if exp := setter.last(); exp == nil || exp.Action != key.ActionSkill3 {
		t.Errorf("published = %+v, want skill 3", exp)
	}

	// Out-of-range positions clamp.
	if _, ok := seq.Seek(99); !ok || seq.Index() != 3 {
		t.Errorf("Seek(99) index = %d, want 3", seq.Index())
	}
	if _, ok := seq.Seek(-1); !ok || seq.Index() != 0 {
		t.Errorf("Seek(-1) index = %d, want 0", seq.Index())
	}

	empty := NewSequencer(setter)
	if _, ok := empty.Seek(0); ok {
		t.Error("Seek on empty sequencer should report ok=false")
	}
}

func TestSequencerEmpty(t *testing.T) {
	setter := &captureSetter{}
	seq := NewSequencer(setter)

	if _, ok := seq.Advance(); ok {
		t.Error("Advance on empty sequencer returned ok=true")
	}
	if _, ok := seq.Previous(); ok {
		t.Error("Previous on empty sequencer returned ok=true")
	}
	if _, ok := seq.Current(); ok {
		t.Error("Current on empty sequencer returned ok=true")
	}
}

func TestSequencerLoadNilClears(t *testing.T) {
	setter := &captureSetter{}
	seq := NewSequencer(setter)
	seq.Load(fourStepFile(t))
	seq.Load(nil)

	if seq.Len() != 0 {
		t.Errorf("Len = %d, want 0", seq.Len())
	}
	if setter.last() != nil {
		t.Error("clearing the sequencer should publish a nil expectation")
	}
}

func TestSequencerReset(t *testing.T) {
	setter := &captureSetter{}
	seq := NewSequencer(setter)
	seq.Load(fourStepFile(t))

	seq.Advance()
	seq.Advance()
	if _, ok := seq.Reset(); !ok || seq.Index() != 0 {
		t.Errorf("Reset: Index = %d, want 0", seq.Index())
	}
}

// TestSequencerDrivesEngine exercises the sequencer against a real
// engine: each completion republishes the next expectation before the
// next press is evaluated.
func TestSequencerDrivesEngine(t *testing.T) {
	clock := detect.NewMockClock(time.Unix(1000, 0))
	engine := detect.NewEngine(detect.WithClock(clock))
	seq := NewSequencer(engine)

	f, err := Parse("1,,,|\n2,,,|")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	seq.Load(f)

	engine.OnPress(key.KeyNum1)
	ev := <-engine.Events()
	if ev.Kind != detect.KindTapComplete {
		t.Fatalf("event = %s, want TapComplete", ev)
	}
	seq.Advance()
	engine.OnRelease(key.KeyNum1)
	<-engine.Events() // KeyUp

	// Pressing 1 again must no longer resolve a tap.
	engine.OnPress(key.KeyNum1)
	ev = <-engine.Events()
	if ev.Kind != detect.KindKeyDown {
		t.Fatalf("event = %s, want KeyDown", ev)
	}

	// 2 is now the expectation.
	engine.OnPress(key.KeyNum2)
	ev = <-engine.Events()
	if ev.Kind != detect.KindTapComplete || ev.Key != key.KeyNum2 {
		t.Fatalf("event = %s, want TapComplete(2)", ev)
	}
}

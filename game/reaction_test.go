package game

import (
	"testing"
	"time"
)

// TestReactionWindowShrinks reproduces the pacing contract: the window
// starts at its preset, loses one step per success, and a reaction slower
// than the shrunken window ends the session.
func TestReactionWindowShrinks(t *testing.T) {
	f := newFixture(t)
	g := NewReaction(f.cfg)

	g.Tick(f.clock.Now()) // startup
	if g.window != reactionWindowPreset {
		t.Fatalf("expected the preset window %v, got %v", reactionWindowPreset, g.window)
	}

	last := g.window
	for i := 0; i < 3; i++ {
		g.Tick(f.clock.Now()) // show a color
		f.press(g.shown)
		g.Tick(f.clock.Now()) // react in time

		if g.window > last {
			t.Fatalf("window grew from %v to %v", last, g.window)
		}
		last = g.window
	}

	if want := reactionWindowPreset - 3*reactionWindowStep; g.window != want {
		t.Fatalf("expected a %v window after three successes, got %v", want, g.window)
	}

	g.Tick(f.clock.Now()) // fourth color
	f.clock.Advance(950 * time.Millisecond)
	before := f.clock.Now()
	g.Tick(f.clock.Now())

	if got := f.clock.Now().Sub(before); got != 2*BaseDuration {
		t.Errorf("expected a %v timeout cue, took %v", 2*BaseDuration, got)
	}

	if done := g.Tick(f.clock.Now()); !done {
		t.Error("expected the session to finish after the slow reaction")
	}
}

func TestReactionMismatch(t *testing.T) {
	f := newFixture(t, Green, Green, Green)
	g := NewReaction(f.cfg)

	g.Tick(f.clock.Now()) // startup
	g.Tick(f.clock.Now()) // show green

	mark := f.toneCount()
	before := f.clock.Now()
	f.press(Blue)
	g.Tick(f.clock.Now())

	if got := f.clock.Now().Sub(before); got != 4*BaseDuration {
		t.Errorf("expected a %v failure cue, took %v", 4*BaseDuration, got)
	}

	// the cue replays the color that was shown
	got := f.tonesSince(mark)
	if len(got) != 1 || got[0] != Green.Frequency() {
		t.Errorf("expected the failure cue on green, got %v", got)
	}

	if done := g.Tick(f.clock.Now()); !done {
		t.Error("expected the session to finish after the mismatch")
	}
}

func TestReactionFreshWindowPerSession(t *testing.T) {
	f := newFixture(t)
	g := NewReaction(f.cfg)

	g.Tick(f.clock.Now()) // startup
	g.Tick(f.clock.Now()) // show
	f.press(g.shown)
	g.Tick(f.clock.Now()) // success shrinks the window

	g.Tick(f.clock.Now()) // show
	f.clock.Advance(reactionWindowPreset)
	g.Tick(f.clock.Now()) // timeout
	if done := g.Tick(f.clock.Now()); !done {
		t.Fatal("expected the session to finish")
	}

	g.Tick(f.clock.Now()) // startup of a fresh session
	if g.window != reactionWindowPreset {
		t.Errorf("expected the window back at its preset, got %v", g.window)
	}
}

func TestReactionRoundsAreIndependentDraws(t *testing.T) {
	f := newFixture(t, Green, Yellow, Blue)
	g := NewReaction(f.cfg)

	g.Tick(f.clock.Now()) // startup

	var shown []Color
	for i := 0; i < 3; i++ {
		g.Tick(f.clock.Now()) // show
		shown = append(shown, g.shown)
		f.press(g.shown)
		g.Tick(f.clock.Now())
	}

	want := []Color{Green, Yellow, Blue}
	for i := range want {
		if shown[i] != want[i] {
			t.Errorf("round %v showed %v, expected the fresh draw %v", i, shown[i], want[i])
		}
	}
}

package game

import (
	"reflect"
	"testing"
)

// TestBuildSeedReplayAdd covers the opening moves: the console seeds blue,
// the player replays blue and appends yellow, and the next round demands
// the grown sequence back before anything new goes in.
func TestBuildSeedReplayAdd(t *testing.T) {
	f := newFixture(t, Blue)
	g := NewBuild(f.cfg)

	mark := f.toneCount()
	g.Tick(f.clock.Now()) // init plays the seed color
	if got := f.tonesSince(mark); !reflect.DeepEqual(got, []uint{Blue.Frequency()}) {
		t.Fatalf("expected the seed blue to play, got %v", got)
	}

	g.Tick(f.clock.Now()) // start input

	f.press(Blue)
	g.Tick(f.clock.Now()) // replay complete
	if g.state != buildUserAdd {
		t.Fatalf("expected USER_ADD, got %v", g.state)
	}

	f.press(Yellow)
	g.Tick(f.clock.Now()) // append

	if !reflect.DeepEqual(g.seq, Sequence{Blue, Yellow}) {
		t.Fatalf("expected sequence [BLUE YELLOW], got %v", g.seq)
	}
	if g.target != 2 {
		t.Fatalf("expected target 2, got %v", g.target)
	}

	// replaying the recorded sequence in order always succeeds
	g.Tick(f.clock.Now()) // start input
	f.press(Blue)
	g.Tick(f.clock.Now())
	f.press(Yellow)
	g.Tick(f.clock.Now())

	if g.state != buildUserAdd {
		t.Errorf("expected the exact replay to reach USER_ADD, got %v", g.state)
	}
}

// TestBuildRoundTrip grows the sequence over several rounds and checks the
// recorded sequence stays replayable before every append.
func TestBuildRoundTrip(t *testing.T) {
	f := newFixture(t, Green)
	g := NewBuild(f.cfg)

	g.Tick(f.clock.Now()) // init

	adds := []Color{Red, Red, Blue, Green, Yellow}
	for _, add := range adds {
		g.Tick(f.clock.Now()) // start input

		for i := 0; i < g.target; i++ {
			if g.cursor > g.target {
				t.Fatalf("counter invariant broken: cursor %v target %v", g.cursor, g.target)
			}

			f.press(g.seq[i])
			g.Tick(f.clock.Now())
		}

		if g.state != buildUserAdd {
			t.Fatalf("replay of %v colors failed in %v", g.target, g.state)
		}

		f.press(add)
		g.Tick(f.clock.Now())
	}

	want := append(Sequence{Green}, adds...)
	if !reflect.DeepEqual(g.seq, want) {
		t.Errorf("expected sequence %v, got %v", want, g.seq)
	}
}

func TestBuildWrongReplay(t *testing.T) {
	f := newFixture(t, Blue)
	g := NewBuild(f.cfg)

	g.Tick(f.clock.Now()) // init
	g.Tick(f.clock.Now()) // start input

	mark := f.toneCount()
	f.press(Green)
	g.Tick(f.clock.Now())

	// the cue plays the color that would have been correct
	if got := f.tonesSince(mark); !reflect.DeepEqual(got, []uint{Blue.Frequency()}) {
		t.Errorf("expected the failure cue on blue, got %v", got)
	}

	if done := g.Tick(f.clock.Now()); !done {
		t.Error("expected the session to finish after the wrong press")
	}
}

func TestBuildTimeoutWhileAdding(t *testing.T) {
	f := newFixture(t, Blue)
	g := NewBuild(f.cfg)

	g.Tick(f.clock.Now()) // init
	g.Tick(f.clock.Now()) // start input
	f.press(Blue)
	g.Tick(f.clock.Now()) // replay complete, awaiting the new color

	f.clock.Advance(playerTimeout)
	before := f.clock.Now()
	g.Tick(f.clock.Now())

	if got := f.clock.Now().Sub(before); got != 2*BaseDuration {
		t.Errorf("expected a %v timeout cue, took %v", 2*BaseDuration, got)
	}

	if done := g.Tick(f.clock.Now()); !done {
		t.Error("expected the session to finish after the timeout")
	}
}

// TestBuildFullSession drives the cooperative mode all the way to a full
// 32-color sequence and the victory tune.
func TestBuildFullSession(t *testing.T) {
	f := newFixture(t, Green)
	g := NewBuild(f.cfg)

	g.Tick(f.clock.Now()) // init

	for g.target < MaxCodeLength {
		g.Tick(f.clock.Now()) // start input

		for i := 0; i < g.target; i++ {
			f.press(g.seq[i])
			g.Tick(f.clock.Now())
		}

		if g.state != buildUserAdd {
			t.Fatalf("replay of %v colors failed in %v", g.target, g.state)
		}

		f.press(Color(g.target % NumColors))
		g.Tick(f.clock.Now())
	}

	g.Tick(f.clock.Now()) // start input of the final replay
	for i := 0; i < MaxCodeLength; i++ {
		f.press(g.seq[i])
		g.Tick(f.clock.Now())
	}

	if g.state != buildAllDone {
		t.Fatalf("expected ALL_DONE, got %v", g.state)
	}

	mark := f.toneCount()
	g.Tick(f.clock.Now()) // victory tune
	if len(f.tonesSince(mark)) == 0 {
		t.Error("expected the victory tune to play")
	}

	if done := g.Tick(f.clock.Now()); !done {
		t.Error("expected the session to finish after the win")
	}
}

func TestBuildFreshSessionAfterFinish(t *testing.T) {
	f := newFixture(t, Blue, Green)
	g := NewBuild(f.cfg)

	g.Tick(f.clock.Now()) // init
	g.Tick(f.clock.Now()) // start input
	f.clock.Advance(playerTimeout)
	g.Tick(f.clock.Now()) // timeout
	if done := g.Tick(f.clock.Now()); !done {
		t.Fatal("expected the session to finish")
	}

	g.Tick(f.clock.Now()) // init of a fresh session

	if g.target != 1 || len(g.seq) != 1 {
		t.Errorf("expected a fresh single-color sequence, got target %v seq %v", g.target, g.seq)
	}
}

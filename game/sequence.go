package game

import (
	"math/rand"
	"time"
)

// MaxCodeLength bounds the length of any color sequence.
const MaxCodeLength = 32

// Sequence is an ordered list of colors, at most MaxCodeLength long. It is
// owned by exactly one game machine for the duration of one session and
// discarded when the session resets.
type Sequence []Color

// Source produces random colors for a game session. Reseed is called once
// per session so consecutive playthroughs differ.
type Source interface {
	Reseed()
	Next(n int) Sequence
	NextColor() Color
}

// Generator is the rand-backed Source the daemon plays with. Colors are
// drawn uniformly and with replacement.
type Generator struct {
	rnd *rand.Rand
}

// Compile time check for protocol compatibility
var _ Source = (*Generator)(nil)

func NewGenerator() *Generator {
	return &Generator{
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (g *Generator) Reseed() {
	g.rnd.Seed(time.Now().UnixNano())
}

func (g *Generator) Next(n int) Sequence {
	seq := make(Sequence, n)
	for i := range seq {
		seq[i] = g.NextColor()
	}

	return seq
}

func (g *Generator) NextColor() Color {
	return Color(g.rnd.Intn(NumColors))
}

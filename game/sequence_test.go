package game

import "testing"

func TestGeneratorNextLengthAndRange(t *testing.T) {
	gen := NewGenerator()

	seq := gen.Next(MaxCodeLength)

	if len(seq) != MaxCodeLength {
		t.Fatalf("expected %v colors, got %v", MaxCodeLength, len(seq))
	}
	for i, c := range seq {
		if c < 0 || c >= NumColors {
			t.Errorf("color %v at %v out of range", c, i)
		}
	}
}

func TestGeneratorCoversAllColors(t *testing.T) {
	gen := NewGenerator()

	seen := make(map[Color]bool)
	for i := 0; i < 1000; i++ {
		seen[gen.NextColor()] = true
	}

	if len(seen) != NumColors {
		t.Errorf("expected all %v colors in 1000 draws, saw %v", NumColors, len(seen))
	}
}

func TestGeneratorReseed(t *testing.T) {
	gen := NewGenerator()
	gen.Reseed()

	seq := gen.Next(8)

	if len(seq) != 8 {
		t.Fatalf("expected 8 colors after reseed, got %v", len(seq))
	}
}

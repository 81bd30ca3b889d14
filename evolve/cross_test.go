// ABOUTME: Tests for one-point two-child crossover
// ABOUTME: Cut placement, conservation of material, midpoint fallback, and minimum-length repair

package evolve

import (
	"strings"
	"testing"

	"bfintern/bf"
	"bfintern/rng"
)

func TestBreedExchangesTails(t *testing.T) {
	r := rng.New(42)

	const maxLen = 256

	p1 := makeGenome(strings.Repeat("+", 40), maxLen)
	p2 := makeGenome(strings.Repeat("-", 40), maxLen)
	c1 := makeGenome("", maxLen)
	c2 := makeGenome("", maxLen)

	if err := breed(r, p1, p2, c1, c2, maxLen); err != nil {
		t.Fatalf("breed failed: %v", err)
	}

	// No padding happens at these lengths, so material is conserved.
	if c1.Len()+c2.Len() != p1.Len()+p2.Len() {
		t.Errorf("Material not conserved: %d + %d != %d + %d",
			c1.Len(), c2.Len(), p1.Len(), p2.Len())
	}

	// c1 is a '+' prefix followed by a '-' suffix with one boundary.
	boundary := strings.IndexByte(c1.Text(), '-')
	if boundary < 0 {
		t.Fatal("c1 has no tail from p2")
	}

	if strings.ContainsRune(c1.Text()[boundary:], '+') {
		t.Errorf("c1 mixes parent material: %q", c1.Text())
	}

	// Cuts land between the first and third quarter.
	if boundary < p1.Len()/4 || boundary > (p1.Len()/4)*3 {
		t.Errorf("Cut at %d outside [%d, %d]", boundary, p1.Len()/4, (p1.Len()/4)*3)
	}
}

func TestBreedMidpointFallback(t *testing.T) {
	r := rng.New(42)

	const maxLen = 64

	// Two maximum-length parents force the fallback whenever the two
	// random cuts differ: one child would be oversized, so both cut at the
	// midpoint. Equal cuts give two maximum-length children.
	p1 := makeGenome(strings.Repeat("+", maxLen), maxLen)
	p2 := makeGenome(strings.Repeat("-", maxLen), maxLen)
	c1 := makeGenome("", maxLen)
	c2 := makeGenome("", maxLen)

	for i := 0; i < 50; i++ {
		if err := breed(r, p1, p2, c1, c2, maxLen); err != nil {
			t.Fatalf("breed failed: %v", err)
		}

		if c1.Len() > maxLen || c2.Len() > maxLen {
			t.Fatalf("Child exceeds max: %d / %d", c1.Len(), c2.Len())
		}
	}
}

func TestBreedPadsShortChildren(t *testing.T) {
	r := rng.New(7)

	const maxLen = 64

	p1 := makeGenome(strings.Repeat("+", MinProgram), maxLen)
	p2 := makeGenome(strings.Repeat("-", MinProgram), maxLen)
	c1 := makeGenome("", maxLen)
	c2 := makeGenome("", maxLen)

	for i := 0; i < 100; i++ {
		if err := breed(r, p1, p2, c1, c2, maxLen); err != nil {
			t.Fatalf("breed failed: %v", err)
		}

		for _, c := range []*Genome{c1, c2} {
			if c.Len() < MinProgram {
				t.Fatalf("Child length %d below minimum", c.Len())
			}

			for _, b := range c.text {
				if !strings.ContainsRune(bf.Symbols, rune(b)) {
					t.Fatalf("Non-BF symbol %q in child", b)
				}
			}
		}
	}
}

func TestBreedDeterministic(t *testing.T) {
	const maxLen = 128

	run := func(seed uint32) (string, string) {
		r := rng.New(seed)
		p1 := makeGenome(strings.Repeat("+", 30), maxLen)
		p2 := makeGenome(strings.Repeat(">", 50), maxLen)
		c1 := makeGenome("", maxLen)
		c2 := makeGenome("", maxLen)

		if err := breed(r, p1, p2, c1, c2, maxLen); err != nil {
			t.Fatalf("breed failed: %v", err)
		}

		return c1.Text(), c2.Text()
	}

	a1, a2 := run(5)
	b1, b2 := run(5)

	if a1 != b1 || a2 != b2 {
		t.Error("Same seed produced different children")
	}
}

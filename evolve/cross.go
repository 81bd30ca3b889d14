// ABOUTME: One-point two-child crossover between parent genomes
// ABOUTME: Quarter-range cuts with midpoint fallback and minimum-length repair

package evolve

import (
	"fmt"

	"bfintern/bf"
	"bfintern/rng"
)

// breed recombines p1 and p2 into c1 and c2. Each parent is cut at a
// random point between its first and third quarter; if either child
// would exceed maxLen the cuts fall back to the parents' midpoints.
// Children shorter than MinProgram are padded with random BF symbols.
func breed(r *rng.PCG32, p1, p2, c1, c2 *Genome, maxLen int) error {
	p1i := r.IntRange(p1.Len()/4, (p1.Len()/4)*3)
	p2i := r.IntRange(p2.Len()/4, (p2.Len()/4)*3)

	if p1i+(p2.Len()-p2i) > maxLen || p2i+(p1.Len()-p1i) > maxLen {
		p1i = p1.Len() / 2
		p2i = p2.Len() / 2
	}

	c1.text = c1.text[:0]
	c1.text = append(c1.text, p1.text[:p1i]...)
	c1.text = append(c1.text, p2.text[p2i:]...)

	c2.text = c2.text[:0]
	c2.text = append(c2.text, p2.text[:p2i]...)
	c2.text = append(c2.text, p1.text[p1i:]...)

	for _, c := range []*Genome{c1, c2} {
		if c.Len() >= MinProgram {
			continue
		}

		pad := MinProgram - c.Len()
		n := c.Len()
		c.text = c.text[:MinProgram]

		added, err := bf.RandSyms(c.text[n:], pad, -1, r)
		if err != nil || added <= 0 {
			return fmt.Errorf("failed to generate random BF characters: %w", err)
		}
	}

	return nil
}

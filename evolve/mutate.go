// ABOUTME: Eight-way structural mutation operator for genomes
// ABOUTME: Splice and snip helpers preserve the length invariant or leave the genome unchanged

package evolve

import (
	"bfintern/bf"
	"bfintern/rng"
)

// mutation enumerates the structural edits a genome can undergo. The
// mutator draws one uniformly and dispatches.
type mutation uint32

const (
	// mutateMove deletes a random character and reinserts it elsewhere.
	// At MinProgram the delete is refused, so the character is only
	// inserted (a copy); when the target is the end position the insert
	// is refused, so the character is only deleted.
	mutateMove mutation = iota

	// mutateCopy inserts a duplicate of a random character elsewhere.
	mutateCopy

	// mutateAddChar inserts one random BF symbol.
	mutateAddChar

	// mutateAddStr inserts a freshly generated run of random BF symbols.
	mutateAddStr

	// mutateChange replaces a random character with a random BF symbol.
	mutateChange

	// mutateRemoveBlock deletes a contiguous block from a random location.
	mutateRemoveBlock

	// mutateRemoveRandom deletes characters one at a time from random locations.
	mutateRemoveRandom

	// mutateSwap exchanges two random characters.
	mutateSwap

	numMutations
)

// mutateStrSize bounds the run inserted by mutateAddStr.
const mutateStrSize = 64

// mutator applies structural edits under a fixed maximum program size.
type mutator struct {
	rng    *rng.PCG32
	maxLen int
	buf    [mutateStrSize]byte
}

// mutate picks a pivot in [1, len] and a mutation kind, then applies it.
// Edits that cannot fit are no-ops; the genome's cached fitness is the
// caller's responsibility.
func (m *mutator) mutate(g *Genome) {
	i := m.rng.Range(1, uint32(g.Len()))
	kind := mutation(m.rng.Range(0, uint32(numMutations)-1))

	switch kind {
	case mutateSwap:
		j := m.rng.Range(1, uint32(g.Len()))
		g.text[i-1], g.text[j-1] = g.text[j-1], g.text[i-1]

	case mutateMove:
		j := m.rng.RangeExcept(1, uint32(g.Len()), i)
		c := g.text[i-1]
		m.snip(g, int(i-1), 1)
		m.insert(g, []byte{c}, int(j-1))

	case mutateCopy:
		j := m.rng.RangeExcept(1, uint32(g.Len()), i)
		c := g.text[i-1]
		m.insert(g, []byte{c}, int(j-1))

	case mutateAddChar:
		c := bf.RandSym(m.rng)
		m.insert(g, []byte{c}, int(i-1))

	case mutateAddStr:
		runCap := min(mutateStrSize-1, m.maxLen-g.Len()-1)
		if runCap > 0 {
			n, err := bf.RandSyms(m.buf[:], 1, runCap, m.rng)
			if err == nil {
				m.insert(g, m.buf[:n], int(i-1))
			}
		}

	case mutateChange:
		g.text[i-1] = bf.RandSym(m.rng)

	case mutateRemoveBlock:
		n := m.rng.IntRange(1, g.Len()/2)
		at := m.rng.IntRange(0, g.Len()-n)
		m.snip(g, at, n)

	case mutateRemoveRandom:
		n := m.rng.IntRange(1, g.Len()/2)
		for count := 0; count < n; count++ {
			at := m.rng.Range(1, uint32(g.Len()))
			m.snip(g, int(at-1), 1)
		}
	}
}

// insert splices sub into g before index i. Fails (returns false, genome
// unchanged) when i is past the end or the result would exceed the
// maximum program size.
func (m *mutator) insert(g *Genome, sub []byte, i int) bool {
	if i >= g.Len() {
		return false
	}

	if g.Len()+len(sub) > m.maxLen {
		return false
	}

	n := g.Len()
	g.text = g.text[:n+len(sub)]
	copy(g.text[i+len(sub):], g.text[i:n])
	copy(g.text[i:], sub)

	return true
}

// snip removes size bytes starting at i, closing the gap. Clamps a
// too-long slice to the end of the genome and refuses any removal that
// would drop the length below MinProgram.
func (m *mutator) snip(g *Genome, i, size int) {
	if i+size > g.Len() {
		size = g.Len() - i
	}

	if size == 0 {
		return
	}

	if size+MinProgram > g.Len() {
		return
	}

	copy(g.text[i:], g.text[i+size:])
	g.text = g.text[:g.Len()-size]
}

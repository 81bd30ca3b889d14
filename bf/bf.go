// ABOUTME: Brainfuck alphabet and random program generation
// ABOUTME: Supplies the symbol pool used to seed and mutate genomes

// Package bf executes Brainfuck programs under hard resource bounds and
// generates random program text for the evolution engine.
package bf

import (
	"errors"

	"bfintern/rng"
)

// Symbols is the full BF alphabet. Index order is load-bearing: random
// symbols are drawn as Symbols[Range(0, 7)].
const Symbols = "+-<>.[],"

// ErrNoSymbols is returned when a random string of zero symbols was
// requested, which would leave a genome under the minimum length.
var ErrNoSymbols = errors.New("bf: generated zero random symbols")

// RandSym returns one random BF symbol.
func RandSym(r *rng.PCG32) byte {
	return Symbols[r.Range(0, uint32(len(Symbols)-1))]
}

// RandSyms fills dst with a random run of BF symbols. The run length is
// drawn uniformly from [minSize, maxSize], or is exactly minSize when
// maxSize < 0. Returns the number of symbols written.
func RandSyms(dst []byte, minSize, maxSize int, r *rng.PCG32) (int, error) {
	size := minSize
	if maxSize >= 0 {
		size = r.IntRange(minSize, maxSize)
	}

	for i := 0; i < size; i++ {
		dst[i] = RandSym(r)
	}

	if size == 0 {
		return 0, ErrNoSymbols
	}

	return size, nil
}

// Package random provides the deterministic random-number substrate of the
// generator: a Lehmer linear congruential stream with O(log n) skip-ahead,
// plus the uniform value primitives built on it. Every emitted column value
// must be a pure function of (scale, table, row number) through these
// streams, which is why nothing here touches math/rand.
package random

import "fmt"

const (
	maxInt32 = int64(1<<31 - 1)

	// Seed base and per-column spacing of the initial seeds.
	defaultSeedBase = 19620718
	columnSpacing   = maxInt32 / 799

	multiplier = int64(16807)
	quotient   = int64(127773) // maxInt32 / multiplier
	remainder  = int64(2836)   // maxInt32 % multiplier
)

// Stream is a Lehmer random-number stream bound to one generator column. A
// stream is exclusively owned by a single row generator and is not safe for
// concurrent use.
type Stream struct {
	seed        int64
	initialSeed int64
	seedsUsed   int32
	seedsPerRow int32
}

// NewStream builds a stream with the fixed test seed 3. Column-bound streams
// use NewStreamForColumn.
func NewStream(seedsPerRow int32) (*Stream, error) {
	if seedsPerRow < 0 {
		return nil, fmt.Errorf("invalid seedsPerRow %d: must be >= 0", seedsPerRow)
	}
	return &Stream{initialSeed: 3, seed: 3, seedsPerRow: seedsPerRow}, nil
}

// NewStreamForColumn derives the initial seed from the global column number.
func NewStreamForColumn(globalColumnNumber, seedsPerRow int32) (*Stream, error) {
	return NewStreamWithBase(globalColumnNumber, defaultSeedBase, seedsPerRow)
}

// NewStreamWithBase allows overriding the seed base.
func NewStreamWithBase(globalColumnNumber, seedBase, seedsPerRow int32) (*Stream, error) {
	if seedsPerRow < 0 {
		return nil, fmt.Errorf("invalid seedsPerRow %d: must be >= 0", seedsPerRow)
	}
	initialSeed := int64(seedBase) + int64(globalColumnNumber)*columnSpacing
	return &Stream{initialSeed: initialSeed, seed: initialSeed, seedsPerRow: seedsPerRow}, nil
}

// Next advances the stream one step and returns the new seed. Schrage's
// decomposition keeps the multiplication inside 64 bits.
func (s *Stream) Next() int64 {
	nextSeed := s.seed
	divisionResult := nextSeed / quotient
	modResult := nextSeed % quotient
	nextSeed = multiplier*modResult - divisionResult*remainder
	if nextSeed < 0 {
		nextSeed += maxInt32
	}

	s.seed = nextSeed
	s.seedsUsed++
	return s.seed
}

// NextDouble returns the next value scaled to [0, 1).
func (s *Stream) NextDouble() float64 {
	return float64(s.Next()) / float64(maxInt32)
}

// SkipRows positions the stream as if numberOfRows complete rows had been
// generated, in O(log n) by modular exponentiation from the initial seed.
func (s *Stream) SkipRows(numberOfRows int64) {
	valuesToSkip := numberOfRows * int64(s.seedsPerRow)
	nextSeed := s.initialSeed
	mult := multiplier

	for valuesToSkip > 0 {
		if valuesToSkip%2 != 0 {
			nextSeed = (mult * nextSeed) % maxInt32
		}
		valuesToSkip /= 2
		mult = (mult * mult) % maxInt32
	}

	s.seed = nextSeed
	s.seedsUsed = 0
}

// ResetSeed rewinds the stream to its initial seed.
func (s *Stream) ResetSeed() {
	s.seed = s.initialSeed
	s.seedsUsed = 0
}

func (s *Stream) SeedsUsed() int32 { return s.seedsUsed }

func (s *Stream) ResetSeedsUsed() { s.seedsUsed = 0 }

func (s *Stream) SeedsPerRow() int32 { return s.seedsPerRow }

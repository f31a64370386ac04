package rng

import (
	"crypto/rand"
	"encoding/binary"
	mathrand "math/rand"
)

// Engine is a deterministic pseudo-random source seeded once from the
// operating system's CSPRNG, then advanced deterministically so a run can
// be replayed from a logged seed.
type Engine struct {
	seed   int64
	source *mathrand.Rand
}

// NewEngine seeds a fresh Engine from crypto/rand.
func NewEngine() *Engine {
	seed := cryptoSeed()
	return NewEngineFromSeed(seed)
}

// NewEngineFromSeed rebuilds an Engine from a previously logged seed, for
// reproducing a run exactly.
func NewEngineFromSeed(seed int64) *Engine {
	return &Engine{seed: seed, source: mathrand.New(mathrand.NewSource(seed))}
}

// Seed returns the seed this engine was constructed with, for logging.
func (e *Engine) Seed() int64 { return e.seed }

// Float64 returns a pseudo-random number in [0.0, 1.0).
func (e *Engine) Float64() float64 { return e.source.Float64() }

// Intn returns a pseudo-random number in [0, n).
func (e *Engine) Intn(n int) int { return e.source.Intn(n) }

func cryptoSeed() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic(err) // crypto/rand is expected to never fail on a supported OS
	}

	return int64(binary.LittleEndian.Uint64(buf[:]) &^ (1 << 63))
}

package config

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for profile validation.
var (
	// ErrInvalidCompressionFactor indicates CompressionFactor <= 1.
	ErrInvalidCompressionFactor = errors.New("config: compression factor must be > 1")

	// ErrInvalidMaxSinTheta indicates MaxSinTheta outside (0, 1].
	ErrInvalidMaxSinTheta = errors.New("config: max sin theta must be in (0, 1]")

	// ErrInvalidBatchDivisor indicates BatchDivisor < 1.
	ErrInvalidBatchDivisor = errors.New("config: batch divisor must be >= 1")
)

// Profile holds the decimation tunables consumed by decimate.GenLODMesh.
type Profile struct {
	// CompressionFactor is the target shrink ratio; must be > 1. The
	// scheduler stops once live vertex count <= baseCount/CompressionFactor.
	CompressionFactor float64 `yaml:"compressionFactor"`

	// MaxSinTheta documents the sharp-feature threshold but is not
	// consulted by GenLODMesh's scheduler — preserved here so callers have
	// one place to record intent for a future threshold-aware scheduler.
	MaxSinTheta float64 `yaml:"maxSinTheta"`

	// BatchDivisor controls the scheduler's per-sweep batch size: a sweep
	// stops once more than floor(len(candidates) / BatchDivisor) collapses
	// have been applied, so at most that many plus one are applied.
	BatchDivisor int `yaml:"batchDivisor"`
}

// Option configures a Profile before validation.
type Option func(*Profile)

// WithCompressionFactor sets the target shrink ratio.
func WithCompressionFactor(factor float64) Option {
	return func(p *Profile) { p.CompressionFactor = factor }
}

// WithMaxSinTheta sets the (currently inert) sharp-feature threshold.
func WithMaxSinTheta(maxSinTheta float64) Option {
	return func(p *Profile) { p.MaxSinTheta = maxSinTheta }
}

// WithBatchDivisor overrides the scheduler's default half-batch heuristic.
func WithBatchDivisor(divisor int) Option {
	return func(p *Profile) { p.BatchDivisor = divisor }
}

// defaults reproduces the scheduler's historical ⌊|candidates|/2⌋ batch
// heuristic and a permissive max-sin-theta since the scheduler never
// reads it.
func defaults() Profile {
	return Profile{
		CompressionFactor: 2,
		MaxSinTheta:       1,
		BatchDivisor:      2,
	}
}

// New builds a Profile from defaults plus opts, then validates it.
func New(opts ...Option) (Profile, error) {
	p := defaults()
	for _, opt := range opts {
		opt(&p)
	}
	return p, p.Validate()
}

// Validate reports whether p's fields are in their documented ranges.
func (p Profile) Validate() error {
	if p.CompressionFactor <= 1 {
		return ErrInvalidCompressionFactor
	}
	if p.MaxSinTheta <= 0 || p.MaxSinTheta > 1 {
		return ErrInvalidMaxSinTheta
	}
	if p.BatchDivisor < 1 {
		return ErrInvalidBatchDivisor
	}
	return nil
}

// Load decodes a YAML decimation profile from r over the defaults, then
// validates it. Fields absent from the document keep their defaults; a
// field set explicitly to zero stays zero.
//
//	compressionFactor: 4
//	maxSinTheta: 0.35
//	batchDivisor: 2
func Load(r io.Reader) (Profile, error) {
	p := defaults()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Profile{}, fmt.Errorf("config: decode profile: %w", err)
	}
	return p, p.Validate()
}

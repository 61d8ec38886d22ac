// Package config resolves the tunables GenLODMesh needs — compression
// factor, the (currently inert) max-sin-theta sharp-feature threshold, and
// the scheduler's batch-size divisor — from functional options or from a
// YAML profile file, mirroring lvlath/core's GraphOption pattern and
// gazed-vu/load's YAML-configuration convention.
package config

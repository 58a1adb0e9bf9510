package snn

import (
	"hash/fnv"
	"math/rand/v2"
)

// PartitionedRNG provides isolated RNG streams per subsystem so that adding
// or reordering consumers of randomness in one layer cannot perturb the
// draws seen by another. Subsystem seeds are derived deterministically from
// the master seed and the subsystem name.
type PartitionedRNG struct {
	masterSeed uint64
	sources    map[string]*rand.PCG
}

// NewPartitionedRNG creates a partitioned RNG with the given master seed.
func NewPartitionedRNG(masterSeed int64) *PartitionedRNG {
	return &PartitionedRNG{
		masterSeed: uint64(masterSeed),
		sources:    make(map[string]*rand.PCG),
	}
}

// SourceFor returns the rand.Source for the given subsystem name, creating
// it lazily. Repeated calls with the same name return the same source, so
// all consumers of a subsystem share one stream.
func (p *PartitionedRNG) SourceFor(name string) rand.Source {
	if src, ok := p.sources[name]; ok {
		return src
	}
	src := rand.NewPCG(p.masterSeed, p.deriveSeed(name))
	p.sources[name] = src
	return src
}

// ForSubsystem returns a *rand.Rand over the subsystem's source.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	return rand.New(p.SourceFor(name))
}

// deriveSeed hashes the subsystem name so stream identity depends only on
// the name, never on creation order.
func (p *PartitionedRNG) deriveSeed(name string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(name))
	return h.Sum64()
}

// Subsystem names for the network's random consumers.
const (
	SubsystemInput = "input"
)

package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Sammyverse0/Space-Hopper/internal/domain/entity"
)

// CandidateRegistry is the world-side lookup the resolver scans. It returns
// value snapshots; the resolver never retains or mutates registry state.
type CandidateRegistry interface {
	Candidates(tag string) []entity.Source
}

// Resolver picks the attachment source nearest to a position. It is a pure
// query: selection never gates physics by range, the controller applies its
// own activation-distance check on the returned distance.
type Resolver struct {
	registry CandidateRegistry
	tag      string
}

// NewResolver creates a resolver over the given registry, considering only
// sources carrying tag.
func NewResolver(registry CandidateRegistry, tag string) *Resolver {
	return &Resolver{registry: registry, tag: tag}
}

// Resolve returns the candidate with the smallest center distance to pos.
// Ties keep the earliest candidate in registry order; with no candidates the
// second return is false.
func (r *Resolver) Resolve(pos mgl64.Vec3) (entity.AttachmentTarget, bool) {
	candidates := r.registry.Candidates(r.tag)
	if len(candidates) == 0 {
		return entity.AttachmentTarget{}, false
	}

	best := candidates[0]
	bestDist := pos.Sub(best.Position).Len()
	for _, c := range candidates[1:] {
		if d := pos.Sub(c.Position).Len(); d < bestDist {
			best = c
			bestDist = d
		}
	}
	return entity.AttachmentTarget{Source: best, Distance: bestDist}, true
}

package recording

import "github.com/gogpu/tally"

// ResourcePool stores the paths referenced by recording commands.
// Each Add operation clones the path so a recording is never affected by
// later changes to the caller's path.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	paths []*tally.Path
}

// NewResourcePool creates an empty resource pool with pre-allocated capacity.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		paths: make([]*tally.Path, 0, 64),
	}
}

// AddPath adds a path to the pool and returns its reference.
func (p *ResourcePool) AddPath(path *tally.Path) PathRef {
	if path != nil {
		path = path.Clone()
	}
	p.paths = append(p.paths, path)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return PathRef(uint32(len(p.paths) - 1))
}

// GetPath returns the path for the given reference.
// Returns nil if the reference is invalid.
func (p *ResourcePool) GetPath(ref PathRef) *tally.Path {
	if int(ref) >= len(p.paths) {
		return nil
	}
	return p.paths[ref]
}

// PathCount returns the number of paths in the pool.
func (p *ResourcePool) PathCount() int {
	return len(p.paths)
}

// Clear removes all resources from the pool.
func (p *ResourcePool) Clear() {
	p.paths = p.paths[:0]
}

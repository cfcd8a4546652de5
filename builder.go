package shapemesh

import (
	"sync"

	"github.com/gogpu/shapemesh/internal/geom"
	"github.com/gogpu/shapemesh/internal/offset"
	"github.com/gogpu/shapemesh/internal/triangulate"
)

// Builder owns the scratch buffers of the geometry pipeline: offset engine
// state, ear clipping index lists and point arrays. Reusing a Builder across
// rebuilds avoids per-call allocation.
//
// A Builder is not safe for concurrent use. Give each goroutine its own, or
// take one from a BuilderPool.
type Builder struct {
	off *offset.Offsetter
	tri triangulate.Triangulator

	fringe  offset.Result
	ring    []geom.Point
	indices []uint32
}

// NewBuilder returns a Builder with empty scratch buffers.
func NewBuilder() *Builder {
	return &Builder{off: offset.NewOffsetter()}
}

// ringOf copies the vertex positions in [start, end) into the ring scratch.
func (b *Builder) ringOf(m *Mesh, start, end int) []geom.Point {
	b.ring = b.ring[:0]
	for i := start; i < end; i++ {
		b.ring = append(b.ring, m.Position(i))
	}
	return b.ring
}

// BuilderPool hands out Builders so concurrent rebuilds each get their own
// scratch arena.
//
// Thread safety: BuilderPool is safe for concurrent use.
type BuilderPool struct {
	pool sync.Pool
}

// NewBuilderPool returns an empty pool.
func NewBuilderPool() *BuilderPool {
	return &BuilderPool{
		pool: sync.Pool{
			New: func() any { return NewBuilder() },
		},
	}
}

// Get returns a Builder from the pool.
func (p *BuilderPool) Get() *Builder {
	return p.pool.Get().(*Builder)
}

// Put returns b to the pool. b must not be used afterwards.
func (p *BuilderPool) Put(b *Builder) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}

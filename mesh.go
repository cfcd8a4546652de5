package shapemesh

import (
	"fmt"

	"golang.org/x/image/math/f32"
)

// noAA marks an absent anti-aliasing region.
const noAA = -1

// Vertex is one interleaved vertex record.
type Vertex struct {
	X, Y  float32
	U, V  float32
	Color uint32 // packed with RGBA.Pack
	Alpha float32
}

// Position returns the vertex position.
func (v Vertex) Position() Point {
	return Pt(float64(v.X), float64(v.Y))
}

// UV returns the vertex texture coordinates.
func (v Vertex) UV() Point {
	return Pt(float64(v.U), float64(v.V))
}

// Region selects a part of a Mesh's vertex buffer.
type Region int

const (
	// RegionMain is the main ring, before the first hole.
	RegionMain Region = iota
	// RegionHoles covers every hole ring.
	RegionHoles
	// RegionAA is the anti-aliasing fringe.
	RegionAA
)

// Mesh is an interleaved vertex buffer and a triangle index buffer, laid
// out as the main ring, then each hole ring, then the optional
// anti-aliasing fringe. The fringe is always the suffix of both buffers so it
// can be cleared without touching the rest.
//
// A Mesh has a single writer. After structural edits (positions, vertex or
// index counts) call Modified so cached bounds, world positions and the
// color/alpha dedup state are refreshed.
type Mesh struct {
	vertices   []Vertex
	indices    []uint32
	holeStarts []int

	aaVertexStart int
	aaIndexStart  int

	version uint64

	bounds      Rect
	boundsValid bool

	color      uint32
	colorValid bool
	alpha      float32
	alphaValid bool

	world        []f32.Vec2
	worldMatrix  Matrix
	worldVersion uint64
	worldValid   bool
}

// NewMesh returns an empty mesh.
func NewMesh() *Mesh {
	return &Mesh{
		aaVertexStart: noAA,
		aaIndexStart:  noAA,
	}
}

// AddVertex appends a vertex and returns its index.
func (m *Mesh) AddVertex(pos, uv Point, color uint32, alpha float32) int {
	m.vertices = append(m.vertices, Vertex{
		X: float32(pos.X), Y: float32(pos.Y),
		U: float32(uv.X), V: float32(uv.Y),
		Color: color,
		Alpha: alpha,
	})
	return len(m.vertices) - 1
}

// AddTriangle appends one triangle. Indices are checked by Validate.
func (m *Mesh) AddTriangle(a, b, c int) {
	m.indices = append(m.indices, uint32(a), uint32(b), uint32(c))
}

func (m *Mesh) addIndices(base int, indices []uint32) {
	for _, i := range indices {
		m.indices = append(m.indices, uint32(base)+i)
	}
}

// VertexCount returns the number of vertices, including any fringe.
func (m *Mesh) VertexCount() int { return len(m.vertices) }

// IndexCount returns the number of indices, including any fringe.
func (m *Mesh) IndexCount() int { return len(m.indices) }

// TriangleCount returns IndexCount()/3.
func (m *Mesh) TriangleCount() int { return len(m.indices) / 3 }

// Vertex returns vertex i.
func (m *Mesh) Vertex(i int) Vertex { return m.vertices[i] }

// Vertices returns the vertex buffer. The slice aliases the mesh.
func (m *Mesh) Vertices() []Vertex { return m.vertices }

// Indices returns the index buffer. The slice aliases the mesh.
func (m *Mesh) Indices() []uint32 { return m.indices }

// Position returns the position of vertex i.
func (m *Mesh) Position(i int) Point { return m.vertices[i].Position() }

// SetPosition moves vertex i. Call Modified afterwards.
func (m *Mesh) SetPosition(i int, p Point) {
	m.vertices[i].X, m.vertices[i].Y = float32(p.X), float32(p.Y)
}

// UV returns the texture coordinates of vertex i.
func (m *Mesh) UV(i int) Point { return m.vertices[i].UV() }

// SetUV sets the texture coordinates of vertex i.
func (m *Mesh) SetUV(i int, uv Point) {
	m.vertices[i].U, m.vertices[i].V = float32(uv.X), float32(uv.Y)
}

// Color returns the packed color of vertex i.
func (m *Mesh) Color(i int) uint32 { return m.vertices[i].Color }

// SetColor sets the packed color of vertex i.
func (m *Mesh) SetColor(i int, c uint32) {
	m.vertices[i].Color = c
	m.colorValid = false
}

// Alpha returns the alpha of vertex i.
func (m *Mesh) Alpha(i int) float32 { return m.vertices[i].Alpha }

// SetAlpha sets the alpha of vertex i.
func (m *Mesh) SetAlpha(i int, a float32) {
	m.vertices[i].Alpha = a
	m.alphaValid = false
}

// EnsureCapacity grows the vertex buffer to hold at least n vertices and
// the index buffer to hold a triangulation of them.
func (m *Mesh) EnsureCapacity(n int) error {
	if n < 3 {
		return fmt.Errorf("%w: capacity %d, need at least 3", ErrInvalidInput, n)
	}
	if cap(m.vertices) < n {
		grown := make([]Vertex, len(m.vertices), n)
		copy(grown, m.vertices)
		m.vertices = grown
	}
	if want := 3 * (n - 2); cap(m.indices) < want {
		grown := make([]uint32, len(m.indices), want)
		copy(grown, m.indices)
		m.indices = grown
	}
	return nil
}

// Clear removes all geometry and markers but keeps the buffers' capacity.
func (m *Mesh) Clear() {
	m.vertices = m.vertices[:0]
	m.indices = m.indices[:0]
	m.holeStarts = m.holeStarts[:0]
	m.aaVertexStart = noAA
	m.aaIndexStart = noAA
	m.Modified()
}

// MarkHoleStart records the current vertex count as the start of a hole
// ring. Hole starts must be strictly increasing, must follow a non-empty
// main ring and cannot be added once a fringe exists.
func (m *Mesh) MarkHoleStart() error {
	n := len(m.vertices)
	switch {
	case m.HasAA():
		return fmt.Errorf("%w: hole marked after anti-aliasing", ErrInvalidInput)
	case n == 0:
		return fmt.Errorf("%w: hole marked before the main ring", ErrInvalidInput)
	case len(m.holeStarts) > 0 && m.holeStarts[len(m.holeStarts)-1] >= n:
		return fmt.Errorf("%w: empty hole ring at vertex %d", ErrInvalidInput, n)
	}
	m.holeStarts = append(m.holeStarts, n)
	return nil
}

// HoleStarts returns the vertex index where each hole ring begins.
func (m *Mesh) HoleStarts() []int { return m.holeStarts }

// baseVertexEnd returns the end of the main and hole rings.
func (m *Mesh) baseVertexEnd() int {
	if m.HasAA() {
		return m.aaVertexStart
	}
	return len(m.vertices)
}

// baseIndexEnd returns the end of the non-fringe indices.
func (m *Mesh) baseIndexEnd() int {
	if m.HasAA() {
		return m.aaIndexStart
	}
	return len(m.indices)
}

// mainEnd returns the end of the main ring.
func (m *Mesh) mainEnd() int {
	if len(m.holeStarts) > 0 {
		return m.holeStarts[0]
	}
	return m.baseVertexEnd()
}

// RingRanges returns [start, end) vertex ranges: the main ring first, then
// each hole. The fringe is excluded.
func (m *Mesh) RingRanges() [][2]int {
	end := m.baseVertexEnd()
	if end == 0 {
		return nil
	}
	ranges := make([][2]int, 0, 1+len(m.holeStarts))
	ranges = append(ranges, [2]int{0, m.mainEnd()})
	for i, s := range m.holeStarts {
		e := end
		if i+1 < len(m.holeStarts) {
			e = m.holeStarts[i+1]
		}
		ranges = append(ranges, [2]int{s, e})
	}
	return ranges
}

// BeginAA marks the current buffer ends as the start of the fringe. An
// existing fringe is cleared first.
func (m *Mesh) BeginAA() {
	if m.HasAA() {
		m.ClearAA()
	}
	m.aaVertexStart = len(m.vertices)
	m.aaIndexStart = len(m.indices)
}

// HasAA reports whether the mesh carries a fringe.
func (m *Mesh) HasAA() bool { return m.aaVertexStart != noAA }

// AAVertexStart returns the first fringe vertex, or -1.
func (m *Mesh) AAVertexStart() int { return m.aaVertexStart }

// AAIndexStart returns the first fringe index, or -1.
func (m *Mesh) AAIndexStart() int { return m.aaIndexStart }

// ClearAA truncates both buffers back to the fringe markers and removes
// the markers. It is a no-op without a fringe.
func (m *Mesh) ClearAA() {
	if !m.HasAA() {
		return
	}
	m.vertices = m.vertices[:m.aaVertexStart]
	m.indices = m.indices[:m.aaIndexStart]
	m.aaVertexStart = noAA
	m.aaIndexStart = noAA
	m.Modified()
}

// Modified invalidates cached bounds, world positions and the color/alpha
// dedup state, and bumps Version.
func (m *Mesh) Modified() {
	m.version++
	m.boundsValid = false
	m.colorValid = false
	m.alphaValid = false
}

// Version returns a counter bumped by every Modified call.
func (m *Mesh) Version() uint64 { return m.version }

// Bounds returns the bounding rectangle of the main ring. It is cached
// until the next Modified.
func (m *Mesh) Bounds() Rect {
	if !m.boundsValid {
		m.bounds = m.BoundsOf(RegionMain)
		m.boundsValid = true
	}
	return m.bounds
}

// BoundsOf returns the bounding rectangle of a region. It is not cached.
func (m *Mesh) BoundsOf(r Region) Rect {
	var lo, hi int
	switch r {
	case RegionMain:
		lo, hi = 0, m.mainEnd()
	case RegionHoles:
		lo, hi = m.mainEnd(), m.baseVertexEnd()
	case RegionAA:
		if !m.HasAA() {
			return emptyRect
		}
		lo, hi = m.aaVertexStart, len(m.vertices)
	default:
		return emptyRect
	}
	if lo >= hi {
		return emptyRect
	}
	b := Rect{Min: m.Position(lo), Max: m.Position(lo)}
	for _, v := range m.vertices[lo+1 : hi] {
		x, y := float64(v.X), float64(v.Y)
		b.Min.X, b.Max.X = min(b.Min.X, x), max(b.Max.X, x)
		b.Min.Y, b.Max.Y = min(b.Min.Y, y), max(b.Max.Y, y)
	}
	return b
}

// SetAllColors sets every vertex, fringe included, to c. The write is
// skipped when the mesh is already known to be uniformly c.
func (m *Mesh) SetAllColors(c uint32) {
	if m.colorValid && m.color == c {
		return
	}
	for i := range m.vertices {
		m.vertices[i].Color = c
	}
	m.color, m.colorValid = c, true
}

// SetAllAlpha sets the alpha of every non-fringe vertex to a. Fringe
// vertices keep alpha 0. The write is skipped when the mesh is already
// known to carry alpha a.
func (m *Mesh) SetAllAlpha(a float32) {
	if m.alphaValid && m.alpha == a {
		return
	}
	end := m.baseVertexEnd()
	for i := range m.vertices[:end] {
		m.vertices[i].Alpha = a
	}
	for i := end; i < len(m.vertices); i++ {
		m.vertices[i].Alpha = 0
	}
	m.alpha, m.alphaValid = a, true
}

// WorldPositions returns every vertex position transformed by mat. The
// result is cached until the matrix changes or Modified is called, and is
// owned by the mesh.
func (m *Mesh) WorldPositions(mat Matrix) []f32.Vec2 {
	if m.worldValid && m.worldVersion == m.version && m.worldMatrix == mat && len(m.world) == len(m.vertices) {
		return m.world
	}
	if cap(m.world) < len(m.vertices) {
		m.world = make([]f32.Vec2, len(m.vertices))
	}
	m.world = m.world[:len(m.vertices)]
	for i, v := range m.vertices {
		p := mat.TransformPoint(v.Position())
		m.world[i] = f32.Vec2{float32(p.X), float32(p.Y)}
	}
	m.worldMatrix, m.worldVersion, m.worldValid = mat, m.version, true
	return m.world
}

// Validate checks the buffer invariants: every index refers to an existing
// vertex, the index count is a multiple of 3, hole starts are strictly
// increasing and inside the base region, and the fringe is a suffix of both
// buffers.
func (m *Mesh) Validate() error {
	if len(m.indices)%3 != 0 {
		return fmt.Errorf("%w: index count %d is not a multiple of 3", ErrInvalidInput, len(m.indices))
	}
	for i, idx := range m.indices {
		if int(idx) >= len(m.vertices) {
			return fmt.Errorf("%w: index %d refers to vertex %d of %d", ErrInvalidInput, i, idx, len(m.vertices))
		}
	}
	if (m.aaVertexStart == noAA) != (m.aaIndexStart == noAA) {
		return fmt.Errorf("%w: fringe markers disagree", ErrInvalidInput)
	}
	if m.HasAA() && (m.aaVertexStart > len(m.vertices) || m.aaIndexStart > len(m.indices) || m.aaIndexStart%3 != 0) {
		return fmt.Errorf("%w: fringe markers out of range", ErrInvalidInput)
	}
	prev := 0
	for _, s := range m.holeStarts {
		if s <= prev || s >= m.baseVertexEnd() {
			return fmt.Errorf("%w: hole start %d out of order", ErrInvalidInput, s)
		}
		prev = s
	}
	return nil
}

package shapemesh

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
)

// VertexStride is the size in bytes of one packed Vertex.
const VertexStride = 24

// VertexLayout describes the packed vertex buffer for a render pipeline.
func VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},  // position
				{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},  // uv
				{Format: gputypes.VertexFormatUnorm8x4, Offset: 16, ShaderLocation: 2},  // color
				{Format: gputypes.VertexFormatFloat32, Offset: 20, ShaderLocation: 3},   // alpha
			},
		},
	}
}

// IndexFormat returns the format of the packed index buffer.
func IndexFormat() gputypes.IndexFormat {
	return gputypes.IndexFormatUint32
}

// PrimitiveState returns the primitive state meshes are drawn with. Culling
// is off because fills and fringes do not share a winding.
func PrimitiveState() gputypes.PrimitiveState {
	return gputypes.PrimitiveState{
		Topology: gputypes.PrimitiveTopologyTriangleList,
		CullMode: gputypes.CullModeNone,
	}
}

// VertexBytes packs the vertex buffer little-endian per VertexLayout.
func (m *Mesh) VertexBytes() []byte {
	buf := make([]byte, len(m.vertices)*VertexStride)
	for i, v := range m.vertices {
		writeVertex(buf[i*VertexStride:], v)
	}
	return buf
}

// IndexBytes packs the index buffer little-endian per IndexFormat.
func (m *Mesh) IndexBytes() []byte {
	buf := make([]byte, len(m.indices)*4)
	for i, idx := range m.indices {
		binary.LittleEndian.PutUint32(buf[i*4:], idx)
	}
	return buf
}

func writeVertex(buf []byte, v Vertex) {
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(v.X))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(v.Y))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(v.U))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(v.V))
	binary.LittleEndian.PutUint32(buf[16:20], v.Color)
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(v.Alpha))
}

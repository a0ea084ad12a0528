package embedding

import (
	"encoding/binary"
	"math"
	"time"
)

type Embedding struct {
	Value     []float64 `json:"value"`
	Model     string    `json:"model"`
	CreatedAt time.Time `json:"created_at"`
}

func (e *Embedding) Dimension() int {
	return len(e.Value)
}

// ToFloat32Blob encodes the vector as little-endian float32, the layout
// RediSearch expects for FLOAT32 vector fields.
func (e *Embedding) ToFloat32Blob() []byte {
	buf := make([]byte, 4*len(e.Value))
	for i, v := range e.Value {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(float32(v)))
	}
	return buf
}

func FromFloat32Blob(blob []byte) []float64 {
	out := make([]float64, len(blob)/4)
	for i := range out {
		out[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(blob[i*4:])))
	}
	return out
}

func Normalize(v []float64) {
	var sumSquares float64
	for _, val := range v {
		sumSquares += val * val
	}
	norm := math.Sqrt(sumSquares)
	if norm == 0 {
		return
	}
	for i := range v {
		v[i] /= norm
	}
}

// CosineSimilarity returns 0 when either vector has zero norm or the
// dimensions differ.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

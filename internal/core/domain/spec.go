package domain

import (
	"bytes"
	"encoding/binary"
	"time"
)

// Element tags of the canonical BuildSpec encoding.
const (
	tagOption byte = 'o'
	tagInline byte = 'e'
	tagFile   byte = 'f'
)

// BuildSpec is the byte-exact description of a build request.
// Two invocations are interchangeable iff their specs are byte-identical.
type BuildSpec struct {
	data []byte
}

// NewBuildSpec wraps raw spec bytes, e.g. ones read back from an entry.
func NewBuildSpec(data []byte) BuildSpec {
	return BuildSpec{data: bytes.Clone(data)}
}

// Bytes returns a copy of the encoded spec.
func (s BuildSpec) Bytes() []byte {
	return bytes.Clone(s.data)
}

// Len returns the encoded size in bytes.
func (s BuildSpec) Len() int {
	return len(s.data)
}

// IsZero reports whether the spec is empty.
func (s BuildSpec) IsZero() bool {
	return len(s.data) == 0
}

// Matches reports whether raw is exactly this spec, length included.
func (s BuildSpec) Matches(raw []byte) bool {
	return len(raw) == len(s.data) && bytes.Equal(raw, s.data)
}

// SpecBuilder accumulates spec elements in order.
// The buffer grows as needed; size limits are applied by the fingerprinter.
type SpecBuilder struct {
	buf bytes.Buffer
}

// NewSpecBuilder returns an empty builder.
func NewSpecBuilder() *SpecBuilder {
	return &SpecBuilder{}
}

// Option appends an option token.
func (b *SpecBuilder) Option(token string) *SpecBuilder {
	b.element(tagOption, token)
	return b
}

// Inline appends literal source text.
func (b *SpecBuilder) Inline(text string) *SpecBuilder {
	b.element(tagInline, text)
	return b
}

// File appends a source file identity: path, size and modification time.
func (b *SpecBuilder) File(path string, size int64, modTime time.Time) *SpecBuilder {
	b.element(tagFile, path)
	var num [8]byte
	binary.BigEndian.PutUint64(num[:], uint64(size)) //nolint:gosec // bit pattern is what gets encoded
	b.buf.Write(num[:])
	binary.BigEndian.PutUint64(num[:], uint64(modTime.UnixNano())) //nolint:gosec // same as above
	b.buf.Write(num[:])
	return b
}

// Build returns the immutable spec. The builder may keep being used afterwards.
func (b *SpecBuilder) Build() BuildSpec {
	return BuildSpec{data: bytes.Clone(b.buf.Bytes())}
}

func (b *SpecBuilder) element(tag byte, value string) {
	b.buf.WriteByte(tag)
	var n [4]byte
	binary.BigEndian.PutUint32(n[:], uint32(len(value))) //nolint:gosec // specs are far below 4 GiB
	b.buf.Write(n[:])
	b.buf.WriteString(value)
}

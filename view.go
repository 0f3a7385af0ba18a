package varstruct

import (
	"fmt"
	"unsafe"
)

// View is a read-only, non-owning binding of a Layout to a byte buffer plus
// the element counts of its array members. It is cheap to construct and to
// copy, and never owns or frees the buffer. The caller guarantees the
// buffer stays alive and large enough (SizeBytes) for as long as the view is
// used.
//
// A View has no setters. Mutation is only possible through a MutableView,
// so binding read-only data with BindReadOnly rules out writes at compile
// time.
type View struct {
	layout  *Layout
	buf     []byte
	offsets []int // per member, declaration order
	elems   []int // per member; element count for arrays
	total   int
}

// MutableView is a View over a writable buffer. It adds setters; everything
// else is promoted from View.
type MutableView struct {
	View
}

// Bind binds the layout to a writable buffer. sizes must hold exactly one
// non-negative element count per Array member, in declaration order; any
// mismatch is a caller defect and panics. A nil buffer is legal as long as no
// accessor that touches bytes is used (e.g. a zero-member layout).
//
// Binding walks the member list once, accumulating packed offsets.
func (l *Layout) Bind(buf []byte, sizes []int) MutableView {
	return MutableView{l.bind(buf, sizes)}
}

// BindReadOnly is Bind for buffers that must not be written through the view.
func (l *Layout) BindReadOnly(buf []byte, sizes []int) View {
	return l.bind(buf, sizes)
}

func (l *Layout) bind(buf []byte, sizes []int) View {
	if len(sizes) > l.numArrays {
		panic(fmt.Sprintf("varstruct: %s: too many array sizes: got %d, layout declares %d array member(s)",
			l.name, len(sizes), l.numArrays))
	}
	if len(sizes) < l.numArrays {
		panic(fmt.Sprintf("varstruct: %s: not enough array sizes: got %d, layout declares %d array member(s)",
			l.name, len(sizes), l.numArrays))
	}

	v := View{
		layout:  l,
		buf:     buf,
		offsets: make([]int, len(l.members)),
		elems:   make([]int, len(l.members)),
	}

	off := 0
	ai := 0
	for i, m := range l.members {
		v.offsets[i] = off
		if m.Kind == Array {
			n := sizes[ai]
			ai++
			if n < 0 {
				panic(fmt.Sprintf("varstruct: %s.%s: negative array size %d", l.name, m.Name, n))
			}
			v.elems[i] = n
			off += n * m.Size
		} else {
			off += m.Size
		}
	}
	v.total = off
	return v
}

// Layout returns the layout this view is bound to.
func (v View) Layout() *Layout { return v.layout }

// NumMembers returns the count of declared members.
func (v View) NumMembers() int { return v.layout.NumMembers() }

// SizeBytes returns the total packed byte size of the bound struct: the
// offset of the last member plus its size, or 0 for a zero-member layout.
func (v View) SizeBytes() int { return v.total }

// Offset returns the byte offset of the named member from the start of the
// buffer.
func (v View) Offset(name string) int {
	return v.offsets[v.layout.member(name)]
}

// ArrayLen returns the bound element count of the named Array member.
func (v View) ArrayLen(name string) int {
	i := v.layout.member(name)
	if v.layout.members[i].Kind != Array {
		panic(fmt.Sprintf("varstruct: %s.%s is not an array member", v.layout.name, name))
	}
	return v.elems[i]
}

// scalarOff resolves a Scalar member of exactly the given width.
func (v View) scalarOff(name string, width int) int {
	i := v.layout.member(name)
	m := v.layout.members[i]
	if m.Kind != Scalar {
		panic(fmt.Sprintf("varstruct: %s.%s is not a scalar member", v.layout.name, name))
	}
	if m.Size != width {
		panic(fmt.Sprintf("varstruct: %s.%s is %d byte(s), accessor wants %d", v.layout.name, name, m.Size, width))
	}
	return v.offsets[i]
}

// elemOff resolves element index of an Array member of exactly the given
// element width. With check set, index must satisfy
// index >= 0 && index < length.
func (v View) elemOff(name string, width, index int, check bool) int {
	i := v.layout.member(name)
	m := v.layout.members[i]
	if m.Kind != Array {
		panic(fmt.Sprintf("varstruct: %s.%s is not an array member", v.layout.name, name))
	}
	if m.Size != width {
		panic(fmt.Sprintf("varstruct: %s.%s elements are %d byte(s), accessor wants %d", v.layout.name, name, m.Size, width))
	}
	if check {
		if n := v.elems[i]; index < 0 || index >= n {
			panic(fmt.Sprintf("varstruct: %s.%s: index >= 0 && index < length fails (index=%d, length=%d)",
				v.layout.name, name, index, n))
		}
	}
	return v.offsets[i] + index*m.Size
}

// Scalar getters. Multi-byte loads reinterpret the host byte order in place;
// no endianness conversion is performed. Signed and float interpretations are
// casts of the same bit pattern (int32(v.Uint32(...)),
// math.Float64frombits(v.Uint64(...))).

func (v View) Uint8(name string) uint8 {
	return v.buf[v.scalarOff(name, 1)]
}

func (v View) Uint16(name string) uint16 {
	return *(*uint16)(unsafe.Pointer(&v.buf[v.scalarOff(name, 2)]))
}

func (v View) Uint32(name string) uint32 {
	return *(*uint32)(unsafe.Pointer(&v.buf[v.scalarOff(name, 4)]))
}

func (v View) Uint64(name string) uint64 {
	return *(*uint64)(unsafe.Pointer(&v.buf[v.scalarOff(name, 8)]))
}

// Bytes returns a copy of the member's raw bytes: the whole field for a
// scalar, the whole bound region for an array. Fixed-size non-primitive
// members ("internal" types) are read this way, as opaque blobs of known
// size.
func (v View) Bytes(name string) []byte {
	i := v.layout.member(name)
	m := v.layout.members[i]
	size := m.Size
	if m.Kind == Array {
		size = m.Size * v.elems[i]
	}
	out := make([]byte, size)
	copy(out, v.buf[v.offsets[i]:v.offsets[i]+size])
	return out
}

// Array element getters, bounds-checked by default. The *Unchecked variants
// skip the declared-length check for pre-validated call sites; what memory an
// out-of-range index then touches is entirely the caller's contract.

func (v View) Uint8At(name string, index int) uint8 {
	return v.buf[v.elemOff(name, 1, index, true)]
}

func (v View) Uint8AtUnchecked(name string, index int) uint8 {
	return v.buf[v.elemOff(name, 1, index, false)]
}

func (v View) Uint16At(name string, index int) uint16 {
	return *(*uint16)(unsafe.Pointer(&v.buf[v.elemOff(name, 2, index, true)]))
}

func (v View) Uint16AtUnchecked(name string, index int) uint16 {
	return *(*uint16)(unsafe.Pointer(&v.buf[v.elemOff(name, 2, index, false)]))
}

func (v View) Uint32At(name string, index int) uint32 {
	return *(*uint32)(unsafe.Pointer(&v.buf[v.elemOff(name, 4, index, true)]))
}

func (v View) Uint32AtUnchecked(name string, index int) uint32 {
	return *(*uint32)(unsafe.Pointer(&v.buf[v.elemOff(name, 4, index, false)]))
}

func (v View) Uint64At(name string, index int) uint64 {
	return *(*uint64)(unsafe.Pointer(&v.buf[v.elemOff(name, 8, index, true)]))
}

func (v View) Uint64AtUnchecked(name string, index int) uint64 {
	return *(*uint64)(unsafe.Pointer(&v.buf[v.elemOff(name, 8, index, false)]))
}

// ElemBytes returns a copy of one element of an Array member of any element
// size. ElemBytesUnchecked skips the declared-length check like the typed
// *AtUnchecked accessors.
func (v View) ElemBytes(name string, index int) []byte {
	return v.elemBytes(name, index, true)
}

func (v View) ElemBytesUnchecked(name string, index int) []byte {
	return v.elemBytes(name, index, false)
}

func (v View) elemBytes(name string, index int, check bool) []byte {
	i := v.layout.member(name)
	m := v.layout.members[i]
	off := v.elemOff(name, m.Size, index, check)
	out := make([]byte, m.Size)
	copy(out, v.buf[off:off+m.Size])
	return out
}

// Scalar setters. Writes land directly in the caller's buffer; there is no
// hidden copy.

func (v MutableView) SetUint8(name string, x uint8) {
	v.buf[v.scalarOff(name, 1)] = x
}

func (v MutableView) SetUint16(name string, x uint16) {
	*(*uint16)(unsafe.Pointer(&v.buf[v.scalarOff(name, 2)])) = x
}

func (v MutableView) SetUint32(name string, x uint32) {
	*(*uint32)(unsafe.Pointer(&v.buf[v.scalarOff(name, 4)])) = x
}

func (v MutableView) SetUint64(name string, x uint64) {
	*(*uint64)(unsafe.Pointer(&v.buf[v.scalarOff(name, 8)])) = x
}

// SetBytes writes a scalar member's whole bit pattern. len(p) must equal the
// member's size.
func (v MutableView) SetBytes(name string, p []byte) {
	i := v.layout.member(name)
	m := v.layout.members[i]
	if m.Kind != Scalar {
		panic(fmt.Sprintf("varstruct: %s.%s is not a scalar member", v.layout.name, name))
	}
	if len(p) != m.Size {
		panic(fmt.Sprintf("varstruct: %s.%s is %d byte(s), got %d", v.layout.name, name, m.Size, len(p)))
	}
	copy(v.buf[v.offsets[i]:v.offsets[i]+m.Size], p)
}

// Array element setters, checked and unchecked like the getters.

func (v MutableView) SetUint8At(name string, index int, x uint8) {
	v.buf[v.elemOff(name, 1, index, true)] = x
}

func (v MutableView) SetUint8AtUnchecked(name string, index int, x uint8) {
	v.buf[v.elemOff(name, 1, index, false)] = x
}

func (v MutableView) SetUint16At(name string, index int, x uint16) {
	*(*uint16)(unsafe.Pointer(&v.buf[v.elemOff(name, 2, index, true)])) = x
}

func (v MutableView) SetUint16AtUnchecked(name string, index int, x uint16) {
	*(*uint16)(unsafe.Pointer(&v.buf[v.elemOff(name, 2, index, false)])) = x
}

func (v MutableView) SetUint32At(name string, index int, x uint32) {
	*(*uint32)(unsafe.Pointer(&v.buf[v.elemOff(name, 4, index, true)])) = x
}

func (v MutableView) SetUint32AtUnchecked(name string, index int, x uint32) {
	*(*uint32)(unsafe.Pointer(&v.buf[v.elemOff(name, 4, index, false)])) = x
}

func (v MutableView) SetUint64At(name string, index int, x uint64) {
	*(*uint64)(unsafe.Pointer(&v.buf[v.elemOff(name, 8, index, true)])) = x
}

func (v MutableView) SetUint64AtUnchecked(name string, index int, x uint64) {
	*(*uint64)(unsafe.Pointer(&v.buf[v.elemOff(name, 8, index, false)])) = x
}

// SetElemBytes writes one element of an Array member of any element size.
// len(p) must equal the element size. SetElemBytesUnchecked skips the
// declared-length check like the typed Set*AtUnchecked setters.
func (v MutableView) SetElemBytes(name string, index int, p []byte) {
	v.setElemBytes(name, index, p, true)
}

func (v MutableView) SetElemBytesUnchecked(name string, index int, p []byte) {
	v.setElemBytes(name, index, p, false)
}

func (v MutableView) setElemBytes(name string, index int, p []byte, check bool) {
	i := v.layout.member(name)
	m := v.layout.members[i]
	if len(p) != m.Size {
		panic(fmt.Sprintf("varstruct: %s.%s elements are %d byte(s), got %d", v.layout.name, name, m.Size, len(p)))
	}
	off := v.elemOff(name, m.Size, index, check)
	copy(v.buf[off:off+m.Size], p)
}

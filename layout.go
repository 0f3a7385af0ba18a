package varstruct

import "fmt"

// Layout is the immutable, ordered member list for one struct shape. Declare
// it once (typically in a package-level var) and bind it to as many buffers as
// needed; a Layout is safe for concurrent use by any number of views.
//
// Member order is the sole basis for offset computation: offsets are a running
// byte sum in declaration order with no alignment padding, ever.
type Layout struct {
	name      string
	members   []Member
	index     map[string]int
	numArrays int
	fixed     int // sum of scalar sizes
}

// Builder assembles a Layout one member at a time, in declaration order.
//
//	Simple := varstruct.NewBuilder("SimpleStruct").
//		Scalar("foo", 4).
//		Array("bar", 1).
//		Array("baz", 1).
//		MustBuild()
type Builder struct {
	name    string
	members []Member
	errs    []error
}

// NewBuilder starts a Layout declaration. The name is used only in
// diagnostics.
func NewBuilder(name string) *Builder {
	return &Builder{name: name}
}

// Scalar appends a fixed-size member of the given byte size.
func (b *Builder) Scalar(name string, size int) *Builder {
	return b.add(Member{Name: name, Kind: Scalar, Size: size})
}

// Array appends a variable-length member with the given element byte size.
// The element count is supplied later, at Bind time.
func (b *Builder) Array(name string, elemSize int) *Builder {
	return b.add(Member{Name: name, Kind: Array, Size: elemSize})
}

func (b *Builder) add(m Member) *Builder {
	if m.Name == "" {
		b.errs = append(b.errs, fmt.Errorf("%s: member with empty name", b.name))
		return b
	}
	if m.Size <= 0 {
		b.errs = append(b.errs, fmt.Errorf("%s.%s: size must be positive, got %d", b.name, m.Name, m.Size))
		return b
	}
	for _, prev := range b.members {
		if prev.Name == m.Name {
			b.errs = append(b.errs, fmt.Errorf("%s: duplicate member %q", b.name, m.Name))
			return b
		}
	}
	b.members = append(b.members, m)
	return b
}

// Build finalizes the declaration. Declaring zero members is legal and yields
// a Layout with NumMembers() == 0 that binds to a zero-byte region.
func (b *Builder) Build() (*Layout, error) {
	if len(b.errs) > 0 {
		return nil, b.errs[0]
	}

	l := &Layout{
		name:    b.name,
		members: append([]Member(nil), b.members...),
		index:   make(map[string]int, len(b.members)),
	}
	for i, m := range l.members {
		l.index[m.Name] = i
		if m.Kind == Array {
			l.numArrays++
		} else {
			l.fixed += m.Size
		}
	}
	return l, nil
}

// MustBuild is Build for package-level declarations; it panics on a malformed
// declaration.
func (b *Builder) MustBuild() *Layout {
	l, err := b.Build()
	if err != nil {
		panic("varstruct: " + err.Error())
	}
	return l
}

// Name returns the declared struct name.
func (l *Layout) Name() string { return l.name }

// NumMembers returns the count of declared members, scalars and arrays alike.
func (l *Layout) NumMembers() int { return len(l.members) }

// NumArrays returns the count of Array members, which is also the exact
// number of array sizes Bind expects.
func (l *Layout) NumArrays() int { return l.numArrays }

// Members returns a copy of the member list in declaration order.
func (l *Layout) Members() []Member {
	return append([]Member(nil), l.members...)
}

// MemberNames returns the member names in declaration order.
func (l *Layout) MemberNames() []string {
	names := make([]string, len(l.members))
	for i, m := range l.members {
		names[i] = m.Name
	}
	return names
}

// Member returns the descriptor at position i in declaration order.
func (l *Layout) Member(i int) Member { return l.members[i] }

// ScalarSize returns the static byte size of a Scalar member. It needs no
// bound view. Asking for an unknown name or an Array member is a caller
// defect and panics.
func (l *Layout) ScalarSize(name string) int {
	m := l.members[l.member(name)]
	if m.Kind != Scalar {
		panic(fmt.Sprintf("varstruct: %s.%s is an array member, its size is per-binding", l.name, name))
	}
	return m.Size
}

func (l *Layout) member(name string) int {
	i, ok := l.index[name]
	if !ok {
		panic(fmt.Sprintf("varstruct: %s has no member %q", l.name, name))
	}
	return i
}

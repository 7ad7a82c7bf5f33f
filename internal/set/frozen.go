package set

import "cmp"

// Frozen is an immutable snapshot of a Set. It exposes only the query,
// algebra and relationship surface; mutation simply is not in its method
// set. For ordered element types, Key returns a canonical string so a
// frozen set can be used as a map key.
type Frozen[E comparable] struct {
	inner Set[E]
}

// Freeze copies s into an immutable Frozen set. Later mutation of s does not
// affect the result.
func Freeze[E comparable](s Set[E]) Frozen[E] {
	return Frozen[E]{inner: s.Clone()}
}

// FrozenOf returns a Frozen set of the given elements.
func FrozenOf[E comparable](elems ...E) Frozen[E] {
	return Frozen[E]{inner: New(elems...)}
}

// Len reports the number of elements.
func (f Frozen[E]) Len() int { return f.inner.Len() }

// Contains reports whether e is a member.
func (f Frozen[E]) Contains(e E) bool { return f.inner.Contains(e) }

// Elements returns the members in unspecified order.
func (f Frozen[E]) Elements() []E { return f.inner.Elements() }

// Equal reports whether f and o contain exactly the same elements.
func (f Frozen[E]) Equal(o Frozen[E]) bool { return f.inner.Equal(o.inner) }

// Thaw returns a mutable copy of f.
func (f Frozen[E]) Thaw() Set[E] { return f.inner.Clone() }

// Union returns the frozen union of f and o.
func (f Frozen[E]) Union(o Frozen[E]) Frozen[E] {
	return Frozen[E]{inner: f.inner.Union(o.inner)}
}

// Intersection returns the frozen intersection of f and o.
func (f Frozen[E]) Intersection(o Frozen[E]) Frozen[E] {
	return Frozen[E]{inner: f.inner.Intersection(o.inner)}
}

// SubsetOf reports whether every element of f is in o.
func (f Frozen[E]) SubsetOf(o Frozen[E]) bool { return f.inner.SubsetOf(o.inner) }

// Key returns a canonical rendering of f ("{e1 e2 ...}", ascending), equal
// for equal sets, so a Frozen set of ordered elements can key a map.
func Key[E cmp.Ordered](f Frozen[E]) string {
	return Format(f.inner)
}

// FormatFrozen renders f the same way Format renders a Set.
func FormatFrozen[E cmp.Ordered](f Frozen[E]) string {
	return Format(f.inner)
}

// Package set implements a generic hash set and the algebra the demonstrator
// reports on: union, intersection, difference, symmetric difference, and the
// subset/superset/disjoint relationships.
//
// A Set is a map keyed by element with empty struct values, so membership,
// Add and Discard are O(1) on average. Elements must be comparable; display
// ordering is the caller's concern (see Sorted).
package set

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrNotFound is returned by Remove when the element is not a member.
var ErrNotFound = errors.New("set: element not found")

// ErrEmpty is returned by Pop when the set has no elements.
var ErrEmpty = errors.New("set: empty")

// Set is a mutable collection of unique elements.
//
// The zero value is not usable; construct with New or FromSlice. An empty
// Set and an empty map are distinct constructions in Go, so there is no
// ambiguity between "empty set" and "empty mapping" literals.
type Set[E comparable] map[E]struct{}

// New returns a Set holding the given elements. New[E]() is the explicit
// empty-set constructor.
func New[E comparable](elems ...E) Set[E] {
	s := make(Set[E], len(elems))
	for _, e := range elems {
		s[e] = struct{}{}
	}
	return s
}

// FromSlice returns a Set of the distinct elements of xs.
func FromSlice[E comparable](xs []E) Set[E] {
	return New(xs...)
}

// Len reports the number of elements.
func (s Set[E]) Len() int { return len(s) }

// Contains reports whether e is a member.
func (s Set[E]) Contains(e E) bool {
	_, ok := s[e]
	return ok
}

// Add inserts e. Adding an existing element is a no-op.
func (s Set[E]) Add(e E) {
	s[e] = struct{}{}
}

// Update inserts every element of elems.
func (s Set[E]) Update(elems ...E) {
	for _, e := range elems {
		s[e] = struct{}{}
	}
}

// Remove deletes e, returning ErrNotFound if e is not a member.
func (s Set[E]) Remove(e E) error {
	if _, ok := s[e]; !ok {
		return fmt.Errorf("%w: %v", ErrNotFound, e)
	}
	delete(s, e)
	return nil
}

// Discard deletes e if present. Unlike Remove it never fails.
func (s Set[E]) Discard(e E) {
	delete(s, e)
}

// Pop removes and returns an arbitrary element. Which element is removed is
// unspecified; callers may only rely on the length decreasing by one.
func (s Set[E]) Pop() (E, error) {
	for e := range s {
		delete(s, e)
		return e, nil
	}
	var zero E
	return zero, ErrEmpty
}

// Clear removes every element.
func (s Set[E]) Clear() {
	clear(s)
}

// Clone returns an independent copy of s.
func (s Set[E]) Clone() Set[E] {
	out := make(Set[E], len(s))
	for e := range s {
		out[e] = struct{}{}
	}
	return out
}

// Elements returns the members in unspecified order.
func (s Set[E]) Elements() []E {
	out := make([]E, 0, len(s))
	for e := range s {
		out = append(out, e)
	}
	return out
}

// Equal reports whether s and o contain exactly the same elements.
func (s Set[E]) Equal(o Set[E]) bool {
	if len(s) != len(o) {
		return false
	}
	for e := range s {
		if _, ok := o[e]; !ok {
			return false
		}
	}
	return true
}

// Union returns a new set with the elements of s and o.
func (s Set[E]) Union(o Set[E]) Set[E] {
	out := make(Set[E], len(s)+len(o))
	for e := range s {
		out[e] = struct{}{}
	}
	for e := range o {
		out[e] = struct{}{}
	}
	return out
}

// Intersection returns a new set with the elements common to s and o.
func (s Set[E]) Intersection(o Set[E]) Set[E] {
	small, large := s, o
	if len(o) < len(s) {
		small, large = o, s
	}
	out := make(Set[E])
	for e := range small {
		if _, ok := large[e]; ok {
			out[e] = struct{}{}
		}
	}
	return out
}

// Difference returns a new set with the elements of s not in o.
func (s Set[E]) Difference(o Set[E]) Set[E] {
	out := make(Set[E])
	for e := range s {
		if _, ok := o[e]; !ok {
			out[e] = struct{}{}
		}
	}
	return out
}

// SymmetricDifference returns a new set with the elements in exactly one of
// s and o. It equals s.Difference(o).Union(o.Difference(s)).
func (s Set[E]) SymmetricDifference(o Set[E]) Set[E] {
	out := make(Set[E])
	for e := range s {
		if _, ok := o[e]; !ok {
			out[e] = struct{}{}
		}
	}
	for e := range o {
		if _, ok := s[e]; !ok {
			out[e] = struct{}{}
		}
	}
	return out
}

// SubsetOf reports whether every element of s is in o.
func (s Set[E]) SubsetOf(o Set[E]) bool {
	if len(s) > len(o) {
		return false
	}
	for e := range s {
		if _, ok := o[e]; !ok {
			return false
		}
	}
	return true
}

// SupersetOf reports whether every element of o is in s.
func (s Set[E]) SupersetOf(o Set[E]) bool {
	return o.SubsetOf(s)
}

// ProperSubsetOf reports whether s is a subset of o and s != o.
func (s Set[E]) ProperSubsetOf(o Set[E]) bool {
	return len(s) < len(o) && s.SubsetOf(o)
}

// ProperSupersetOf reports whether s is a superset of o and s != o.
func (s Set[E]) ProperSupersetOf(o Set[E]) bool {
	return o.ProperSubsetOf(s)
}

// Disjoint reports whether s and o share no elements.
func (s Set[E]) Disjoint(o Set[E]) bool {
	small, large := s, o
	if len(o) < len(s) {
		small, large = o, s
	}
	for e := range small {
		if _, ok := large[e]; ok {
			return false
		}
	}
	return true
}

// Sorted returns the elements of s in ascending order.
func Sorted[E cmp.Ordered](s Set[E]) []E {
	out := make([]E, 0, len(s))
	for e := range s {
		out = append(out, e)
	}
	slices.Sort(out)
	return out
}

// Format renders s as "{e1 e2 ...}" with elements in ascending order, so the
// same set always renders the same way.
func Format[E cmp.Ordered](s Set[E]) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, e := range Sorted(s) {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", e)
	}
	sb.WriteByte('}')
	return sb.String()
}

package facts

import (
	"fmt"

	"numfacts/internal/set"
)

// SetFacts computes the set-algebra battery. The only error paths are
// Remove and Pop on the mutable-copy walkthrough, and the fixed inputs
// never trigger them.
func SetFacts() ([]Section, error) {
	set1 := set.New(1, 2, 3, 4, 5)
	set2 := set.New(4, 5, 6, 7, 8)
	set3 := set.New(1, 2, 3)

	creating := Section{Title: "Creating Sets"}
	creating.add("set1", set1)
	creating.add("set2", set2)
	creating.add("set3", set3)
	withDups := []int{1, 2, 2, 3, 4, 4, 5}
	creating.add(fmt.Sprintf("set built from slice %v (duplicates dropped)", withDups), set.FromSlice(withDups))
	creating.add("explicit empty set, set.New[int]()", set.New[int]())
	creating.add("empty set vs empty map", "distinct types here: set.Set[int] is not map[int]V")

	algebra := Section{Title: "Basic Set Operations"}
	union := set1.Union(set2)
	inter := set1.Intersection(set2)
	algebra.add("union set1 ∪ set2", union)
	algebra.add("intersection set1 ∩ set2", inter)
	algebra.add("difference set1 \\ set2", set1.Difference(set2))
	algebra.add("difference set2 \\ set1", set2.Difference(set1))
	algebra.add("symmetric difference set1 △ set2", set1.SymmetricDifference(set2))
	algebra.add("|A∪B| = |A|+|B|-|A∩B| holds",
		union.Len() == set1.Len()+set2.Len()-inter.Len())

	methods := Section{Title: "Set Methods"}
	work := set3.Clone()
	methods.add("start from a copy of set3", work.Clone())
	work.Add(4)
	methods.add("after Add(4)", work.Clone())
	work.Update(5, 6, 7)
	methods.add("after Update(5, 6, 7)", work.Clone())
	if err := work.Remove(7); err != nil {
		return nil, fmt.Errorf("set methods walkthrough: %w", err)
	}
	methods.add("after Remove(7)", work.Clone())
	work.Discard(10) // absent; Discard never fails
	methods.add("after Discard(10), 10 was never a member", work.Clone())
	popped, err := work.Pop()
	if err != nil {
		return nil, fmt.Errorf("set methods walkthrough: %w", err)
	}
	methods.add("Pop() removed one arbitrary element", popped)
	methods.add("after Pop()", work.Clone())
	work.Clear()
	methods.add("after Clear()", work.Clone())

	rel := Section{Title: "Set Relationships"}
	rel.add("set3 ⊆ set1", set3.SubsetOf(set1))
	rel.add("set1 ⊇ set3", set1.SupersetOf(set3))
	rel.add("set3 ⊂ set1 (proper)", set3.ProperSubsetOf(set1))
	rel.add("set1 ⊃ set3 (proper)", set1.ProperSupersetOf(set3))
	rel.add("set1 and set3 disjoint", set1.Disjoint(set3))
	far := set.New(10, 11, 12)
	rel.add(fmt.Sprintf("set1 and %s disjoint", set.Format(far)), set1.Disjoint(far))

	frozen := Section{Title: "Frozen Sets"}
	fz := set.FrozenOf(1, 2, 3, 4, 5)
	frozen.add("frozen set", fz)
	frozen.add("mutators are not in the frozen method set", "read-only view; Thaw() returns a mutable copy")
	lookup := map[string]string{set.Key(fz): "value stored behind a frozen-set key"}
	frozen.add("map lookup via canonical Key()", lookup[set.Key(set.FrozenOf(5, 4, 3, 2, 1))])

	return []Section{creating, algebra, methods, rel, frozen}, nil
}

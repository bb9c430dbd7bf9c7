package serde

// Set is an unordered collection of unique members, backed by a map.
// It can hold members of mixed types as long as they are comparable.
// An instance can be created like a map with make(serde.Set) or via NewSet.
type Set map[any]struct{}

// NewSet creates a set containing the given members
func NewSet(members ...any) Set {
	set := make(Set, len(members))
	set.Insert(members...)
	return set
}

// Insert adds members to the set. Members already present are ignored.
func (set Set) Insert(members ...any) {
	for i := range members {
		set[members[i]] = struct{}{}
	}
}

// Remove deletes members from the set
func (set Set) Remove(members ...any) {
	for i := range members {
		delete(set, members[i])
	}
}

// Contain reports whether all given members are in the set
func (set Set) Contain(members ...any) bool {
	for i := range members {
		if _, ok := set[members[i]]; !ok {
			return false
		}
	}
	return true
}

// Collect returns the members of the set in map iteration order
func (set Set) Collect() []any {
	members := make([]any, 0, len(set))
	for member := range set {
		members = append(members, member)
	}
	return members
}

// Len returns the number of members in the set
func (set Set) Len() int {
	return len(set)
}

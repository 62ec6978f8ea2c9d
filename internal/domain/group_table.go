package domain

// GroupTable maps each group name to the ordered list of samples that
// belong to it. A sample can belong to more than one group, and listing
// the same sample under the same group twice has no effect. Group and
// sample order both follow first appearance in the input file so output
// is deterministic.
type GroupTable struct {
	members map[string][]string
	order   []string
}

// NewGroupTable creates an empty GroupTable
func NewGroupTable() *GroupTable {
	return &GroupTable{
		members: make(map[string][]string),
	}
}

// Add records sample as a member of group, creating the group on first
// use. Re-adding an existing member is a no-op.
func (t *GroupTable) Add(group, sample string) {
	if _, ok := t.members[group]; !ok {
		t.members[group] = []string{}
		t.order = append(t.order, group)
	}
	for _, s := range t.members[group] {
		if s == sample {
			return
		}
	}
	t.members[group] = append(t.members[group], sample)
}

// Has reports whether group was defined
func (t *GroupTable) Has(group string) bool {
	_, ok := t.members[group]
	return ok
}

// Samples returns the members of group in file order, or nil for an
// unknown group.
func (t *GroupTable) Samples(group string) []string {
	return t.members[group]
}

// Names returns all group names in the order they first appeared
func (t *GroupTable) Names() []string {
	return t.order
}

// Len returns the number of defined groups
func (t *GroupTable) Len() int {
	return len(t.members)
}

// Members returns the underlying group to samples mapping
func (t *GroupTable) Members() map[string][]string {
	return t.members
}

// NameSet returns the defined group names as a GroupSet for membership
// checks by the contrast reader.
func (t *GroupTable) NameSet() GroupSet {
	set := make(GroupSet, len(t.members))
	for name := range t.members {
		set[name] = struct{}{}
	}
	return set
}

// GroupSet is a set of defined group names
type GroupSet map[string]struct{}

// Has reports whether name is in the set
func (s GroupSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// File: label_registry.go
// Role: Bidirectional id <-> cluster label map and the fresh-label
// allocator. Cluster ids are allocated monotonically and never reused:
// ChangeLabel renames membership but FreshLabel never rewinds its counter.
package core

type LabelRegistry struct {
	nextLabel ClusterLabel
	labelOf   map[ObjectID]ClusterLabel
	membersOf map[ClusterLabel]map[ObjectID]struct{}
}

// NewLabelRegistry returns an empty registry. The first FreshLabel() call
// returns 0, matching "cluster id 0 is a valid first cluster".
func NewLabelRegistry() *LabelRegistry {
	return &LabelRegistry{
		labelOf:   make(map[ObjectID]ClusterLabel),
		membersOf: make(map[ClusterLabel]map[ObjectID]struct{}),
	}
}

// Get returns id's current label, or Unclassified if id has never been
// labeled.
func (r *LabelRegistry) Get(id ObjectID) ClusterLabel {
	if l, ok := r.labelOf[id]; ok {
		return l
	}
	return Unclassified
}

// Set assigns label to id, moving it out of any previous label's member
// set first. Noise and real cluster labels are tracked in membersOf the
// same way; Unclassified is not (it means "not yet in the registry") so
// Set(id, Unclassified) instead forgets id entirely.
func (r *LabelRegistry) Set(id ObjectID, label ClusterLabel) {
	if old, ok := r.labelOf[id]; ok {
		if set := r.membersOf[old]; set != nil {
			delete(set, id)
			if len(set) == 0 {
				delete(r.membersOf, old)
			}
		}
	}

	if label == Unclassified {
		delete(r.labelOf, id)
		return
	}

	r.labelOf[id] = label
	if r.membersOf[label] == nil {
		r.membersOf[label] = make(map[ObjectID]struct{})
	}
	r.membersOf[label][id] = struct{}{}
}

// Forget removes id from the registry entirely (used when an id is
// destroyed by the Deleter).
func (r *LabelRegistry) Forget(id ObjectID) {
	r.Set(id, Unclassified)
}

// FreshLabel returns a never-before-used non-negative cluster label and
// advances the allocator.
func (r *LabelRegistry) FreshLabel() ClusterLabel {
	l := r.nextLabel
	r.nextLabel++
	return l
}

// IDsWith returns the current members of label, unordered.
func (r *LabelRegistry) IDsWith(label ClusterLabel) []ObjectID {
	set := r.membersOf[label]
	out := make([]ObjectID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}

// MemberCount returns len(IDsWith(label)) without allocating a slice; used
// by the Inserter's merge tie-break ("largest current membership").
func (r *LabelRegistry) MemberCount(label ClusterLabel) int {
	return len(r.membersOf[label])
}

// ChangeLabel bulk-renames every member of from to to. A no-op if from has
// no members. Used by merges (rename every losing label to the winner).
func (r *LabelRegistry) ChangeLabel(from, to ClusterLabel) {
	if from == to {
		return
	}
	members := r.membersOf[from]
	if len(members) == 0 {
		return
	}
	if r.membersOf[to] == nil {
		r.membersOf[to] = make(map[ObjectID]struct{})
	}
	for id := range members {
		r.labelOf[id] = to
		r.membersOf[to][id] = struct{}{}
	}
	delete(r.membersOf, from)
}

package uir

// ChangeType represents the type of change between two nodes.
type ChangeType int

// Change type constants.
const (
	ChangeAdded ChangeType = iota
	ChangeRemoved
	ChangeModified
)

func (ct ChangeType) String() string {
	switch ct {
	case ChangeAdded:
		return "added"
	case ChangeRemoved:
		return "removed"
	case ChangeModified:
		return "modified"
	default:
		return "unknown"
	}
}

// NodeChange represents a structural change between two UIR trees. Exactly
// one of Before/After is nil for added/removed changes; both are set for
// modified ones.
type NodeChange struct {
	Before *Node
	After  *Node
	Type   ChangeType
}

// DetectChanges detects structural changes between two UIR trees. ID
// determinism makes this meaningful across reparses: unchanged source yields
// unchanged subtrees, so only genuinely edited regions surface here.
func DetectChanges(before, after *Node) []NodeChange {
	var changes []NodeChange

	if before == nil && after != nil {
		return append(changes, NodeChange{After: after, Type: ChangeAdded})
	}

	if before != nil && after == nil {
		return append(changes, NodeChange{Before: before, Type: ChangeRemoved})
	}

	if before == nil && after == nil {
		return changes
	}

	// The node itself counts as modified when its type, name or position moved.
	nodeModified := before.Type != after.Type ||
		before.Name != after.Name ||
		locationsChanged(before.Loc, after.Loc)

	childChanges := diffChildren(before, after)

	if nodeModified || len(childChanges) > 0 {
		changes = append(changes, NodeChange{
			Before: before,
			After:  after,
			Type:   ChangeModified,
		})
	}

	return append(changes, childChanges...)
}

// locationsChanged checks if source locations differ between two nodes.
func locationsChanged(locA, locB *SourceLocation) bool {
	if locA == nil && locB == nil {
		return false
	}

	if locA == nil || locB == nil {
		return true
	}

	return locA.StartLine != locB.StartLine ||
		locA.StartColumn != locB.StartColumn ||
		locA.EndLine != locB.EndLine ||
		locA.EndColumn != locB.EndColumn
}

// childKey identifies a child node by its type and name.
type childKey struct {
	Type NodeType
	Name string
}

// diffChildren compares the children of two nodes and returns changes.
// Children are matched by (Type, Name) pairs. Unmatched children in before
// are reported as removed; unmatched children in after are reported as added.
func diffChildren(before, after *Node) []NodeChange {
	beforeChildren := before.Children
	afterChildren := after.Children

	if len(beforeChildren) == 0 && len(afterChildren) == 0 {
		return nil
	}

	afterUsed := make([]bool, len(afterChildren))
	afterIndex := buildChildIndex(afterChildren)
	beforeMatched := make([]bool, len(beforeChildren))

	changes := matchChildren(beforeChildren, afterChildren, afterIndex, beforeMatched, afterUsed)
	changes = append(changes, collectRemovedChildren(beforeChildren, beforeMatched)...)
	changes = append(changes, collectAddedChildren(afterChildren, afterUsed)...)

	return changes
}

func buildChildIndex(children []*Node) map[childKey][]int {
	index := make(map[childKey][]int)

	for idx, child := range children {
		key := childKey{child.Type, child.Name}
		index[key] = append(index[key], idx)
	}

	return index
}

func matchChildren(
	beforeChildren, afterChildren []*Node,
	afterIndex map[childKey][]int,
	beforeMatched, afterUsed []bool,
) []NodeChange {
	var changes []NodeChange

	for idx, bc := range beforeChildren {
		key := childKey{bc.Type, bc.Name}

		indices, ok := afterIndex[key]
		if !ok {
			continue
		}

		for _, afterIdx := range indices {
			if afterUsed[afterIdx] {
				continue
			}

			afterUsed[afterIdx] = true
			beforeMatched[idx] = true

			childChanges := DetectChanges(bc, afterChildren[afterIdx])
			changes = append(changes, childChanges...)

			break
		}
	}

	return changes
}

func collectRemovedChildren(beforeChildren []*Node, beforeMatched []bool) []NodeChange {
	var changes []NodeChange

	for idx, bc := range beforeChildren {
		if !beforeMatched[idx] {
			changes = append(changes, NodeChange{Before: bc, Type: ChangeRemoved})
		}
	}

	return changes
}

func collectAddedChildren(afterChildren []*Node, afterUsed []bool) []NodeChange {
	var changes []NodeChange

	for idx, ac := range afterChildren {
		if !afterUsed[idx] {
			changes = append(changes, NodeChange{After: ac, Type: ChangeAdded})
		}
	}

	return changes
}

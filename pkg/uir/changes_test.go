package uir

import "testing"

func countByType(changes []NodeChange, changeType ChangeType) int {
	count := 0

	for _, change := range changes {
		if change.Type == changeType {
			count++
		}
	}

	return count
}

func TestDetectChangesIdentical(t *testing.T) {
	before := buildFixtureTree()
	after := buildFixtureTree()

	if changes := DetectChanges(before, after); len(changes) != 0 {
		t.Errorf("identical trees: got %d changes, want 0", len(changes))
	}
}

func TestDetectChangesAddedChild(t *testing.T) {
	before := buildFixtureTree()
	after := buildFixtureTree()
	after.Children[0].AddChild(New("identifier_0_18_c", VariableType(), LangJavaScript).WithName("c"))

	changes := DetectChanges(before, after)

	if got := countByType(changes, ChangeAdded); got != 1 {
		t.Errorf("added count = %d, want 1", got)
	}

	// The parent chain is reported as modified.
	if got := countByType(changes, ChangeModified); got != 2 {
		t.Errorf("modified count = %d, want 2", got)
	}
}

func TestDetectChangesRemovedChild(t *testing.T) {
	before := buildFixtureTree()
	after := buildFixtureTree()
	after.Children[0].Children = after.Children[0].Children[:2]

	changes := DetectChanges(before, after)

	if got := countByType(changes, ChangeRemoved); got != 1 {
		t.Errorf("removed count = %d, want 1", got)
	}
}

func TestDetectChangesRename(t *testing.T) {
	before := buildFixtureTree()
	after := buildFixtureTree()
	after.Children[0].Name = "sum"

	changes := DetectChanges(before, after)

	// A renamed child fails the (type, name) match: one removed, one added.
	if got := countByType(changes, ChangeRemoved); got != 1 {
		t.Errorf("removed count = %d, want 1", got)
	}

	if got := countByType(changes, ChangeAdded); got != 1 {
		t.Errorf("added count = %d, want 1", got)
	}
}

func TestDetectChangesNilRoots(t *testing.T) {
	tree := buildFixtureTree()

	added := DetectChanges(nil, tree)
	if len(added) != 1 || added[0].Type != ChangeAdded || added[0].Before != nil {
		t.Errorf("nil before: %+v", added)
	}

	removed := DetectChanges(tree, nil)
	if len(removed) != 1 || removed[0].Type != ChangeRemoved || removed[0].After != nil {
		t.Errorf("nil after: %+v", removed)
	}

	if changes := DetectChanges(nil, nil); len(changes) != 0 {
		t.Errorf("nil both: %+v", changes)
	}
}

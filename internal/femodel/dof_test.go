package femodel

import "testing"

func TestNumberDOFsNoSupports(t *testing.T) {
	m := New()
	mustAddNode(t, m, 0, 0, 0)
	mustAddNode(t, m, 12, 0, 0)

	table, nFree := m.numberDOFs()

	want := [][6]int{
		{1, 2, 3, 4, 5, 6},
		{7, 8, 9, 10, 11, 12},
	}
	if len(table) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(table))
	}
	for i := range want {
		if table[i] != want[i] {
			t.Errorf("row %d: expected %v, got %v", i, want[i], table[i])
		}
	}
	if nFree != 12 {
		t.Errorf("expected 12 free DOFs, got %d", nFree)
	}
}

func TestNumberDOFsCantilever(t *testing.T) {
	m := buildCantilever(t)

	table, nFree := m.numberDOFs()

	want := [][6]int{
		{0, 0, 0, 1, 2, 3},
		{4, 5, 6, 7, 8, 9},
		{0, 0, 0, 0, 0, 0},
	}
	if len(table) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(table))
	}
	for i := range want {
		if table[i] != want[i] {
			t.Errorf("row %d: expected %v, got %v", i, want[i], table[i])
		}
	}
	if nFree != 9 {
		t.Errorf("expected 9 free DOFs, got %d", nFree)
	}
}

func TestNumberDOFsDense(t *testing.T) {
	m := buildCantilever(t)
	mustAddNode(t, m, 24, 0, 0)
	if _, err := m.AddOrUpdateSupport(4, Restraints{0, 1, 0, 1, 0, 1}); err != nil {
		t.Fatalf("AddOrUpdateSupport failed: %v", err)
	}

	table, nFree := m.numberDOFs()

	// Nonzero indices must be exactly 1..nFree with no gaps or repeats.
	seen := make(map[int]bool)
	for _, row := range table {
		for _, g := range row {
			if g == 0 {
				continue
			}
			if g < 1 || g > nFree {
				t.Errorf("index %d outside 1..%d", g, nFree)
			}
			if seen[g] {
				t.Errorf("index %d assigned twice", g)
			}
			seen[g] = true
		}
	}
	if len(seen) != nFree {
		t.Errorf("expected %d distinct indices, got %d", nFree, len(seen))
	}
}

func TestNumberDOFsAfterNodeDelete(t *testing.T) {
	m := New()
	mustAddNode(t, m, 0, 0, 0)
	mustAddNode(t, m, 12, 0, 0)
	mustAddNode(t, m, 24, 0, 0)
	m.DeleteNode(2)

	table, nFree := m.numberDOFs()

	if len(table) != 3 {
		t.Fatalf("table must stay indexable by node id, got %d rows", len(table))
	}
	if table[1] != [6]int{} {
		t.Errorf("deleted node row must be all zero, got %v", table[1])
	}
	if nFree != 12 {
		t.Errorf("expected 12 free DOFs for 2 surviving nodes, got %d", nFree)
	}
	if table[2] != [6]int{7, 8, 9, 10, 11, 12} {
		t.Errorf("node 3 row wrong: %v", table[2])
	}
}

// internal/jobs/sort_test.go
package jobs

import "testing"

func TestSortResults(t *testing.T) {
	rs := []Result{
		{JobID: "b", Index: 1},
		{JobID: "a", Index: 2},
		{JobID: "a", Index: 0},
		{JobID: "c", Index: 3},
	}
	SortResults(rs)
	wantIDs := []string{"a", "a", "b", "c"}
	for i, want := range wantIDs {
		if rs[i].JobID != want {
			t.Fatalf("position %d: got %q, want %q (%+v)", i, rs[i].JobID, want, rs)
		}
	}
	if rs[0].Index != 0 || rs[1].Index != 2 {
		t.Fatalf("equal IDs should order by input position: %+v", rs[:2])
	}
}

package physics

import (
	"sync"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestDetectorContactsAreSymmetric(t *testing.T) {
	boxes := []cp.BB{
		box(100, 100, 10),
		box(105, 100, 10),
		box(103, 108, 10),
		box(400, 400, 10),
		box(400, 400, 10),
	}
	for _, broad := range []Broadphase{NewGrid(), NewSweepAndPrune(), NewSpaceIndex()} {
		d := NewDetector(broad)
		d.Rebuild(boxes)

		contacts := make([]map[int]cp.Vector, d.Len())
		for i := range contacts {
			contacts[i] = map[int]cp.Vector{}
			for _, c := range d.Query(i, nil) {
				contacts[i][c.Index] = c.Resolution
			}
		}

		for i := range contacts {
			for j, res := range contacts[i] {
				back, ok := contacts[j][i]
				if !ok {
					t.Fatalf("%T: %d sees %d but not the reverse", broad, i, j)
				}
				if res.X != -back.X || res.Y != -back.Y {
					t.Fatalf("%T: resolutions %v and %v are not opposite", broad, res, back)
				}
			}
		}
		if len(contacts[3]) != 1 || len(contacts[0]) != 2 {
			t.Fatalf("%T: unexpected contact counts %d and %d", broad, len(contacts[3]), len(contacts[0]))
		}
		if contacts[3][4].X != -10 || contacts[4][3].X != 10 {
			t.Fatalf("%T: coincident boxes should push lower index negative, got %v / %v", broad, contacts[3][4], contacts[4][3])
		}
	}
}

func TestDetectorSnapshotIsIsolated(t *testing.T) {
	boxes := []cp.BB{box(0, 0, 10), box(5, 0, 10)}
	d := NewDetector(nil)
	d.Rebuild(boxes)
	boxes[1] = box(500, 0, 10)

	if got := d.Query(0, nil); len(got) != 1 {
		t.Fatalf("expected detector to keep its own copy, got %d contacts", len(got))
	}
	if got := d.Query(-1, nil); len(got) != 0 {
		t.Fatalf("expected no contacts for an invalid index")
	}
}

func TestDetectorConcurrentQueries(t *testing.T) {
	boxes := []cp.BB{box(0, 0, 10), box(5, 0, 10), box(9, 3, 10), box(50, 50, 10)}
	d := NewDetector(NewGrid())
	d.Rebuild(boxes)

	want := make([]int, len(boxes))
	for i := range boxes {
		want[i] = len(d.Query(i, nil))
	}

	var wg sync.WaitGroup
	for n := 0; n < 8; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range boxes {
				if got := len(d.Query(i, nil)); got != want[i] {
					t.Errorf("box %d: expected %d contacts, got %d", i, want[i], got)
				}
			}
		}()
	}
	wg.Wait()
}

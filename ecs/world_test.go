package ecs

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/milk9111/bouncers/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, w.CreateEntity())
			}
			if len(w.Entities()) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(w.Entities()))
			}
			if c.destroyIndex >= 0 {
				if !w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if w.IsAlive(ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return false for a dead entity")
				}
				if len(w.Entities()) != c.create-1 {
					t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(w.Entities()))
				}
			}
		})
	}
}

func TestEntityReuseBumpsGeneration(t *testing.T) {
	w := NewWorld()
	old := w.CreateEntity()
	w.DestroyEntity(old)
	reused := w.CreateEntity()

	if reused.Index() != old.Index() {
		t.Fatalf("expected slot %d to be reused, got %d", old.Index(), reused.Index())
	}
	if reused == old {
		t.Fatalf("reused handle should differ from the stale one")
	}
	if w.IsAlive(old) {
		t.Fatalf("stale handle should not be alive")
	}
	if !w.IsAlive(reused) {
		t.Fatalf("new handle should be alive")
	}
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestWorldComponents(t *testing.T) {
	w := NewWorld()

	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, h1, intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, h1)
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
				if Has(w, e2, h1) {
					t.Fatalf("e2 should not have the int component")
				}
			},
			teardown: func() bool { return Remove(w, e1, h1) },
		},
		{
			name: "add_str_to_e1_and_e2",
			setup: func() error {
				if err := Add(w, e1, h2, stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, h2, stringPtr("b"))
			},
			check: func(t *testing.T) {
				if !Has(w, e1, h2) || !Has(w, e2, h2) {
					t.Fatalf("expected both entities to have string component")
				}
			},
			teardown: func() bool { return Remove(w, e1, h2) },
		},
		{
			name:  "write_through_pointer",
			setup: func() error { return Add(w, e2, h1, intPtr(1)) },
			check: func(t *testing.T) {
				v := MustGet(w, e2, h1)
				*v = 7
				if got, _ := Get(w, e2, h1); *got != 7 {
					t.Fatalf("expected write to be visible, got %d", *got)
				}
			},
			teardown: func() bool { return Remove(w, e2, h1) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	e := w.CreateEntity()

	if err := Add(w, e, component.ComponentHandle[int]{}, intPtr(1)); !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
	if err := Add(w, e, h, nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
	w.DestroyEntity(e)
	if err := Add(w, e, h, intPtr(1)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestDestroyRemovesComponents(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	_ = Add(w, e1, h, intPtr(1))
	_ = Add(w, e2, h, intPtr(2))

	w.DestroyEntity(e1)
	reused := w.CreateEntity()
	if Has(w, reused, h) {
		t.Fatalf("reused slot should not inherit the old component")
	}
	if v, ok := Get(w, e2, h); !ok || *v != 2 {
		t.Fatalf("e2 component should survive swap-remove, got %v ok=%v", v, ok)
	}
}

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}

func TestForEach(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	e3 := w.CreateEntity()

	if err := Add(w, e1, h, intPtr(1)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := Add(w, e3, h, intPtr(3)); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	var ents []Entity
	ForEach(w, h.Kind(), func(e Entity, _ *int) { ents = append(ents, e) })
	set := toSet(ents)

	if _, ok := set[e1]; !ok {
		t.Fatalf("expected e1 in ForEach result")
	}
	if _, ok := set[e3]; !ok {
		t.Fatalf("expected e3 in ForEach result")
	}
	if _, ok := set[e2]; ok {
		t.Fatalf("did not expect e2 in ForEach result")
	}
}

func TestQueryAndForEach2(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := w.CreateEntity()
				e2 := w.CreateEntity()
				e3 := w.CreateEntity()

				ka := component.NewComponent[int]()
				kb := component.NewComponent[int]()

				_ = Add(w, e1, ka, intPtr(1))
				_ = Add(w, e2, ka, intPtr(2))
				_ = Add(w, e2, kb, intPtr(3))
				_ = Add(w, e3, kb, intPtr(4))

				res := w.Query(ka.Kind(), kb.Kind())
				if len(res) != 1 || res[0] != e2 {
					t.Fatalf("expected only e2, got %v", res)
				}

				var pairs []int
				ForEach2(w, ka.Kind(), kb.Kind(), func(_ Entity, a *int, b *int) { pairs = append(pairs, *a, *b) })
				if len(pairs) != 2 || pairs[0] != 2 || pairs[1] != 3 {
					t.Fatalf("expected [2 3], got %v", pairs)
				}

				first, ok := w.First(ka.Kind(), kb.Kind())
				if !ok || first != e2 {
					t.Fatalf("expected First to return e2, got %v ok=%v", first, ok)
				}
			},
		},
		{
			name: "ignores_dead_entities",
			run: func(t *testing.T) {
				w := NewWorld()
				e := w.CreateEntity()
				ka := component.NewComponent[int]()
				kb := component.NewComponent[int]()
				_ = Add(w, e, ka, intPtr(1))
				_ = Add(w, e, kb, intPtr(2))

				if !w.DestroyEntity(e) {
					t.Fatal("failed to destroy entity")
				}
				if res := w.Query(ka.Kind(), kb.Kind()); len(res) != 0 {
					t.Fatalf("expected empty result after destroy, got %v", res)
				}
			},
		},
		{
			name: "missing_store_returns_nil",
			run: func(t *testing.T) {
				w := NewWorld()
				e := w.CreateEntity()
				ka := component.NewComponent[int]()
				kb := component.NewComponent[int]()
				_ = Add(w, e, ka, intPtr(1))

				if res := w.Query(ka.Kind(), kb.Kind()); len(res) != 0 {
					t.Fatalf("expected empty when other store missing, got %v", res)
				}
				if _, ok := w.First(ka.Kind(), kb.Kind()); ok {
					t.Fatalf("expected First to miss")
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestForEachParallelVisitsEveryEntityOnce(t *testing.T) {
	cases := []struct {
		name    string
		count   int
		workers int
	}{
		{"empty", 0, 4},
		{"fewer_than_chunk", 10, 4},
		{"many_default_workers", 1000, 0},
		{"many_single_worker", 1000, 1},
		{"many_odd_workers", 1001, 7},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			h := component.NewComponent[int]()
			for i := 0; i < c.count; i++ {
				e := w.CreateEntity()
				if err := Add(w, e, h, intPtr(0)); err != nil {
					t.Fatal(err)
				}
			}

			var calls atomic.Int64
			ForEachParallel(w, h.Kind(), c.workers, func(_ Entity, v *int) {
				*v++
				calls.Add(1)
			})

			if int(calls.Load()) != c.count {
				t.Fatalf("expected %d calls, got %d", c.count, calls.Load())
			}
			ForEach(w, h.Kind(), func(e Entity, v *int) {
				if *v != 1 {
					t.Fatalf("entity %s visited %d times", e, *v)
				}
			})
		})
	}
}

type recordingSystem struct {
	name  string
	log   *[]string
	frame Frame
}

func (s *recordingSystem) Update(_ *World, frame Frame) {
	s.frame = frame
	*s.log = append(*s.log, s.name)
}

func TestWorldUpdateRunsSystemsInOrder(t *testing.T) {
	w := NewWorld()
	var order []string
	a := &recordingSystem{name: "a", log: &order}
	b := &recordingSystem{name: "b", log: &order}
	w.AddSystem(a)
	w.AddSystem(nil)
	w.AddSystem(b)

	frame := Frame{DT: 0.25, Bounds: Bounds{Width: 640, Height: 480}}
	w.Update(frame)

	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("expected [a b], got %v", order)
	}
	if b.frame != frame {
		t.Fatalf("expected frame %+v, got %+v", frame, b.frame)
	}
}

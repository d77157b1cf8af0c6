package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/bloxroll/ecs/component"
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
					t.Fatalf("second DestroyEntity should return false")
				}
			}
		})
	}
}

func TestStaleHandleAfterReuse(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := w.CreateEntity()
	if err := Add(w, old, h, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	w.DestroyEntity(old)

	fresh := w.CreateEntity()
	if fresh.id() != old.id() {
		t.Fatalf("expected slot reuse, got %v after %v", fresh, old)
	}
	if fresh == old {
		t.Fatalf("reused handle should carry a new generation")
	}
	if w.IsAlive(old) {
		t.Fatalf("stale handle reported alive")
	}
	if Has(w, fresh, h) {
		t.Fatalf("component leaked to reused slot")
	}
	if err := Add(w, old, h, 2); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestWorldComponents(t *testing.T) {
	w := NewWorld()

	hInt := component.NewComponent[int]()
	hStr := component.NewComponent[string]()

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
			setup: func() error { return Add(w, e1, hInt, 10) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, hInt)
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
			teardown: func() bool { return Remove(w, e1, hInt) },
		},
		{
			name: "add_str_to_both",
			setup: func() error {
				if err := Add(w, e1, hStr, "a"); err != nil {
					return err
				}
				return Add(w, e2, hStr, "b")
			},
			check: func(t *testing.T) {
				if !Has(w, e1, hStr) || !Has(w, e2, hStr) {
					t.Fatalf("expected both entities to have string component")
				}
			},
			teardown: func() bool { return Remove(w, e1, hStr) },
		},
		{
			name:  "mutation_through_pointer",
			setup: func() error { return Add(w, e2, hInt, 1) },
			check: func(t *testing.T) {
				v, _ := Get(w, e2, hInt)
				*v = 42
				again, _ := Get(w, e2, hInt)
				if *again != 42 {
					t.Fatalf("expected write through pointer, got %d", *again)
				}
			},
			teardown: func() bool { return Remove(w, e2, hInt) },
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

func TestForEach(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	e3 := w.CreateEntity()

	if err := Add(w, e1, h, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := Add(w, e3, h, 3); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	seen := map[Entity]int{}
	ForEach(w, h.Kind(), func(e Entity, v *int) { seen[e] = *v })

	if seen[e1] != 1 || seen[e3] != 3 {
		t.Fatalf("unexpected values %v", seen)
	}
	if _, ok := seen[e2]; ok {
		t.Fatalf("did not expect e2 in ForEach result")
	}
}

func TestForEach3(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				e1, e2, e3 := w.CreateEntity(), w.CreateEntity(), w.CreateEntity()
				ha := component.NewComponent[int]()
				hb := component.NewComponent[int]()
				hc := component.NewComponent[int]()

				must(t, Add(w, e1, ha, 1))
				must(t, Add(w, e2, ha, 2))
				must(t, Add(w, e2, hb, 3))
				must(t, Add(w, e2, hc, 5))
				must(t, Add(w, e3, hb, 4))

				var res []Entity
				ForEach3(w, ha.Kind(), hb.Kind(), hc.Kind(), func(e Entity, _, _, _ *int) { res = append(res, e) })
				if len(res) != 1 || res[0] != e2 {
					t.Fatalf("expected only e2, got %v", res)
				}
			},
		},
		{
			name: "ignores_dead_entities",
			run: func(t *testing.T) {
				w := NewWorld()
				e := w.CreateEntity()
				ha := component.NewComponent[int]()
				hb := component.NewComponent[int]()
				hc := component.NewComponent[int]()

				must(t, Add(w, e, ha, 1))
				must(t, Add(w, e, hb, 2))
				must(t, Add(w, e, hc, 3))
				if !w.DestroyEntity(e) {
					t.Fatal("failed to destroy entity")
				}

				var res []Entity
				ForEach3(w, ha.Kind(), hb.Kind(), hc.Kind(), func(e Entity, _, _, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty result after destroy, got %v", res)
				}
			},
		},
		{
			name: "missing_store",
			run: func(t *testing.T) {
				w := NewWorld()
				e := w.CreateEntity()
				ha := component.NewComponent[int]()
				hb := component.NewComponent[int]()
				hc := component.NewComponent[int]()

				must(t, Add(w, e, ha, 1))

				var res []Entity
				ForEach3(w, ha.Kind(), hb.Kind(), hc.Kind(), func(e Entity, _, _, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty when other store missing, got %v", res)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestFirstAndEvents(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[string]()

	if _, ok := w.First(h.Kind()); ok {
		t.Fatalf("expected no entity in empty world")
	}
	e := w.CreateEntity()
	must(t, Add(w, e, h, "player"))
	got, ok := w.First(h.Kind())
	if !ok || got != e {
		t.Fatalf("First = %v %v, want %v", got, ok, e)
	}

	w.Events().Push(Event{Type: EventRespawned, Data: e})
	w.Events().Push(Event{Type: EventGoalReached})
	evts := w.Events().Drain()
	if len(evts) != 2 || evts[0].Type != EventRespawned {
		t.Fatalf("unexpected events %v", evts)
	}
	if w.Events().Len() != 0 {
		t.Fatalf("queue not drained")
	}
}

type countingSystem struct{ n *int }

func (s countingSystem) Update(*World) { *s.n++ }

func TestSchedulerRunsInOrder(t *testing.T) {
	var order []string
	w := NewWorld()
	s := NewScheduler(
		systemFunc(func(*World) { order = append(order, "a") }),
		nil,
		systemFunc(func(*World) { order = append(order, "b") }),
	)
	s.Update(w)
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("unexpected order %v", order)
	}

	n := 0
	s.Add(countingSystem{&n})
	s.Update(w)
	if n != 1 || len(s.Systems()) != 3 {
		t.Fatalf("n=%d systems=%d", n, len(s.Systems()))
	}
}

type systemFunc func(*World)

func (f systemFunc) Update(w *World) { f(w) }

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

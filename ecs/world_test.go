package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/starcatch/ecs/component"
)

func TestSparseWorldEntityLifecycle(t *testing.T) {
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
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return false the second time")
				}
				if len(Entities(w)) != c.create-1 {
					t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(Entities(w)))
				}
			}
		})
	}
}

func TestRecycledSlotGetsNewGeneration(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := CreateEntity(w)
	MustAdd(w, old, h.Kind(), intPtr(1))
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected slot %d to be reused, got %d", old.id(), fresh.id())
	}
	if fresh == old {
		t.Fatalf("recycled handle must differ from the stale one")
	}
	if IsAlive(w, old) {
		t.Fatalf("stale handle reported alive")
	}
	if Has(w, fresh, h.Kind()) {
		t.Fatalf("new entity inherited a destroyed entity's component")
	}
	if err := Add(w, old, h.Kind(), intPtr(2)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("Add on stale handle = %v, want ErrEntityNotAlive", err)
	}
}

func TestZeroEntityIsNeverAlive(t *testing.T) {
	w := NewWorld()
	CreateEntity(w)
	var zero Entity
	if zero.Valid() || IsAlive(w, zero) {
		t.Fatalf("zero entity must not be valid or alive")
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	h := component.NewComponent[int]()

	cases := []struct {
		name string
		add  func() error
		want error
	}{
		{"nil_value", func() error { return Add[int](w, e, h.Kind(), nil) }, component.ErrNilComponent},
		{"zero_kind", func() error { return Add(w, e, component.ComponentKind[int]{}, intPtr(1)) }, component.ErrInvalidComponentKind},
		{"nil_world", func() error { return Add(nil, e, h.Kind(), intPtr(1)) }, component.ErrEntityNotAlive},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := c.add(); !errors.Is(err, c.want) {
				t.Fatalf("got %v, want %v", err, c.want)
			}
		})
	}
}

func TestSparseWorldComponentsAndQueries(t *testing.T) {
	t.Run("component_table", func(t *testing.T) {
		w := NewWorld()

		h1 := component.NewComponent[int]()
		h2 := component.NewComponent[string]()
		h3 := component.NewComponent[float64]()

		e1 := CreateEntity(w)
		e2 := CreateEntity(w)

		tests := []struct {
			name     string
			setup    func() error
			check    func(t *testing.T)
			teardown func() bool
		}{
			{
				name:  "add_int_to_e1",
				setup: func() error { return Add(w, e1, h1.Kind(), intPtr(10)) },
				check: func(t *testing.T) {
					v, ok := Get(w, e1, h1.Kind())
					if !ok || *v != 10 {
						t.Fatalf("expected 10, got %v ok=%v", v, ok)
					}
				},
				teardown: func() bool { return Remove(w, e1, h1.Kind()) },
			},
			{
				name: "add_str_to_e1_and_e2",
				setup: func() error {
					if err := Add(w, e1, h2.Kind(), stringPtr("a")); err != nil {
						return err
					}
					return Add(w, e2, h2.Kind(), stringPtr("b"))
				},
				check: func(t *testing.T) {
					if !Has(w, e1, h2.Kind()) || !Has(w, e2, h2.Kind()) {
						t.Fatalf("expected both entities to have string component")
					}
					if Count(w, h2.Kind()) != 2 {
						t.Fatalf("expected 2 string components, got %d", Count(w, h2.Kind()))
					}
				},
				teardown: func() bool { return Remove(w, e1, h2.Kind()) },
			},
			{
				name:  "add_float_and_remove",
				setup: func() error { return Add(w, e1, h3.Kind(), float64Ptr(1.23)) },
				check: func(t *testing.T) {
					if _, ok := Get(w, e1, h3.Kind()); !ok {
						t.Fatalf("expected float present")
					}
				},
				teardown: func() bool { return Remove(w, e1, h3.Kind()) },
			},
			{
				name: "replace_keeps_one",
				setup: func() error {
					if err := Add(w, e2, h1.Kind(), intPtr(1)); err != nil {
						return err
					}
					return Add(w, e2, h1.Kind(), intPtr(2))
				},
				check: func(t *testing.T) {
					v, _ := Get(w, e2, h1.Kind())
					if *v != 2 || Count(w, h1.Kind()) != 1 {
						t.Fatalf("expected one int of 2, got %d (count %d)", *v, Count(w, h1.Kind()))
					}
				},
				teardown: func() bool { return Remove(w, e2, h1.Kind()) },
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
	})

	t.Run("same_type_distinct_kinds", func(t *testing.T) {
		w := NewWorld()
		ka := component.NewComponentKind[int]()
		kb := component.NewComponentKind[int]()
		e := CreateEntity(w)
		MustAdd(w, e, ka, intPtr(1))
		if Has(w, e, kb) {
			t.Fatalf("kinds of the same type must not share a store")
		}
	})
}

func TestDestroyStripsComponents(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	e := CreateEntity(w)
	MustAdd(w, e, h.Kind(), intPtr(5))

	DestroyEntity(w, e)
	if Count(w, h.Kind()) != 0 {
		t.Fatalf("destroyed entity still counted")
	}
	if _, ok := First(w, h.Kind()); ok {
		t.Fatalf("First found a destroyed entity")
	}
}

func TestForEach(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		w := NewWorld()
		h := component.NewComponent[int]()

		e1 := CreateEntity(w)
		e2 := CreateEntity(w)
		e3 := CreateEntity(w)

		if err := Add(w, e1, h.Kind(), intPtr(1)); err != nil {
			t.Fatalf("add failed: %v", err)
		}
		if err := Add(w, e3, h.Kind(), intPtr(3)); err != nil {
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
	})

	t.Run("destroy_during_walk", func(t *testing.T) {
		w := NewWorld()
		h := component.NewComponent[int]()
		var ents []Entity
		for i := range 4 {
			e := CreateEntity(w)
			MustAdd(w, e, h.Kind(), intPtr(i))
			ents = append(ents, e)
		}

		visited := 0
		ForEach(w, h.Kind(), func(e Entity, _ *int) {
			visited++
			if e == ents[0] {
				DestroyEntity(w, ents[3])
			}
		})
		if visited != 3 {
			t.Fatalf("expected 3 visits, got %d", visited)
		}
	})
}

func TestForEach2(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	MustAdd(w, e1, ka, intPtr(1))
	MustAdd(w, e2, ka, intPtr(2))
	MustAdd(w, e2, kb, stringPtr("b"))

	var res []Entity
	ForEach2(w, ka, kb, func(e Entity, a *int, b *string) {
		if *a != 2 || *b != "b" {
			t.Fatalf("unexpected values %d %q", *a, *b)
		}
		res = append(res, e)
	})
	if len(res) != 1 || res[0] != e2 {
		t.Fatalf("expected only e2, got %v", res)
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
				e1 := CreateEntity(w)
				e2 := CreateEntity(w)
				e3 := CreateEntity(w)
				e4 := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				MustAdd(w, e1, ka, intPtr(1))
				MustAdd(w, e2, ka, intPtr(2))
				MustAdd(w, e2, kb, intPtr(3))
				MustAdd(w, e2, kc, intPtr(5))
				MustAdd(w, e3, kb, intPtr(4))
				MustAdd(w, e4, kc, intPtr(6))

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 1 || res[0].id() != e2.id() {
					t.Fatalf("expected only e2, got %v", res)
				}
			},
		},
		{
			name: "ignores_dead_entities",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				MustAdd(w, e, ka, intPtr(1))
				MustAdd(w, e, kb, intPtr(2))
				MustAdd(w, e, kc, intPtr(3))

				if !DestroyEntity(w, e) {
					t.Fatal("failed to destroy entity")
				}

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty result after destroy, got %v", res)
				}
			},
		},
		{
			name: "missing_store",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				MustAdd(w, e, ka, intPtr(1))

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
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

type recordingSystem struct {
	name string
	log  *[]string
}

func (r recordingSystem) Update(*World) { *r.log = append(*r.log, r.name) }

func TestSchedulerRunsInOrder(t *testing.T) {
	var log []string
	s := NewScheduler(recordingSystem{"input", &log}, recordingSystem{"controller", &log})
	s.Add(recordingSystem{"physics", &log})
	s.Add(nil)

	s.Update(NewWorld())
	s.Update(NewWorld())

	want := []string{"input", "controller", "physics", "input", "controller", "physics"}
	if len(log) != len(want) {
		t.Fatalf("got %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("got %v, want %v", log, want)
		}
	}
	if len(s.Systems()) != 3 {
		t.Fatalf("expected 3 systems, got %d", len(s.Systems()))
	}
}

func TestEventQueueFIFO(t *testing.T) {
	w := NewWorld()
	q := w.Events()
	for _, key := range []string{"b", "r", "b"} {
		q.Push(Event{Type: EventKeyDown, Data: key})
	}
	if q.Len() != 3 {
		t.Fatalf("expected 3 events, got %d", q.Len())
	}

	got := q.Drain()
	for i, want := range []string{"b", "r", "b"} {
		if got[i].Data != want {
			t.Fatalf("event %d = %v, want %v", i, got[i].Data, want)
		}
	}
	if q.Len() != 0 || q.Drain() != nil {
		t.Fatalf("queue not empty after drain")
	}
}

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func float64Ptr(f float64) *float64 {
	return &f
}

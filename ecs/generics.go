package ecs

import "github.com/milk9111/bloxroll/ecs/component"

// Add stores a copy of value on e.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value T) error {
	v := value
	return w.AddComponent(e, handle.Kind(), &v)
}

func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.RemoveComponent(e, handle.Kind())
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.HasComponent(e, handle.Kind())
}

// Get returns a pointer to e's stored value; edits through it are visible to
// every other reader.
func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	value, ok := w.GetComponent(e, handle.Kind())
	if !ok {
		return nil, false
	}
	cast, ok := value.(*T)
	return cast, ok
}

// ForEach calls fn for every live entity holding kind.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	for _, e := range w.Query(kind) {
		if v, ok := w.GetComponent(e, kind); ok {
			if cast, ok := v.(*T); ok {
				fn(e, cast)
			}
		}
	}
}

// ForEach2 calls fn for every live entity holding both kinds.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	for _, e := range w.Query(ka, kb) {
		va, _ := w.GetComponent(e, ka)
		vb, _ := w.GetComponent(e, kb)
		a, okA := va.(*A)
		b, okB := vb.(*B)
		if okA && okB {
			fn(e, a, b)
		}
	}
}

// ForEach3 calls fn for every live entity holding all three kinds.
func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	for _, e := range w.Query(ka, kb, kc) {
		va, _ := w.GetComponent(e, ka)
		vb, _ := w.GetComponent(e, kb)
		vc, _ := w.GetComponent(e, kc)
		a, okA := va.(*A)
		b, okB := vb.(*B)
		c, okC := vc.(*C)
		if okA && okB && okC {
			fn(e, a, b, c)
		}
	}
}

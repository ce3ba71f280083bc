package registry

import "testing"

func TestRegistry_SetGet(t *testing.T) {
	r := &Registry{
		values: make(map[string]interface{}),
		locked: make(map[string]bool),
	}

	if _, ok := r.GetGlobal("missing"); ok {
		t.Fatal("GetGlobal on empty registry reported a value")
	}

	r.SetGlobal("k", 42)
	v, ok := r.GetGlobal("k")
	if !ok || v.(int) != 42 {
		t.Errorf("GetGlobal = %v, %v, want 42, true", v, ok)
	}
}

func TestRegistry_LockPreventsSet(t *testing.T) {
	r := &Registry{
		values: make(map[string]interface{}),
		locked: make(map[string]bool),
	}
	r.SetGlobal("k", "before")
	r.Lock("k")

	if !r.IsLocked("k") {
		t.Fatal("IsLocked = false after Lock")
	}
	defer func() {
		if recover() == nil {
			t.Error("SetGlobal on locked key did not panic")
		}
	}()
	r.SetGlobal("k", "after")
}

func TestRegistry_UnlockForTesting(t *testing.T) {
	r := &Registry{
		values: make(map[string]interface{}),
		locked: make(map[string]bool),
	}
	r.Lock("k")
	r.UnlockForTesting("k")

	r.SetGlobal("k", 1)
	if v, _ := r.GetGlobal("k"); v.(int) != 1 {
		t.Errorf("value = %v, want 1", v)
	}
}

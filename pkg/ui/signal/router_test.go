package signal

import (
	"testing"
)

// fakeOwner is a test owner with controllable liveness.
type fakeOwner struct {
	gone bool
}

func (o *fakeOwner) Gone() bool { return o.gone }

func TestSignalNew(t *testing.T) {
	sig := New("PING", Data{"value": 7}, true)

	if sig.Name != "PING" {
		t.Errorf("Name = %q, want PING", sig.Name)
	}
	if !sig.Propagate {
		t.Error("Propagate = false, want true")
	}
	if sig.Data["value"] != 7 {
		t.Errorf("Data[value] = %v, want 7", sig.Data["value"])
	}

	t.Run("reserved keys stamped", func(t *testing.T) {
		if sig.Data.Name() != "PING" {
			t.Errorf("Data.Name() = %q, want PING", sig.Data.Name())
		}
		if !sig.Data.Propagate() {
			t.Error("Data.Propagate() = false, want true")
		}
	})

	t.Run("source data not mutated", func(t *testing.T) {
		src := Data{"k": 1}
		New("X", src, false)
		if _, ok := src[KeyName]; ok {
			t.Error("reserved key leaked into the source data")
		}
	})
}

func TestSignalFromData(t *testing.T) {
	orig := New("REQ", Data{"q": "x"}, false)

	sig, ok := FromData(orig.Data)
	if !ok {
		t.Fatal("FromData failed on a stamped payload")
	}
	if sig.Name != "REQ" || sig.Propagate {
		t.Errorf("got (%q, %v), want (REQ, false)", sig.Name, sig.Propagate)
	}

	if _, ok := FromData(Data{"q": "x"}); ok {
		t.Error("FromData succeeded on an unstamped payload")
	}
}

func TestRouterRegister(t *testing.T) {
	r := NewRouter()
	h := Bind(nil, func(Data) {})

	if !r.Register("SIG", h) {
		t.Error("Register rejected a valid handler")
	}
	if r.Register("SIG", h) {
		t.Error("Register accepted a duplicate handler")
	}
	if r.Register("SIG", nil) {
		t.Error("Register accepted a nil handler")
	}
	if r.Register("SIG", &Handler{}) {
		t.Error("Register accepted a handler with no function")
	}
	if !r.Handles("SIG") {
		t.Error("Handles = false after registration")
	}
}

func TestRouterDeregister(t *testing.T) {
	r := NewRouter()
	h := Bind(nil, func(Data) {})
	r.Register("SIG", h)

	if !r.Deregister("SIG", h) {
		t.Error("Deregister failed on a registered handler")
	}
	if r.Deregister("SIG", h) {
		t.Error("Deregister succeeded twice")
	}
	if r.Handles("SIG") {
		t.Error("Handles = true after the last handler was removed")
	}
}

func TestRouterForward(t *testing.T) {
	t.Run("invokes in registration order", func(t *testing.T) {
		r := NewRouter()
		var order []int
		r.Register("SIG", Bind(nil, func(Data) { order = append(order, 1) }))
		r.Register("SIG", Bind(nil, func(Data) { order = append(order, 2) }))

		if !r.Forward(New("SIG", nil, true), false) {
			t.Fatal("Forward = false with live handlers")
		}
		if len(order) != 2 || order[0] != 1 || order[1] != 2 {
			t.Errorf("invocation order = %v, want [1 2]", order)
		}
	})

	t.Run("reverse order", func(t *testing.T) {
		r := NewRouter()
		var order []int
		r.Register("SIG", Bind(nil, func(Data) { order = append(order, 1) }))
		r.Register("SIG", Bind(nil, func(Data) { order = append(order, 2) }))

		r.Forward(New("SIG", nil, true), true)
		if len(order) != 2 || order[0] != 2 || order[1] != 1 {
			t.Errorf("invocation order = %v, want [2 1]", order)
		}
	})

	t.Run("non-propagating stops after first", func(t *testing.T) {
		r := NewRouter()
		count := 0
		r.Register("SIG", Bind(nil, func(Data) { count++ }))
		r.Register("SIG", Bind(nil, func(Data) { count++ }))

		r.Forward(New("SIG", nil, false), false)
		if count != 1 {
			t.Errorf("handlers invoked = %d, want 1", count)
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		r := NewRouter()
		if r.Forward(New("NOPE", nil, true), false) {
			t.Error("Forward = true for an unregistered name")
		}
	})
}

func TestRouterWeakHandlers(t *testing.T) {
	t.Run("gone owner pruned without invocation", func(t *testing.T) {
		r := NewRouter()
		owner := &fakeOwner{}
		invoked := false
		r.Register("SIG", Bind(owner, func(Data) { invoked = true }))

		owner.gone = true
		if r.Forward(New("SIG", nil, true), false) {
			t.Error("Forward = true when the only handler's owner is gone")
		}
		if invoked {
			t.Error("gone-owner handler was invoked")
		}
		if r.Handles("SIG") {
			t.Error("gone-owner handler was not pruned")
		}
	})

	t.Run("non-propagating signal skips gone entries", func(t *testing.T) {
		r := NewRouter()
		dead := &fakeOwner{gone: true}
		invoked := false
		r.Register("SIG", Bind(dead, func(Data) { t.Error("dead handler invoked") }))
		r.Register("SIG", Bind(nil, func(Data) { invoked = true }))

		if !r.Forward(New("SIG", nil, false), false) {
			t.Error("Forward = false with a live handler behind a dead one")
		}
		if !invoked {
			t.Error("live handler was not reached past the dead entry")
		}
	})

	t.Run("DropOwner removes all bindings", func(t *testing.T) {
		r := NewRouter()
		owner := &fakeOwner{}
		r.Register("A", Bind(owner, func(Data) {}))
		r.Register("B", Bind(owner, func(Data) {}))
		r.Register("B", Bind(nil, func(Data) {}))

		r.DropOwner(owner)
		if r.Handles("A") {
			t.Error("Handles(A) = true after DropOwner")
		}
		if !r.Handles("B") {
			t.Error("DropOwner removed an unrelated handler")
		}
	})
}

func TestRouterReentrantRegistration(t *testing.T) {
	r := NewRouter()
	count := 0
	r.Register("SIG", Bind(nil, func(Data) {
		count++
		// Registering during dispatch must not invoke the newcomer for
		// the in-flight signal.
		r.Register("SIG", Bind(nil, func(Data) { count += 100 }))
	}))

	r.Forward(New("SIG", nil, true), false)
	if count != 1 {
		t.Errorf("count = %d, want 1 (reentrant handler ran for in-flight signal)", count)
	}
}

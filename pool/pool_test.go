package pool

import (
	"errors"
	"testing"
)

type crumb struct {
	id    int
	dirty bool
}

func newCrumbFactory() func() *crumb {
	next := 0
	return func() *crumb {
		next++
		return &crumb{id: next}
	}
}

// TestBoundedExhaustion prewarm 20, bounded: the 21st get refuses, one
// return makes the next get succeed
func TestBoundedExhaustion(t *testing.T) {
	r := NewRegistry()
	p, err := Create(r, "Cookie", newCrumbFactory(), 20, PolicyBounded, nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	loaned := make([]*crumb, 0, 20)
	for i := 0; i < 20; i++ {
		inst, ok := p.Get()
		if !ok {
			t.Fatalf("Get %d refused with instances still available", i)
		}
		loaned = append(loaned, inst)
	}

	if _, ok := p.Get(); ok {
		t.Error("Expected the 21st get to refuse under bounded policy")
	}

	if err := p.Put(loaned[0]); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if _, ok := p.Get(); !ok {
		t.Error("Expected get to succeed after one return")
	}
}

// TestGrowPolicy verifies get beyond prewarm invokes the factory
func TestGrowPolicy(t *testing.T) {
	r := NewRegistry()
	p, _ := Create(r, "Cookie", newCrumbFactory(), 2, PolicyGrow, nil)

	for i := 0; i < 3; i++ {
		if _, ok := p.Get(); !ok {
			t.Fatalf("Get %d refused under grow policy", i)
		}
	}
	if p.Size() != 3 {
		t.Errorf("Expected pool to grow to 3, got %d", p.Size())
	}
}

// TestPartitionInvariant verifies available and on-loan always partition
// the full population
func TestPartitionInvariant(t *testing.T) {
	r := NewRegistry()
	p, _ := Create(r, "Cookie", newCrumbFactory(), 5, PolicyBounded, nil)

	check := func(stage string) {
		if p.Available()+p.OnLoan() != p.Size() {
			t.Fatalf("%s: partition broken: available=%d onLoan=%d size=%d",
				stage, p.Available(), p.OnLoan(), p.Size())
		}
	}

	check("after prewarm")
	a, _ := p.Get()
	b, _ := p.Get()
	check("after gets")
	p.Put(a)
	check("after first return")
	p.Put(b)
	check("after second return")
	if p.OnLoan() != 0 || p.Available() != 5 {
		t.Errorf("Expected 5 available, 0 on loan; got %d/%d", p.Available(), p.OnLoan())
	}
}

// TestDoubleReturn verifies double-return is a reported misuse that does
// not alter the available set
func TestDoubleReturn(t *testing.T) {
	r := NewRegistry()
	p, _ := Create(r, "Cookie", newCrumbFactory(), 3, PolicyBounded, nil)

	inst, _ := p.Get()
	if err := p.Put(inst); err != nil {
		t.Fatalf("First return failed: %v", err)
	}

	before := p.Available()
	err := p.Put(inst)
	if !errors.Is(err, ErrNotOnLoan) {
		t.Errorf("Expected ErrNotOnLoan on double return, got %v", err)
	}
	if p.Available() != before {
		t.Errorf("Double return altered the available set: %d -> %d", before, p.Available())
	}
}

// TestForeignReturn verifies an instance the pool never loaned is rejected
func TestForeignReturn(t *testing.T) {
	r := NewRegistry()
	p, _ := Create(r, "Cookie", newCrumbFactory(), 1, PolicyBounded, nil)

	if err := p.Put(&crumb{id: 99}); !errors.Is(err, ErrNotOnLoan) {
		t.Errorf("Expected ErrNotOnLoan for foreign instance, got %v", err)
	}
}

// TestDuplicateCreate verifies re-creating a name is a configuration error
func TestDuplicateCreate(t *testing.T) {
	r := NewRegistry()
	if _, err := Create(r, "Cookie", newCrumbFactory(), 1, PolicyGrow, nil); err != nil {
		t.Fatalf("First create failed: %v", err)
	}
	if _, err := Create(r, "Cookie", newCrumbFactory(), 1, PolicyGrow, nil); !errors.Is(err, ErrDuplicatePool) {
		t.Errorf("Expected ErrDuplicatePool, got %v", err)
	}
}

// TestReturnUnknownPool verifies returning to an unknown name is reported
func TestReturnUnknownPool(t *testing.T) {
	r := NewRegistry()
	if err := Return(r, "Biscuit", &crumb{}); !errors.Is(err, ErrUnknownPool) {
		t.Errorf("Expected ErrUnknownPool, got %v", err)
	}
}

// TestResetHook verifies state zeroing runs on return, before reuse
func TestResetHook(t *testing.T) {
	r := NewRegistry()
	p, _ := Create(r, "Cookie", newCrumbFactory(), 1, PolicyBounded, func(c *crumb) {
		c.dirty = false
	})

	inst, _ := p.Get()
	inst.dirty = true
	p.Put(inst)

	again, _ := p.Get()
	if again.dirty {
		t.Error("Expected reset hook to zero state before reuse")
	}
}

// TestDrain verifies teardown releases every instance, loaned or not
func TestDrain(t *testing.T) {
	r := NewRegistry()
	p, _ := Create(r, "Cookie", newCrumbFactory(), 3, PolicyBounded, nil)
	p.Get() // One on loan at teardown

	released := 0
	if err := Remove(r, "Cookie", func(*crumb) { released++ }); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if released != 3 {
		t.Errorf("Expected 3 instances released, got %d", released)
	}
	if r.Has("Cookie") {
		t.Error("Expected pool to be gone after Remove")
	}
}

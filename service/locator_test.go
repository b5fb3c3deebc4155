package service

import "testing"

type timerCapability interface {
	Remaining() int
}

type fakeTimer struct {
	remaining int
}

func (f *fakeTimer) Remaining() int { return f.remaining }

// TestGetBeforeRegister verifies absence is an ok-form miss
func TestGetBeforeRegister(t *testing.T) {
	loc := NewLocator()

	if _, ok := Get[timerCapability](loc); ok {
		t.Error("Expected not-found before any registration")
	}
}

// TestRegisterGetStability verifies every Get returns the same instance
// reference until unregister or overwrite
func TestRegisterGetStability(t *testing.T) {
	loc := NewLocator()
	timer := &fakeTimer{remaining: 30}

	Register[timerCapability](loc, timer)

	for i := 0; i < 3; i++ {
		got, ok := Get[timerCapability](loc)
		if !ok {
			t.Fatal("Expected registered capability to be found")
		}
		if got != timerCapability(timer) {
			t.Fatalf("Get %d returned a different instance", i)
		}
	}
}

// TestRegisterOverwrite verifies last-writer-wins semantics
func TestRegisterOverwrite(t *testing.T) {
	loc := NewLocator()
	first := &fakeTimer{remaining: 30}
	second := &fakeTimer{remaining: 60}

	Register[timerCapability](loc, first)
	Register[timerCapability](loc, second)

	got, ok := Get[timerCapability](loc)
	if !ok {
		t.Fatal("Expected capability after overwrite")
	}
	if got.Remaining() != 60 {
		t.Errorf("Expected overwriting instance, got Remaining()=%d", got.Remaining())
	}
	if loc.Count() != 1 {
		t.Errorf("Expected 1 registration after overwrite, got %d", loc.Count())
	}
}

// TestUnregister verifies removal and repeated-removal as no-op
func TestUnregister(t *testing.T) {
	loc := NewLocator()
	Register[timerCapability](loc, &fakeTimer{})

	Unregister[timerCapability](loc)
	if _, ok := Get[timerCapability](loc); ok {
		t.Error("Expected not-found after unregister")
	}

	Unregister[timerCapability](loc) // No-op
	if loc.Count() != 0 {
		t.Errorf("Expected empty locator, got %d registrations", loc.Count())
	}
}

// TestDistinctCapabilities verifies capabilities do not collide
func TestDistinctCapabilities(t *testing.T) {
	loc := NewLocator()
	Register[timerCapability](loc, &fakeTimer{remaining: 5})
	Register[*fakeTimer](loc, &fakeTimer{remaining: 9})

	asCap, _ := Get[timerCapability](loc)
	asPtr, _ := Get[*fakeTimer](loc)

	if asCap.Remaining() != 5 {
		t.Errorf("Interface capability Remaining()=%d, want 5", asCap.Remaining())
	}
	if asPtr.Remaining() != 9 {
		t.Errorf("Pointer capability Remaining()=%d, want 9", asPtr.Remaining())
	}
}

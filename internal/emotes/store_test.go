package emotes

import (
	"testing"
)

func TestNewMapping_SeedsFallback(t *testing.T) {
	m := NewMapping()
	if m.Len() != 1 {
		t.Fatalf("len: got %d want 1", m.Len())
	}
	id, ok := m.Get(FallbackName)
	if !ok || id != FallbackID {
		t.Fatalf("fallback entry missing: %q %v", id, ok)
	}
}

func TestMapping_LastWinsKeepsPosition(t *testing.T) {
	m := NewMapping()
	m.Put("A", "1")
	m.Put("B", "2")
	m.Put("A", "9")
	names := m.Names()
	if len(names) != 3 || names[1] != "A" || names[2] != "B" {
		t.Fatalf("order disturbed: %#v", names)
	}
	if id, _ := m.Get("A"); id != "9" {
		t.Fatalf("expected last-wins identifier, got %q", id)
	}
}

func TestMapping_RejectsEmptyFields(t *testing.T) {
	m := NewMapping()
	m.Put("", "1")
	m.Put("X", "")
	if m.Len() != 1 {
		t.Fatalf("invalid entries were stored: %#v", m.Names())
	}
}

func TestStore_SwapReplacesWholesale(t *testing.T) {
	s := NewStore()
	old := s.Current()
	next := NewMapping()
	next.Put("OMG", "02AA")
	s.Swap(next)
	if s.Current() == old {
		t.Fatalf("swap did not replace the mapping")
	}
	if _, ok := s.Current().Get("OMG"); !ok {
		t.Fatalf("new mapping not visible")
	}
	// The old mapping stays usable for readers that captured it pre-swap.
	if _, ok := old.Get(FallbackName); !ok {
		t.Fatalf("captured mapping mutated by swap")
	}
}

func TestStore_SwapIgnoresEmpty(t *testing.T) {
	s := NewStore()
	before := s.Current()
	s.Swap(nil)
	s.Swap(&Mapping{ids: map[string]string{}})
	if s.Current() != before {
		t.Fatalf("empty swap replaced the mapping")
	}
	if _, ok := s.Current().Get(FallbackName); !ok {
		t.Fatalf("fallback evicted")
	}
}

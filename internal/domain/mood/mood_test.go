package mood

import (
	"errors"
	"testing"
)

func TestNewVector_Valid(t *testing.T) {
	v, err := NewVector(map[string]int{"happy": 10, "calm": 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(v) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(v))
	}
	if v[Happy] != 10 || v[Calm] != 3 {
		t.Errorf("unexpected intensities: %v", v)
	}
}

func TestNewVector_UnknownMood(t *testing.T) {
	_, err := NewVector(map[string]int{"ecstatic": 5})
	if !errors.Is(err, ErrUnknownMood) {
		t.Fatalf("expected ErrUnknownMood, got %v", err)
	}
}

func TestNewVector_IntensityOutOfRange(t *testing.T) {
	for _, intensity := range []int{-1, 11} {
		if _, err := NewVector(map[string]int{"happy": intensity}); err == nil {
			t.Errorf("expected error for intensity %d", intensity)
		}
	}
}

func TestNewVector_Empty(t *testing.T) {
	v, err := NewVector(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(v) != 0 {
		t.Fatalf("expected empty vector, got %v", v)
	}
	if v.TotalIntensity() != 0 {
		t.Errorf("expected zero total intensity")
	}
}

func TestVector_Strongest(t *testing.T) {
	v := Vector{Sad: 4, Happy: 9, Calm: 4}
	got := v.Strongest()
	want := []Mood{Happy, Calm, Sad} // ties broken by name
	if len(got) != len(want) {
		t.Fatalf("expected %d moods, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestSignals_CoverVocabulary(t *testing.T) {
	for _, m := range All() {
		if len(m.Genres()) == 0 {
			t.Errorf("mood %s has no genre signals", m)
		}
		if len(m.Keywords()) == 0 {
			t.Errorf("mood %s has no keyword signals", m)
		}
	}
}

func TestPreference_IsValid(t *testing.T) {
	if !Match.IsValid() || !Change.IsValid() {
		t.Error("match and change must be valid")
	}
	if Preference("invert").IsValid() {
		t.Error("unexpected preference accepted")
	}
}

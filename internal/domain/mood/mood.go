package mood

import (
	"errors"
	"fmt"
	"sort"
)

// Mood is one entry of the fixed mood vocabulary.
type Mood string

// The mood vocabulary.
const (
	Happy       Mood = "happy"
	Sad         Mood = "sad"
	Fearful     Mood = "fearful"
	Angry       Mood = "angry"
	InLove      Mood = "inlove"
	Excited     Mood = "excited"
	Calm        Mood = "calm"
	Inspired    Mood = "inspired"
	Bored       Mood = "bored"
	Hopeful     Mood = "hopeful"
	Melancholic Mood = "melancholic"
	Fun         Mood = "fun"
)

// Intensity bounds for a single mood entry.
const (
	MinIntensity = 0
	MaxIntensity = 10
)

// ErrUnknownMood signals a mood name outside the vocabulary.
var ErrUnknownMood = errors.New("unknown mood")

// displayNames maps each mood to its user-facing label.
var displayNames = map[Mood]string{
	Happy:       "Happy",
	Sad:         "Sad",
	Fearful:     "Fearful",
	Angry:       "Angry",
	InLove:      "In Love",
	Excited:     "Excited",
	Calm:        "Calm",
	Inspired:    "Inspired",
	Bored:       "Bored",
	Hopeful:     "Hopeful",
	Melancholic: "Melancholic",
	Fun:         "Want to Have Fun",
}

// IsValid checks membership in the mood vocabulary.
func (m Mood) IsValid() bool {
	_, ok := displayNames[m]
	return ok
}

// DisplayName returns the user-facing label, or the raw name for unknown moods.
func (m Mood) DisplayName() string {
	if name, ok := displayNames[m]; ok {
		return name
	}
	return string(m)
}

// All returns the vocabulary in a stable order.
func All() []Mood {
	moods := make([]Mood, 0, len(displayNames))
	for m := range displayNames {
		moods = append(moods, m)
	}
	sort.Slice(moods, func(i, j int) bool { return moods[i] < moods[j] })
	return moods
}

// Vector maps moods to self-reported intensities. A zero-length vector is
// legal and means "no signal": scoring over it yields an empty result.
type Vector map[Mood]int

// NewVector validates raw mood/intensity pairs against the vocabulary.
// Unknown mood names are rejected, intensities must lie in [0, 10].
func NewVector(raw map[string]int) (Vector, error) {
	v := make(Vector, len(raw))
	for name, intensity := range raw {
		m := Mood(name)
		if !m.IsValid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownMood, name)
		}
		if intensity < MinIntensity || intensity > MaxIntensity {
			return nil, fmt.Errorf("intensity for %q must be between %d and %d, got %d",
				name, MinIntensity, MaxIntensity, intensity)
		}
		v[m] = intensity
	}
	return v, nil
}

// TotalIntensity sums all intensities. Zero means the vector carries no signal.
func (v Vector) TotalIntensity() int {
	total := 0
	for _, intensity := range v {
		total += intensity
	}
	return total
}

// Strongest returns the moods ordered by descending intensity, ties broken by
// name so the order is deterministic.
func (v Vector) Strongest() []Mood {
	moods := make([]Mood, 0, len(v))
	for m := range v {
		moods = append(moods, m)
	}
	sort.Slice(moods, func(i, j int) bool {
		if v[moods[i]] != v[moods[j]] {
			return v[moods[i]] > v[moods[j]]
		}
		return moods[i] < moods[j]
	})
	return moods
}

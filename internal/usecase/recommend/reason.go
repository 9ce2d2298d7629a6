package recommend

import (
	"fmt"

	"github.com/moodflix/moodflix/internal/domain/mood"
)

// Score bands for reason template selection.
const (
	bandOutstanding = 0.8
	bandStrong      = 0.6
	bandGood        = 0.4
)

// Sub-score thresholds that pick the more specific template within a band.
const (
	dominantSignal   = 0.7
	blendGenreSignal = 0.5
)

// matchReason renders the human-readable explanation for a scored movie.
// Purely cosmetic: template choice is keyed on preference, score band,
// dominant sub-score, and the two strongest moods; it never affects ranking.
func matchReason(moods mood.Vector, preference mood.Preference, score float64, sub subScores) string {
	primary := "current"
	secondary := ""
	if strongest := moods.Strongest(); len(strongest) > 0 {
		primary = string(strongest[0])
		if len(strongest) > 1 {
			secondary = string(strongest[1])
		}
	}

	if preference == mood.Change {
		return changeReason(primary, score, sub)
	}
	return matchModeReason(primary, secondary, score, sub)
}

func matchModeReason(primary, secondary string, score float64, sub subScores) string {
	switch {
	case score > bandOutstanding:
		if sub.genre > dominantSignal {
			return fmt.Sprintf("Perfect %s movie with ideal genres", primary)
		}
		if sub.keyword > dominantSignal {
			return fmt.Sprintf("Exactly matches your %s mood", primary)
		}
		return fmt.Sprintf("Outstanding fit for your %s feelings", primary)
	case score > bandStrong:
		if secondary != "" && sub.genre > blendGenreSignal {
			return fmt.Sprintf("Great blend for %s and %s", primary, secondary)
		}
		if sub.quality > dominantSignal {
			return fmt.Sprintf("Highly rated %s movie", primary)
		}
		return "Strong match for your current mood"
	case score > bandGood:
		return fmt.Sprintf("Good fit for your %s vibe", primary)
	default:
		return "Matches some aspects of your mood"
	}
}

func changeReason(primary string, score float64, sub subScores) string {
	switch {
	case score > bandOutstanding:
		if sub.quality > dominantSignal {
			return "Top-quality film to shift your perspective"
		}
		return fmt.Sprintf("Perfect antidote to your %s mood", primary)
	case score > bandStrong:
		return "Should help change how you're feeling"
	case score > bandGood:
		return "Might give you a different emotional experience"
	default:
		return "Could offer a mood shift"
	}
}

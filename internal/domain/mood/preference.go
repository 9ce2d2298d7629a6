package mood

// Preference is the direction a recommendation should take relative to the
// reported moods.
type Preference string

const (
	// Match ranks movies whose emotional content aligns with the mood vector.
	Match Preference = "match"
	// Change inverts the mood alignment while keeping the quality floor.
	Change Preference = "change"
)

// IsValid checks if the preference is one of the supported values.
func (p Preference) IsValid() bool {
	return p == Match || p == Change
}

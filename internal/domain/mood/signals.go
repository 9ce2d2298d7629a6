package mood

// genreSignals maps each mood to the genres that carry it.
var genreSignals = map[Mood][]string{
	Happy:       {"Comedy", "Family", "Animation", "Adventure", "Musical", "Romance"},
	Sad:         {"Drama", "Romance", "History", "War", "Biography"},
	Fearful:     {"Horror", "Thriller", "Mystery", "Crime"},
	Angry:       {"Action", "Crime", "War", "Thriller", "Western"},
	InLove:      {"Romance", "Comedy", "Drama", "Musical"},
	Excited:     {"Action", "Adventure", "Science Fiction", "Fantasy", "Thriller"},
	Calm:        {"Documentary", "Drama", "Family", "Animation"},
	Inspired:    {"Biography", "Documentary", "Drama", "Adventure", "History"},
	Bored:       {"Action", "Comedy", "Adventure", "Science Fiction", "Fantasy"},
	Hopeful:     {"Family", "Comedy", "Adventure", "Fantasy", "Animation"},
	Melancholic: {"Drama", "Romance", "Music", "History"},
	Fun:         {"Comedy", "Animation", "Adventure", "Family", "Musical"},
}

// keywordSignals maps each mood to free-text markers found in overviews,
// taglines, and user tags.
var keywordSignals = map[Mood][]string{
	Happy: {
		"joy", "celebration", "victory", "success", "wedding", "friendship",
		"love", "fun", "funny", "hilarious", "comedy", "laugh", "entertainment",
		"party", "sweet", "uplifting",
	},
	Sad: {
		"loss", "death", "tragedy", "separation", "grief", "melancholy",
		"sorrow", "depression", "tears", "heartbreak", "sacrifice", "dramatic",
		"emotional",
	},
	Fearful: {
		"terror", "horror", "fear", "scary", "nightmare", "monster", "ghost",
		"danger", "thriller", "suspense", "dark", "creepy", "frightening",
	},
	Angry: {
		"revenge", "violence", "fight", "war", "conflict", "rage", "justice",
		"brutal", "intense", "aggressive", "betrayal", "crime",
	},
	InLove: {
		"romance", "love", "relationship", "marriage", "passion", "heart",
		"romantic", "dating", "couple", "wedding", "kiss", "affection",
	},
	Excited: {
		"adventure", "action", "thrill", "chase", "excitement", "adrenaline",
		"fast-paced", "energetic", "dynamic", "explosive", "intense",
	},
	Calm: {
		"peaceful", "quiet", "meditation", "nature", "serene", "tranquil",
		"relaxing", "gentle", "slow", "contemplative", "mindful",
	},
	Inspired: {
		"dream", "achievement", "overcome", "inspiration", "motivation", "hero",
		"triumph", "success", "courage", "determination", "hope",
	},
	Bored: {
		"escape", "adventure", "discovery", "journey", "explore", "exciting",
		"thrilling", "entertaining", "engaging", "captivating",
	},
	Hopeful: {
		"hope", "future", "optimism", "possibility", "miracle", "faith",
		"positive", "uplifting", "encouraging", "bright",
	},
	Melancholic: {
		"nostalgia", "memory", "past", "longing", "bittersweet", "melancholy",
		"wistful", "reflective", "somber",
	},
	Fun: {
		"comedy", "humor", "laugh", "entertainment", "party", "celebration",
		"playful", "lighthearted", "amusing", "witty", "clever",
	},
}

// Genres returns the genre signal set for a mood. Empty for unknown moods.
func (m Mood) Genres() []string {
	return genreSignals[m]
}

// Keywords returns the keyword signal set for a mood. Empty for unknown moods.
func (m Mood) Keywords() []string {
	return keywordSignals[m]
}

package movie

import "testing"

func TestNormalizePosterPath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"valid jpg", "/abc123.jpg", "abc123.jpg"},
		{"valid nested", "/posters/abc_1-2.jpeg", "posters/abc_1-2.jpeg"},
		{"valid png uppercase ext", "poster.PNG", "poster.PNG"},
		{"whitespace trimmed", "  /abc.jpg  ", "abc.jpg"},
		{"double leading slash", "//abc.jpg", "abc.jpg"},
		{"bad extension", "/abc.gif", ""},
		{"url rejected", "http://example.com/abc.jpg", ""},
		{"spaces inside rejected", "/ab c.jpg", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePosterPath(tt.in); got != tt.want {
				t.Errorf("NormalizePosterPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSearchText(t *testing.T) {
	m := Movie{
		Overview: "A Joyful Wedding",
		Tagline:  "Love Wins",
		Keywords: []string{"party", "Friendship"},
	}
	got := m.SearchText()
	want := "a joyful wedding love wins party friendship"
	if got != want {
		t.Errorf("SearchText() = %q, want %q", got, want)
	}
}

package title

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase", "The Matrix", "matrix"},
		{"accents", "Léon: The Professional", "leon professional"},
		{"ampersand", "Law & Order", "law and order"},
		{"punctuation", "Dr. Strangelove", "dr strangelove"},
		{"apostrophe", "Ocean's Eleven", "oceans eleven"},
		{"hyphen", "Spider-Man", "spider man"},
		{"whitespace", "  The   Thing  ", "thing"},
		{"leading article a", "A Quiet Place", "quiet place"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.input))
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("The Matrix", "the matrix"))
	assert.Equal(t, 1.0, Similarity("Léon", "Leon"))

	// Close but not identical titles score high
	assert.Greater(t, Similarity("Blade Runner", "Blade Runner Final Cut"), 0.85)

	// Unrelated titles score low
	assert.Less(t, Similarity("The Matrix", "Finding Nemo"), 0.6)
}

func TestMatch(t *testing.T) {
	assert.True(t, Match("The Matrix", "Matrix, The"))
	assert.False(t, Match("The Matrix", "Inception"))
}

func TestSuggest(t *testing.T) {
	candidates := []string{"emby", "jellyfin", "plex"}

	assert.Equal(t, "emby", Suggest("embby", candidates))
	assert.Equal(t, "jellyfin", Suggest("jellfin", candidates))
	assert.Equal(t, "plex", Suggest("Plex", candidates))
	assert.Equal(t, "", Suggest("kodi", candidates))
}

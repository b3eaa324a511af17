//nolint:testpackage // exercises the embedded dictionary directly.
package spell

import "testing"

func TestCorrect(t *testing.T) {
	c := New()

	tests := []struct {
		name string
		word string
		want string
	}{
		{name: "known word unchanged", word: "video", want: "video"},
		{name: "distance one substitution", word: "channal", want: "channel"},
		{name: "distance one correction", word: "videp", want: "video"},
		{name: "leading capital preserved", word: "Channal", want: "Channel"},
		{name: "trailing punctuation preserved", word: "channal!!!", want: "channel!!!"},
		{name: "wrapping punctuation preserved", word: "(channal)", want: "(channel)"},
		{name: "short word skipped", word: "no", want: "no"},
		{name: "no neighbour unchanged", word: "xqzvw", want: "xqzvw"},
		{name: "empty unchanged", word: "", want: ""},
		{name: "pure punctuation unchanged", word: "!!!", want: "!!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Correct(tt.word)
			if err != nil {
				t.Fatalf("Correct(%q) returned error: %v", tt.word, err)
			}
			if got != tt.want {
				t.Errorf("Correct(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

// Ties between equally distant candidates go to the more frequent word.
func TestCorrectPrefersFrequentNeighbour(t *testing.T) {
	c := New()

	// "thi" is distance one from both "the" and "this"; "the" dominates
	// the frequency table.
	got, err := c.Correct("thi")
	if err != nil {
		t.Fatalf("Correct returned error: %v", err)
	}
	if got != "the" {
		t.Errorf("Correct(%q) = %q, want %q", "thi", got, "the")
	}
}

func TestDictionaryLoaded(t *testing.T) {
	if Size() == 0 {
		t.Fatal("embedded dictionary is empty")
	}
	if _, ok := words["the"]; !ok {
		t.Error("expected dictionary to contain common words")
	}
}

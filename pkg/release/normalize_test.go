package release

import "testing"

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Scene Name", "scene name"},
		{"Scene: The Name!", "scene the name"},
		{"Léon's Scene", "leons scene"},
		{"  Extra   Spaces  ", "extra spaces"},
		{"Scene-Name.2023", "scenename2023"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := NormalizeTitle(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeTitle(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeTitle_Idempotent(t *testing.T) {
	inputs := []string{
		"Performer Name 2023",
		"Scene: The Name!",
		"Léon's Scene",
		"",
	}

	for _, in := range inputs {
		once := NormalizeTitle(in)
		twice := NormalizeTitle(once)
		if once != twice {
			t.Errorf("NormalizeTitle not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestPreprocessTitle(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Scene Name 1080p BluRay", "scene name"},
		{"Scene Name 2160p WEB-DL.mkv", "scene name"},
		{"SCENE NAME", "scene name"},
		{"Scene Name.mp4", "scene name"},
		// Punctuation survives, unlike NormalizeTitle.
		{"Scene: Name", "scene: name"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := PreprocessTitle(tt.input)
			if got != tt.want {
				t.Errorf("PreprocessTitle(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

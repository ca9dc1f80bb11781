package clipboard

import "testing"

func TestExtractColor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"canonical", "#3b82f6", "#3b82f6"},
		{"uppercase", "#3B82F6", "#3b82f6"},
		{"no hash", "3b82f6", "#3b82f6"},
		{"surrounding whitespace", "  #3b82f6\n", "#3b82f6"},
		{"short form rejected", "#fff", ""},
		{"not a color", "hello", ""},
		{"url", "https://example.com", ""},
		{"multiline", "#3b82f6\n#000000", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractColor(tt.input); got != tt.want {
				t.Errorf("ExtractColor(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

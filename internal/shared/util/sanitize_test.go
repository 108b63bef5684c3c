package util

import "testing"

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain", input: "resume_1.pdf", want: "resume_1.pdf"},
		{name: "trims space", input: "  file.png  ", want: "file.png"},
		{name: "replaces slashes", input: "a/b.pdf", want: "a_b.pdf"},
		{name: "replaces backslashes", input: `a\b.pdf`, want: "a_b.pdf"},
		{name: "rejects traversal", input: "../etc/passwd", wantErr: true},
		{name: "rejects embedded traversal", input: "x..y", wantErr: true},
		{name: "rejects empty", input: "", wantErr: true},
		{name: "rejects whitespace only", input: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeFileName(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

package s3

import "testing"

func TestApplyPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "resumes/resume_1.pdf", want: "resumes/resume_1.pdf"},
		{name: "simple prefix", prefix: "root", key: "resumes/resume_1.pdf", want: "root/resumes/resume_1.pdf"},
		{name: "prefix trailing slash", prefix: "root/", key: "uploads/a.png", want: "root/uploads/a.png"},
		{name: "prefix and key slashes", prefix: "/root/", key: "/uploads/a.png", want: "root/uploads/a.png"},
		{name: "nested prefix", prefix: "root/sub", key: "uploads/a.png", want: "root/sub/uploads/a.png"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}

func TestNormalizePrefix(t *testing.T) {
	t.Parallel()

	if got := normalizePrefix("  /root/sub/ "); got != "root/sub" {
		t.Fatalf("normalizePrefix = %q", got)
	}
	if got := normalizePrefix(""); got != "" {
		t.Fatalf("normalizePrefix empty = %q", got)
	}
}

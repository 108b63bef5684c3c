package render

import (
	"strings"
	"testing"
)

func TestBuildHTML(t *testing.T) {
	doc := Document{
		Name:       "Alice",
		FatherName: "Bob",
		CNIC:       "12345",
		Email:      "a@x.com",
		Phone:      "555",
		Education:  "BSc",
		Experience: "2y",
		Skills:     "Go",
	}

	html, err := BuildHTML(doc)
	if err != nil {
		t.Fatalf("build html: %v", err)
	}

	if !strings.Contains(html, "Alice's Resume") {
		t.Fatalf("expected title, got %s", html)
	}
	for _, want := range []string{
		"Father's Name: Bob",
		"CNIC: 12345",
		"Email: a@x.com",
		"Phone: 555",
		"Education: BSc",
		"Experience: 2y",
		"Skills: Go",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in output", want)
		}
	}
	if strings.Contains(html, "Profile Picture:") {
		t.Fatalf("expected no picture line without a path")
	}
}

func TestBuildHTMLWithPicturePath(t *testing.T) {
	doc := Document{Name: "Alice", ProfilePicture: "/uploads/abc.png"}

	html, err := BuildHTML(doc)
	if err != nil {
		t.Fatalf("build html: %v", err)
	}
	if !strings.Contains(html, "Profile Picture: /uploads/abc.png") {
		t.Fatalf("expected picture line, got %s", html)
	}
}

func TestBuildHTMLEscapesFields(t *testing.T) {
	doc := Document{Name: "<script>alert(1)</script>"}

	html, err := BuildHTML(doc)
	if err != nil {
		t.Fatalf("build html: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Fatalf("expected field to be escaped, got %s", html)
	}
}

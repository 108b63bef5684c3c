package resumes

import (
	"strings"
	"time"
)

// Resume is one stored submission, keyed by ID. Records are immutable once
// created.
type Resume struct {
	ID             string
	Name           string
	FatherName     string
	CNIC           string
	Email          string
	Phone          string
	Education      string
	Experience     string
	Skills         string
	ProfilePicture string // public path under /uploads, empty when none was sent
	PDFFileName    string
	CreatedAt      time.Time
}

// Submission carries the raw form fields of a create request.
type Submission struct {
	Name       string
	FatherName string
	CNIC       string
	Email      string
	Phone      string
	Education  string
	Experience string
	Skills     string
}

// Validate checks the required fields in order: name, email, phone.
// Email and phone are deliberately not format-checked; only presence is
// required.
func (s Submission) Validate() error {
	for _, v := range []string{s.Name, s.Email, s.Phone} {
		if strings.TrimSpace(v) == "" {
			return ErrMissingRequired
		}
	}
	return nil
}

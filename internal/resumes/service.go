package resumes

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/render"
	"resume-builder/internal/shared/storage/object"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/internal/uploads"
)

// PDFKeyPrefix is the object-store namespace for generated PDFs.
const PDFKeyPrefix = "resumes/"

// PDFKey maps a generated PDF file name to its object-store key.
func PDFKey(fileName string) string {
	return path.Join(PDFKeyPrefix, fileName)
}

// Service contains business logic for resume creation and retrieval.
type Service struct {
	Repo     Repo
	Store    object.ObjectStore
	Uploads  *uploads.Store
	Renderer render.Renderer
}

// Create runs the submission pipeline: validate fields, store the optional
// profile picture, render the PDF, persist it, and index the record. The
// first failing stage aborts the request; no record is stored unless the
// PDF write completed. A picture persisted before a failed render stays on
// storage (logged, reclaimed by an external sweep).
func (s *Service) Create(ctx context.Context, sub Submission, picture *multipart.FileHeader) (Resume, error) {
	if err := sub.Validate(); err != nil {
		return Resume{}, err
	}

	picturePath, err := s.Uploads.StorePicture(ctx, picture)
	if err != nil {
		return Resume{}, err
	}

	id := uuid.NewString()
	pdfFileName := fmt.Sprintf("resume_%s.pdf", id)

	pdfBytes, err := s.Renderer.RenderPDF(ctx, render.Document{
		Name:           sub.Name,
		FatherName:     sub.FatherName,
		CNIC:           sub.CNIC,
		Email:          sub.Email,
		Phone:          sub.Phone,
		Education:      sub.Education,
		Experience:     sub.Experience,
		Skills:         sub.Skills,
		ProfilePicture: picturePath,
	})
	if err != nil {
		telemetry.Error("render.failed", map[string]any{
			"resume_id":       id,
			"orphaned_upload": picturePath,
			"error":           err.Error(),
		})
		return Resume{}, fmt.Errorf("render resume: %w", err)
	}

	if _, err := s.Store.Save(ctx, PDFKey(pdfFileName), "application/pdf", bytes.NewReader(pdfBytes)); err != nil {
		telemetry.Error("render.failed", map[string]any{
			"resume_id":       id,
			"orphaned_upload": picturePath,
			"error":           err.Error(),
		})
		return Resume{}, fmt.Errorf("store pdf: %w", err)
	}

	rec := Resume{
		ID:             id,
		Name:           sub.Name,
		FatherName:     sub.FatherName,
		CNIC:           sub.CNIC,
		Email:          sub.Email,
		Phone:          sub.Phone,
		Education:      sub.Education,
		Experience:     sub.Experience,
		Skills:         sub.Skills,
		ProfilePicture: picturePath,
		PDFFileName:    pdfFileName,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.Repo.Insert(ctx, rec); err != nil {
		return Resume{}, fmt.Errorf("insert record: %w", err)
	}

	return rec, nil
}

// Get returns the record for an identifier.
func (s *Service) Get(ctx context.Context, id string) (Resume, error) {
	if id == "" {
		return Resume{}, ErrNotFound
	}
	return s.Repo.GetByID(ctx, id)
}

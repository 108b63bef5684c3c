package resumes

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Insert inserts a new resume record. A duplicate id surfaces as an error
// rather than a silent overwrite.
func (r *PGRepo) Insert(ctx context.Context, rec Resume) error {
	const query = `
INSERT INTO resumes (
    id,
    name,
    father_name,
    cnic,
    email,
    phone,
    education,
    experience,
    skills,
    profile_picture,
    pdf_file_name,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	var picture sql.NullString
	if rec.ProfilePicture != "" {
		picture = sql.NullString{String: rec.ProfilePicture, Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		rec.ID,
		rec.Name,
		rec.FatherName,
		rec.CNIC,
		rec.Email,
		rec.Phone,
		rec.Education,
		rec.Experience,
		rec.Skills,
		picture,
		rec.PDFFileName,
		rec.CreatedAt,
	)
	return err
}

// GetByID fetches a resume record by identifier.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Resume, error) {
	const query = `
SELECT id, name, father_name, cnic, email, phone, education, experience, skills, profile_picture, pdf_file_name, created_at
FROM resumes
WHERE id = $1
LIMIT 1`

	var rec Resume
	var picture sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&rec.ID,
		&rec.Name,
		&rec.FatherName,
		&rec.CNIC,
		&rec.Email,
		&rec.Phone,
		&rec.Education,
		&rec.Experience,
		&rec.Skills,
		&picture,
		&rec.PDFFileName,
		&rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	if picture.Valid {
		rec.ProfilePicture = picture.String
	}
	return rec, nil
}

var _ Repo = (*PGRepo)(nil)

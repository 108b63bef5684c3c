package resumes

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoInsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	rec := Resume{
		ID:             "resume-1",
		Name:           "Alice",
		FatherName:     "Bob",
		CNIC:           "12345",
		Email:          "a@x.com",
		Phone:          "555",
		Education:      "BSc",
		Experience:     "2y",
		Skills:         "Go",
		ProfilePicture: "/uploads/pic.png",
		PDFFileName:    "resume_resume-1.pdf",
		CreatedAt:      time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO resumes").
		WithArgs(
			rec.ID,
			rec.Name,
			rec.FatherName,
			rec.CNIC,
			rec.Email,
			rec.Phone,
			rec.Education,
			rec.Experience,
			rec.Skills,
			sql.NullString{String: rec.ProfilePicture, Valid: true},
			rec.PDFFileName,
			rec.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Insert(context.Background(), rec); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoInsertWithoutPictureUsesNull(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	rec := Resume{
		ID:          "resume-2",
		Name:        "Alice",
		Email:       "a@x.com",
		Phone:       "555",
		PDFFileName: "resume_resume-2.pdf",
		CreatedAt:   time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO resumes").
		WithArgs(
			rec.ID,
			rec.Name,
			"",
			"",
			rec.Email,
			rec.Phone,
			"",
			"",
			"",
			sql.NullString{},
			rec.PDFFileName,
			rec.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Insert(context.Background(), rec); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	created := time.Now().UTC()

	cols := []string{"id", "name", "father_name", "cnic", "email", "phone", "education", "experience", "skills", "profile_picture", "pdf_file_name", "created_at"}
	mock.ExpectQuery("SELECT (.+) FROM resumes").
		WithArgs("resume-1").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(
			"resume-1", "Alice", "Bob", "12345", "a@x.com", "555", "BSc", "2y", "Go", nil, "resume_resume-1.pdf", created,
		))

	rec, err := repo.GetByID(context.Background(), "resume-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if rec.Name != "Alice" || rec.ProfilePicture != "" || rec.PDFFileName != "resume_resume-1.pdf" {
		t.Fatalf("unexpected record %+v", rec)
	}

	mock.ExpectQuery("SELECT (.+) FROM resumes").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	if _, err := repo.GetByID(context.Background(), "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

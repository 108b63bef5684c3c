package resumes

import (
	"context"
	"fmt"
	"sync"
	"testing"
)

func TestMemoryRepoInsertAndGet(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	rec := Resume{ID: "r1", Name: "Alice", Email: "a@x.com", Phone: "555", PDFFileName: "resume_r1.pdf"}
	if err := repo.Insert(ctx, rec); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := repo.GetByID(ctx, "r1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != rec {
		t.Fatalf("got %+v, want %+v", got, rec)
	}

	if _, err := repo.GetByID(ctx, "r2"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryRepoConcurrentInserts(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("r%d", i)
			if err := repo.Insert(ctx, Resume{ID: id, Name: "n", Email: "e", Phone: "p"}); err != nil {
				t.Errorf("insert %s: %v", id, err)
			}
		}(i)
	}
	wg.Wait()

	if repo.Len() != 32 {
		t.Fatalf("expected 32 records, got %d", repo.Len())
	}
}

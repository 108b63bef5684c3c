package resumes

import "context"

// Repo defines persistence operations for resume records. There is no
// update or delete: records are insert-only.
type Repo interface {
	Insert(ctx context.Context, rec Resume) error
	GetByID(ctx context.Context, id string) (Resume, error)
}

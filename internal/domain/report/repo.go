package report

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists reconciled reports and their observation rows.
type Repository interface {
	Create(ctx context.Context, r *Report) error
	GetByID(ctx context.Context, id uuid.UUID) (*Report, error)
	List(ctx context.Context, limit, offset int) ([]*Summary, int, error)
	ListBySubject(ctx context.Context, subjectID uuid.UUID, limit, offset int) ([]*Summary, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

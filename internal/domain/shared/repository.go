package shared

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the base persistence contract shared by all resources.
// F is the resource specific list filter.
type Repository[T any, F any] interface {
	FindAll(ctx context.Context, filter F) ([]T, error)
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// NoFilter is used by resources whose list operation takes no parameters
type NoFilter struct{}

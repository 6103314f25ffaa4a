package repository

import (
	"context"

	"eventer/internal/domain/entity"
)

// LocationRepository persists location rows. Every add/edit of an event or
// profile creates a fresh row; there is no content-based deduplication.
type LocationRepository interface {
	Create(ctx context.Context, location *entity.Location) error
}

// CategoryRepository persists category rows, with the same per-call creation
// behavior as locations.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
}

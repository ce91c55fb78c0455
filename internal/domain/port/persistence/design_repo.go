package persistence

import (
	"context"

	"github.com/amirhossein-jamali/image2code-backend/internal/domain/entity"
)

// DesignRepository stores generated designs
type DesignRepository interface {
	// Create inserts a new design and fills its ID
	//
	// Possible errors:
	// - ErrDuplicateDesign: If the uid is already taken
	Create(ctx context.Context, design *entity.Design) error

	// GetByUID returns the most recent design with uid
	//
	// Possible errors:
	// - ErrDesignNotFound: If no design has that uid
	GetByUID(ctx context.Context, uid string) (*entity.Design, error)

	// Update overwrites the mutable fields of an existing design
	//
	// Possible errors:
	// - ErrDesignNotFound: If no row was updated
	Update(ctx context.Context, design *entity.Design) error

	// ListByOwner returns the owner's designs, newest first
	ListByOwner(ctx context.Context, email string) ([]*entity.Design, error)

	// Delete removes the design with uid
	//
	// Possible errors:
	// - ErrDesignNotFound: If no row was deleted
	Delete(ctx context.Context, uid string) error
}

// DesignCache is a read-through cache in front of DesignRepository
type DesignCache interface {
	// GetOrLoad returns the cached design for uid or calls load and caches its result
	GetOrLoad(ctx context.Context, uid string, load func(ctx context.Context) (*entity.Design, error)) (*entity.Design, error)

	// Invalidate drops the cached design for uid
	Invalidate(ctx context.Context, uid string) error
}

package partner

import (
	"context"

	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	shared.Repository[Customer, CustomerQuery]

	// FindByIDs loads customers without relations, used to attach owners to contacts
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Customer, error)

	// ExistsByID reports whether a customer exists
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// ReferenceExists reports whether the normalized reference is taken,
	// ignoring excludeID when it is not nil (update of the same record)
	ReferenceExists(ctx context.Context, reference string, excludeID *uuid.UUID) (bool, error)
}

// CustomerCategoryRepository defines the interface for category persistence
type CustomerCategoryRepository interface {
	shared.Repository[CustomerCategory, shared.NoFilter]

	// FindByIDs loads the given categories, used by the attach step
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]CustomerCategory, error)

	// ExistsByID reports whether a category exists
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// NameExists reports whether the name is taken (case-insensitive),
	// ignoring excludeID when it is not nil
	NameExists(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error)
}

// ContactRepository defines the interface for contact persistence
type ContactRepository interface {
	shared.Repository[Contact, ContactQuery]

	// FindByCustomerIDs loads the contacts of all given customers in one round trip
	FindByCustomerIDs(ctx context.Context, customerIDs []uuid.UUID) ([]Contact, error)
}

package curriculum

import "context"

// Store is the persistence boundary for belt requirements. List returns the
// full ladder ordered by BeltOrder; resolver functions take that snapshot by
// parameter and never reach back into the store.
type Store interface {
	Put(ctx context.Context, r BeltRequirement) error
	Get(ctx context.Context, rank string) (BeltRequirement, error)
	List(ctx context.Context) ([]BeltRequirement, error)
	Delete(ctx context.Context, rank string) error
}

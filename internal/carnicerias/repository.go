package carnicerias

import "context"

// Repository defines the data-access contract for the directory.
type Repository interface {
	List(ctx context.Context, ciudad string) ([]Carniceria, error)
}

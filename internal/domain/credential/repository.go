package credential

import "context"

type Repository interface {
	// Match returns the record whose email and password both equal the input.
	Match(ctx context.Context, email, password string) (Record, error)
	FindByEmail(ctx context.Context, email string) (Record, error)
	// Create appends a record with the next sequential id.
	Create(ctx context.Context, name, email, password string) (Record, error)
	Len(ctx context.Context) (int, error)
}

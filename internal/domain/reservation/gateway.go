package reservation

import "context"

// Gateway is the reservation backend as seen by the booking wizard.
type Gateway interface {
	// Create submits a draft and returns the reservation the server assigned.
	Create(ctx context.Context, d Draft) (Reservation, error)
	// Update replaces the reservation identified by number.
	Update(ctx context.Context, number string, r Reservation) (Reservation, error)
	FetchByNumber(ctx context.Context, number string) (Reservation, error)
}

// Lister returns every reservation known to the backend.
type Lister interface {
	List(ctx context.Context) ([]Reservation, error)
}

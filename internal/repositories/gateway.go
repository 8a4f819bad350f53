package repositories

import "github.com/jmoiron/sqlx"

// Gateway bundles the repositories that share one connection pool.
type Gateway struct {
	UserReader        *UserReadRepository
	UserWriter        *UserWriteRepository
	PropertyReader    *PropertyReadRepository
	PropertyWriter    *PropertyWriteRepository
	ReservationReader *ReservationReadRepository
}

// NewGateway builds every repository on top of db.
func NewGateway(db *sqlx.DB) *Gateway {
	return &Gateway{
		UserReader:        NewUserReadRepository(db),
		UserWriter:        NewUserWriteRepository(db),
		PropertyReader:    NewPropertyReadRepository(db),
		PropertyWriter:    NewPropertyWriteRepository(db),
		ReservationReader: NewReservationReadRepository(db),
	}
}

package postgres

import (
	"fmt"

	"lockerbooking/internal/adapters/out/postgres/bookingrepo"
	"lockerbooking/internal/adapters/out/postgres/customerrepo"
	"lockerbooking/internal/adapters/out/postgres/senderrepo"

	"gorm.io/gorm"
)

// Tables lists every table Migrate manages.
var Tables = []string{"customers", "senders", "bookings"}

// Migrate creates or updates the schema of all repositories.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&senderrepo.SenderDTO{},
		&bookingrepo.BookingDTO{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

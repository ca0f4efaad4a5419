// Package commands contains business operations that modify system state: customer
// and sender maintenance, batch booking and terminal directory upkeep.
// Commands validate on construction; handlers own transactions and side effects.
package commands

import (
	"context"

	"lockerbooking/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest one it needs.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	SenderRepoFactory interface {
		SenderRepository() ports.SenderRepository
	}

	BookingRepoFactory interface {
		BookingRepository() ports.BookingRepository
	}

	// CustomerUoW manages transactions for customer-only operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// SenderUoW manages transactions for the sender record.
	SenderUoW interface {
		TxManager
		SenderRepoFactory
	}

	SenderUoWFactory interface {
		Create() SenderUoW
	}

	// BookingUoW manages transactions for booking-only operations.
	BookingUoW interface {
		TxManager
		BookingRepoFactory
	}

	BookingUoWFactory interface {
		Create() BookingUoW
	}

	// UoW spans customers, the sender and bookings. The batch booking handler
	// reads through it without a transaction and writes each booking in its own.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   err = uow.BookingRepository().Add(ctx, b)
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		CustomerRepoFactory
		SenderRepoFactory
		BookingRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)

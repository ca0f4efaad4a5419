package queries

import (
	"errors"
	"time"

	"lockerbooking/internal/pkg/guard"
)

var ErrGetSenderQueryIsNotConstructed = errors.New(
	"GetSenderQuery must be created via NewGetSenderQuery constructor",
)

type GetSenderQuery struct {
	guard guard.ConstructorGuard
}

func NewGetSenderQuery() GetSenderQuery {
	return GetSenderQuery{guard: guard.NewConstructorGuard()}
}

func (q GetSenderQuery) Validate() error {
	return q.guard.Validate(ErrGetSenderQueryIsNotConstructed)
}

type SenderReadModel struct {
	PartyReadModel
	UpdatedAt time.Time
}

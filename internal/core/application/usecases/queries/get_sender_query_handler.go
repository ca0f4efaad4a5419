package queries

import (
	"context"

	"lockerbooking/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetSenderQueryHandler struct {
	db *gorm.DB
}

func NewGetSenderQueryHandler(db *gorm.DB) GetSenderQueryHandler {
	return GetSenderQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError while no sender has been saved.
func (h GetSenderQueryHandler) Handle(ctx context.Context, query GetSenderQuery) (SenderReadModel, error) {
	if err := query.Validate(); err != nil {
		return SenderReadModel{}, err
	}

	rows, err := h.db.WithContext(ctx).
		Raw(`SELECT`+partyColumns+`, updated_at FROM senders WHERE id = ?`, "default").
		Rows()
	if err != nil {
		return SenderReadModel{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return SenderReadModel{}, err
		}
		return SenderReadModel{}, errs.NewObjectNotFoundError("sender", "default")
	}

	var s SenderReadModel
	if err = rows.Scan(append(s.scanTargets(), &s.UpdatedAt)...); err != nil {
		return SenderReadModel{}, err
	}

	return s, nil
}

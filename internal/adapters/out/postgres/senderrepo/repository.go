package senderrepo

import (
	"context"
	"errors"
	"time"

	"lockerbooking/internal/adapters/out/postgres/partydto"
	"lockerbooking/internal/core/domain/model/party"
	"lockerbooking/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSenderRepository implements ports.SenderRepository using GORM.
type GormSenderRepository struct {
	db *gorm.DB
}

func NewGormSenderRepository(db *gorm.DB) *GormSenderRepository {
	return &GormSenderRepository{db: db}
}

func (r *GormSenderRepository) Get(ctx context.Context) (party.Party, error) {
	var dto SenderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", SenderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return party.Party{}, errs.NewObjectNotFoundError("sender", SenderID)
		}
		return party.Party{}, err
	}

	return partydto.ToDomain(dto.PartyDTO), nil
}

// Save inserts the sender or overwrites every column of the existing row.
func (r *GormSenderRepository) Save(ctx context.Context, sender party.Party, updatedAt time.Time) error {
	if err := sender.Validate(); err != nil {
		return err
	}
	if updatedAt.IsZero() {
		return errs.NewValueIsRequiredError("updated at")
	}

	dto := fromDomain(sender, updatedAt)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}

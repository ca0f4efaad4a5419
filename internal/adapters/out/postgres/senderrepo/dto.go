// Package senderrepo persists the single sender record.
package senderrepo

import (
	"time"

	"lockerbooking/internal/adapters/out/postgres/partydto"
	"lockerbooking/internal/core/domain/model/party"
)

// SenderID is the key of the only row the senders table ever holds.
const SenderID = "default"

type SenderDTO struct {
	ID                string `gorm:"type:varchar(16);primaryKey"`
	partydto.PartyDTO `gorm:"embedded"`
	UpdatedAt         time.Time `gorm:"not null"`
}

func (SenderDTO) TableName() string {
	return "senders"
}

func fromDomain(p party.Party, updatedAt time.Time) SenderDTO {
	return SenderDTO{
		ID:        SenderID,
		PartyDTO:  partydto.FromDomain(p),
		UpdatedAt: updatedAt,
	}
}

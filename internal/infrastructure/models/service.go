package models

import (
	"time"

	"github.com/google/uuid"
)

type Service struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description *string   `gorm:"type:text"`
	ImageURL    *string   `gorm:"type:varchar(512)"`
}

type ServiceRequest struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ServiceID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	UserID           uuid.UUID  `gorm:"type:uuid;not null;index"`
	SpecialistID     *uuid.UUID `gorm:"type:uuid;index"`
	ServiceDetails   string     `gorm:"type:text"`
	PhoneNumber      string     `gorm:"type:varchar(30)"`
	Status           string     `gorm:"type:varchar(50);not null"`
	AcceptanceStatus string     `gorm:"type:varchar(50);not null"`
	RequestedAt      time.Time
}

type Payment struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	SpecialistID uuid.UUID `gorm:"type:uuid;not null;index"`
	ClientID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount       float64   `gorm:"type:numeric(12,2);not null"`
	Status       string    `gorm:"type:varchar(50);not null"`
	CreatedAt    time.Time
}

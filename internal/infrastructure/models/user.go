package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email          string    `gorm:"type:varchar(255);not null;index"`
	FirstName      string    `gorm:"type:varchar(100);not null"`
	LastName       string    `gorm:"type:varchar(100);not null"`
	PasswordHash   string    `gorm:"type:varchar(255)"`
	Role           string    `gorm:"type:varchar(50);not null;default:'client'"`
	Status         bool      `gorm:"not null;default:true"`
	PhoneNumber    *string   `gorm:"type:varchar(30)"`
	DocumentNumber *string   `gorm:"type:varchar(30)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

type CVStatus struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(50);uniqueIndex;not null"`
}

func (CVStatus) TableName() string {
	return "cv_statuses"
}

type CV struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	StatusID   uuid.UUID `gorm:"type:uuid;not null;index"`
	FilePath   string    `gorm:"type:varchar(512);not null"`
	IAResult   string    `gorm:"type:text"`
	UploadedAt time.Time `gorm:"not null"`
}

func (CV) TableName() string {
	return "cvs"
}

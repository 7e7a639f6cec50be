package models

import "time"

// ScanRun is one completed scanner run: summary counts for cheap listing plus
// the full aggregate report as its JSON payload.
type ScanRun struct {
	ID             uint `gorm:"primaryKey"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	UserID         *uint  `gorm:"index"` // nullable: CLI imports may be unowned
	Source         string `gorm:"size:255"`
	DiskCount      int    `gorm:"not null"`
	WEngineCount   int    `gorm:"not null"`
	CharacterCount int    `gorm:"not null"`
	Payload        []byte `gorm:"type:jsonb"`
}

package repository

import (
	"time"

	"handkeeper/internal/db"
)

type User struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)"`
	Username     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

type Hand struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	OwnerID   string    `gorm:"type:varchar(36);not null;index:idx_hands_owner_timestamp,priority:1"`
	OwnerName string    `gorm:"type:varchar(255);not null"`
	Timestamp int64     `gorm:"column:timestamp_ms;not null;default:0;index:idx_hands_owner_timestamp,priority:2,sort:desc"`
	DateStr   string    `gorm:"type:text"`
	Game      db.JSON   `gorm:"type:json"`
	Hero      db.JSON   `gorm:"type:json"`
	Villains  db.JSON   `gorm:"type:json"`
	Board     db.JSON   `gorm:"type:json"`
	Logs      db.JSON   `gorm:"type:json"`
	CreatedAt time.Time `gorm:"not null"`
}

// Page bounds a listing. A zero Limit means the whole list.
type Page struct {
	Limit  int
	Offset int
}

package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/kwojtas/vanstock-backend/pkg/enums"
)

// User represents a field technician tied to a single vehicle.
type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Email        string         `gorm:"type:text;not null;uniqueIndex"`
	PasswordHash string         `gorm:"column:password_hash;not null"`
	Name         string         `gorm:"column:name;not null"`
	CarPlate     string         `gorm:"column:car_plate;not null"`
	Role         enums.UserRole `gorm:"column:role;not null;default:user"`
	IsActive     bool           `gorm:"column:is_active;not null;default:false"`
	LastLoginAt  *time.Time     `gorm:"column:last_login_at"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

package repository

import "time"

const (
	EmailIndex    = "idx_users_email"
	UsernameIndex = "idx_users_username"
)

type User struct {
	ID           string    `gorm:"primaryKey;autoIncrement:false"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex:idx_users_email;not null"`
	Username     string    `gorm:"type:varchar(255);uniqueIndex:idx_users_username;not null"`
	PasswordHash string    `gorm:"not null"`
	ConfirmCode  *string   `gorm:"size:6"` // null once confirmed
	Confirmed    bool      `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

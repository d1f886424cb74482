package models

import "time"

// Buyer is a purchasing contact. Telegram handle is unique.
type Buyer struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Name        string    `gorm:"index" json:"name"`
	Surname     string    `gorm:"index" json:"surname"`
	Email       string    `gorm:"index" json:"email"`
	Phone       string    `gorm:"index" json:"phone"`
	Telegram    string    `gorm:"unique;not null" json:"telegram"`
	IsWorking   bool      `gorm:"default:false" json:"is_working"`
}

type BuyerUpdate struct {
	DateOfBirth *time.Time `json:"date_of_birth"`
	Name        *string    `json:"name"`
	Surname     *string    `json:"surname"`
	Email       *string    `json:"email"`
	Phone       *string    `json:"phone"`
	Telegram    *string    `json:"telegram"`
	IsWorking   *bool      `json:"is_working"`
}

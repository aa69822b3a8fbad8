package models

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

type ServiceCategory string

const (
	CategoryUpholstery ServiceCategory = "upholstery"
	CategoryCarpet     ServiceCategory = "carpet"
	CategoryAuto       ServiceCategory = "auto"
	CategoryGeneral    ServiceCategory = "general"
)

var ErrInvalidCategory = errors.New("invalid service category")

// ParseServiceCategory maps a raw string to the closed category set.
// Unknown values are rejected at write time so they can never surface at read time.
func ParseServiceCategory(s string) (ServiceCategory, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(CategoryUpholstery):
		return CategoryUpholstery, nil
	case string(CategoryCarpet):
		return CategoryCarpet, nil
	case string(CategoryAuto):
		return CategoryAuto, nil
	case string(CategoryGeneral):
		return CategoryGeneral, nil
	default:
		return "", ErrInvalidCategory
	}
}

// Service is a purchasable cleaning service listing. Price is always quoted as
// a "starting from" amount in RON; the actual charge may be adjusted after
// on-site inspection.
type Service struct {
	ID            uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	NameEN        string          `gorm:"not null" json:"name_en"`
	NameRO        string          `json:"name_ro"`
	DescriptionEN string          `json:"description_en"`
	DescriptionRO string          `json:"description_ro"`
	Price         float64         `gorm:"not null" json:"price"`
	Category      ServiceCategory `gorm:"type:VARCHAR(20);not null" json:"category"`
	Image         string          `json:"image"`
	Promotion     int             `json:"promotion"` // percentage, 0-100
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`
}

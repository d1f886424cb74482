package models

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema for every table the service
// uses. Safe to run on every startup.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Country{},
		&ProductGroup{},
		&Buyer{},
		&Product{},
		&CountryProductGroupLink{},
		&CountryGroupBuyerLink{},
	)
}

package models

// ProductGroup is a named category of traded products. Code is unique
// across all groups.
type ProductGroup struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"index;not null" json:"name"`
	Code string `gorm:"unique;not null" json:"code"`
}

type ProductGroupUpdate struct {
	Name *string `json:"name"`
	Code *string `json:"code"`
}

package models

// CountryProductGroupLink pairs a country with a product group. The pair is
// the primary key, so the same association cannot be stored twice.
type CountryProductGroupLink struct {
	CountryID      uint `gorm:"primaryKey;autoIncrement:false" json:"country_id"`
	ProductGroupID uint `gorm:"primaryKey;autoIncrement:false" json:"product_group_id"`
}

// CountryGroupBuyerLink is the three-way association between a country, a
// product group and a buyer, keyed by the full triple.
type CountryGroupBuyerLink struct {
	CountryID      uint `gorm:"primaryKey;autoIncrement:false" json:"country_id"`
	ProductGroupID uint `gorm:"primaryKey;autoIncrement:false" json:"product_group_id"`
	BuyerID        uint `gorm:"primaryKey;autoIncrement:false" json:"buyer_id"`
}

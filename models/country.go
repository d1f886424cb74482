package models

// Country is a trade-partner country. NameRussian and CountryCode are the
// display keys used for lookups; ID is the join key.
type Country struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	NameEnglish string `gorm:"index;not null" json:"name_english"`
	NameRussian string `gorm:"index;not null" json:"name_russian"`
	CountryCode string `gorm:"index;not null" json:"country_code"`
}

// CountryUpdate carries a partial update; nil fields are left untouched.
type CountryUpdate struct {
	NameEnglish *string `json:"name_english"`
	NameRussian *string `json:"name_russian"`
	CountryCode *string `json:"country_code"`
}

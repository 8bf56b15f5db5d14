package models

type Category struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	NameHi        string  `gorm:"not null" json:"name_hi"`
	NameEn        string  `gorm:"not null" json:"name_en"`
	Icon          string  `gorm:"default:'🌾'" json:"icon"`
	CategoryImage *string `json:"category_image"`
}

package models

import "time"

type Banner struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	BannerType    string    `gorm:"type:VARCHAR(20);default:'image'" json:"banner_type"` // "image" or "video"
	BannerImage   *string   `json:"banner_image"`
	VideoURL      *string   `json:"video_url"`
	TitleHi       string    `json:"title_hi"`
	TitleEn       string    `json:"title_en"`
	DescriptionHi string    `json:"description_hi"`
	DescriptionEn string    `json:"description_en"`
	ShowBg        bool      `gorm:"default:false" json:"show_bg"`
	BgColor       string    `gorm:"type:VARCHAR(20);default:'#14532d'" json:"bg_color"`
	IsActive      bool      `gorm:"default:false" json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

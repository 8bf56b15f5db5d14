package models

import "time"

type Product struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	CategoryID          uint      `gorm:"index;not null" json:"category_id"`
	Category            Category  `gorm:"foreignKey:CategoryID" json:"-"`
	MedicineNameHi      string    `gorm:"not null" json:"medicine_name_hi"`
	MedicineNameEn      string    `gorm:"not null" json:"medicine_name_en"`
	CompanyName         *string   `json:"company_name"`
	DiseaseNameHi       string    `json:"disease_name_hi"`
	DiseaseNameEn       string    `json:"disease_name_en"`
	DosagePerBigha      string    `json:"dosage_per_bigha"`
	Price               *float64  `gorm:"type:DECIMAL(10,2)" json:"price"`
	ShowPrice           bool      `gorm:"default:false" json:"show_price"`
	ShowQuantity        bool      `gorm:"default:false" json:"show_quantity"`
	PackageQty          *float64  `json:"package_qty"`
	PackageUnit         string    `gorm:"type:VARCHAR(20);default:'ml'" json:"package_unit"`
	UsageHi             string    `json:"usage_hi"`
	UsageEn             string    `json:"usage_en"`
	ProductImage        *string   `json:"product_image"`
	VideoType           string    `gorm:"type:VARCHAR(20);default:'youtube'" json:"video_type"` // "youtube" or "upload"
	VideoURL            *string   `json:"video_url"`
	CertificationImages *string   `json:"certification_images"` // JSON-encoded array of filenames
	IsActive            bool      `gorm:"default:true" json:"is_active"`
	CreatedAt           time.Time `json:"created_at"`
}

package publicController

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Vishal221302/Agriculture-Shop-bakend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// publicProductRow is a product joined with its category names. The outer
// CertificationList field shadows the stored JSON string so the API returns
// a real array.
type publicProductRow struct {
	models.Product
	CategoryNameHi    string   `json:"category_name_hi"`
	CategoryNameEn    string   `json:"category_name_en"`
	CertificationList []string `json:"certification_images" gorm:"-"`
}

func (p *publicProductRow) decodeCertifications() {
	p.CertificationList = []string{}
	if p.CertificationImages == nil {
		return
	}
	var names []string
	if err := json.Unmarshal([]byte(*p.CertificationImages), &names); err != nil {
		return
	}
	p.CertificationList = names
}

// GetActiveBannerHandler returns the currently active banner, or null when
// none is active.
func GetActiveBannerHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var banner models.Banner
		err := db.Where("is_active = ?", true).First(&banner).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"success": true, "data": nil})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": banner})
	}
}

// GetCategoriesHandler lists all categories for the storefront.
func GetCategoriesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Order("id ASC").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": categories})
	}
}

// GetProductsHandler lists active products, optionally filtered by
// ?category_id=.
func GetProductsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{}).
			Select("products.*, c.name_hi AS category_name_hi, c.name_en AS category_name_en").
			Joins("JOIN categories c ON c.id = products.category_id").
			Where("products.is_active = ?", true)
		if categoryID := c.Query("category_id"); categoryID != "" {
			query = query.Where("products.category_id = ?", categoryID)
		}

		var rows []publicProductRow
		if err := query.Order("products.id ASC").Scan(&rows).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}
		for i := range rows {
			rows[i].decodeCertifications()
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": rows})
	}
}

// GetProductHandler returns one active product or 404.
func GetProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var row publicProductRow
		result := db.Model(&models.Product{}).
			Select("products.*, c.name_hi AS category_name_hi, c.name_en AS category_name_en").
			Joins("JOIN categories c ON c.id = products.category_id").
			Where("products.id = ? AND products.is_active = ?", c.Param("id"), true).
			Limit(1).
			Scan(&row)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": result.Error.Error()})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
			return
		}
		row.decodeCertifications()
		c.JSON(http.StatusOK, gin.H{"success": true, "data": row})
	}
}

package adminController

import (
	"net/http"

	"github.com/Vishal221302/Agriculture-Shop-bakend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetCategoriesHandler lists all categories, oldest first.
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

// CreateCategoryHandler stores a category; both language names are required.
func CreateCategoryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		nameHi := c.PostForm("name_hi")
		nameEn := c.PostForm("name_en")
		if nameHi == "" || nameEn == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Hindi and English names are required"})
			return
		}

		category := models.Category{
			NameHi: nameHi,
			NameEn: nameEn,
			Icon:   defaultStr(c.PostForm("icon"), "🌾"),
		}

		if fh := formFile(c, "category_image"); fh != nil {
			name, err := saveUpload(c, fh)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
				return
			}
			category.CategoryImage = &name
		}

		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Category created", "id": category.ID})
	}
}

// UpdateCategoryHandler replaces names and icon; a new image is optional.
func UpdateCategoryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		nameHi := c.PostForm("name_hi")
		nameEn := c.PostForm("name_en")
		if nameHi == "" || nameEn == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Hindi and English names are required"})
			return
		}

		updates := map[string]any{
			"name_hi": nameHi,
			"name_en": nameEn,
			"icon":    defaultStr(c.PostForm("icon"), "🌾"),
		}
		if fh := formFile(c, "category_image"); fh != nil {
			name, err := saveUpload(c, fh)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
				return
			}
			updates["category_image"] = name
		}

		if err := db.Model(&models.Category{}).
			Where("id = ?", c.Param("id")).
			Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category updated"})
	}
}

// DeleteCategoryHandler removes a category.
func DeleteCategoryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Where("id = ?", c.Param("id")).
			Delete(&models.Category{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category deleted"})
	}
}

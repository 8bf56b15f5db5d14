package adminController

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Vishal221302/Agriculture-Shop-bakend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type adminProductRow struct {
	models.Product
	CategoryNameHi string `json:"category_name_hi"`
	CategoryNameEn string `json:"category_name_en"`
}

// GetProductsHandler lists all products with category names, newest first.
func GetProductsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rows []adminProductRow
		if err := db.Model(&models.Product{}).
			Select("products.*, c.name_hi AS category_name_hi, c.name_en AS category_name_en").
			Joins("JOIN categories c ON c.id = products.category_id").
			Order("products.id DESC").
			Scan(&rows).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": rows})
	}
}

// CreateProductHandler stores a product from a multipart form: category,
// bilingual names, optional price/packaging fields, a product image, up to
// five certification images and either a youtube link or an uploaded video.
func CreateProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryIDStr := c.PostForm("category_id")
		nameHi := c.PostForm("medicine_name_hi")
		nameEn := c.PostForm("medicine_name_en")
		if categoryIDStr == "" || nameHi == "" || nameEn == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Required fields missing"})
			return
		}
		categoryID, err := strconv.ParseUint(categoryIDStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Required fields missing"})
			return
		}

		product := models.Product{
			CategoryID:     uint(categoryID),
			MedicineNameHi: nameHi,
			MedicineNameEn: nameEn,
			DiseaseNameHi:  c.PostForm("disease_name_hi"),
			DiseaseNameEn:  c.PostForm("disease_name_en"),
			DosagePerBigha: c.PostForm("dosage_per_bigha"),
			Price:          optionalFloat(c.PostForm("price")),
			ShowPrice:      formFlag(c.PostForm("show_price")),
			ShowQuantity:   formFlag(c.PostForm("show_quantity")),
			PackageQty:     optionalFloat(c.PostForm("package_qty")),
			PackageUnit:    defaultStr(c.PostForm("package_unit"), "ml"),
			UsageHi:        c.PostForm("usage_hi"),
			UsageEn:        c.PostForm("usage_en"),
			VideoType:      defaultStr(c.PostForm("video_type"), "youtube"),
			IsActive:       true,
		}
		if company := c.PostForm("company_name"); company != "" {
			product.CompanyName = &company
		}

		if fh := formFile(c, "product_image"); fh != nil {
			name, err := saveUpload(c, fh)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
				return
			}
			product.ProductImage = &name
		}

		if product.VideoType == "upload" {
			if fh := formFile(c, "video_file"); fh != nil {
				name, err := saveUpload(c, fh)
				if err != nil {
					c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
					return
				}
				product.VideoURL = &name
			}
		} else if url := c.PostForm("video_url"); url != "" {
			product.VideoURL = &url
		}

		certs, err := saveCertificationImages(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		if len(certs) > 0 {
			encoded, _ := json.Marshal(certs)
			s := string(encoded)
			product.CertificationImages = &s
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Product created", "id": product.ID})
	}
}

// UpdateProductHandler applies a field-wise partial update; only the posted
// form fields change.
func UpdateProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		updates := map[string]any{}

		if v := c.PostForm("category_id"); v != "" {
			if id, err := strconv.ParseUint(v, 10, 64); err == nil {
				updates["category_id"] = uint(id)
			}
		}
		if v := c.PostForm("medicine_name_hi"); v != "" {
			updates["medicine_name_hi"] = v
		}
		if v := c.PostForm("medicine_name_en"); v != "" {
			updates["medicine_name_en"] = v
		}
		if v, ok := c.GetPostForm("company_name"); ok {
			if v == "" {
				updates["company_name"] = nil
			} else {
				updates["company_name"] = v
			}
		}
		for form, column := range map[string]string{
			"disease_name_hi":  "disease_name_hi",
			"disease_name_en":  "disease_name_en",
			"dosage_per_bigha": "dosage_per_bigha",
			"usage_hi":         "usage_hi",
			"usage_en":         "usage_en",
		} {
			if v, ok := c.GetPostForm(form); ok {
				updates[column] = v
			}
		}
		if v, ok := c.GetPostForm("price"); ok {
			updates["price"] = optionalFloat(v)
		}
		if v, ok := c.GetPostForm("show_price"); ok {
			updates["show_price"] = formFlag(v)
		}
		if v, ok := c.GetPostForm("show_quantity"); ok {
			updates["show_quantity"] = formFlag(v)
		}
		if v, ok := c.GetPostForm("package_qty"); ok {
			updates["package_qty"] = optionalFloat(v)
		}
		if v, ok := c.GetPostForm("package_unit"); ok {
			updates["package_unit"] = defaultStr(v, "ml")
		}
		if v, ok := c.GetPostForm("is_active"); ok {
			updates["is_active"] = formFlag(v)
		}

		videoType := c.PostForm("video_type")
		if videoType != "" {
			updates["video_type"] = videoType
		}
		if videoType == "upload" {
			if fh := formFile(c, "video_file"); fh != nil {
				name, err := saveUpload(c, fh)
				if err != nil {
					c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
					return
				}
				updates["video_url"] = name
			}
		} else if v, ok := c.GetPostForm("video_url"); ok {
			updates["video_url"] = v
		}

		if fh := formFile(c, "product_image"); fh != nil {
			name, err := saveUpload(c, fh)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
				return
			}
			updates["product_image"] = name
		}
		certs, err := saveCertificationImages(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		if len(certs) > 0 {
			encoded, _ := json.Marshal(certs)
			updates["certification_images"] = string(encoded)
		}

		if len(updates) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Nothing to update"})
			return
		}

		if err := db.Model(&models.Product{}).
			Where("id = ?", c.Param("id")).
			Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product updated"})
	}
}

// DeleteProductHandler removes a product.
func DeleteProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Where("id = ?", c.Param("id")).
			Delete(&models.Product{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted"})
	}
}

// saveCertificationImages stores up to five certification images and returns
// their filenames.
func saveCertificationImages(c *gin.Context) ([]string, error) {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil, nil
	}
	files := form.File["certification_images"]
	if len(files) > 5 {
		files = files[:5]
	}
	var names []string
	for _, fh := range files {
		name, err := saveUpload(c, fh)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

// optionalFloat parses a form number, returning nil for blank or
// unparseable input.
func optionalFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

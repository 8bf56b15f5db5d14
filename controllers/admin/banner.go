package adminController

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/Vishal221302/Agriculture-Shop-bakend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetBannersHandler lists all banners, newest first.
func GetBannersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var banners []models.Banner
		if err := db.Order("id DESC").Find(&banners).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": banners})
	}
}

// CreateBannerHandler stores a new banner. An uploaded video file wins over
// a video_url form value. New banners start inactive.
func CreateBannerHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		banner := models.Banner{
			BannerType:    defaultStr(c.PostForm("banner_type"), "image"),
			TitleHi:       c.PostForm("title_hi"),
			TitleEn:       c.PostForm("title_en"),
			DescriptionHi: c.PostForm("description_hi"),
			DescriptionEn: c.PostForm("description_en"),
			ShowBg:        formFlag(c.PostForm("show_bg")),
			BgColor:       defaultStr(c.PostForm("bg_color"), "#14532d"),
			IsActive:      false,
		}

		if fh := formFile(c, "banner_image"); fh != nil {
			name, err := saveUpload(c, fh)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
				return
			}
			banner.BannerImage = &name
		}

		if fh := formFile(c, "banner_video"); fh != nil {
			name, err := saveUpload(c, fh)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
				return
			}
			banner.VideoURL = &name
		} else if url := c.PostForm("video_url"); url != "" {
			banner.VideoURL = &url
		}

		if err := db.Create(&banner).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Banner created"})
	}
}

// UpdateBannerHandler applies a partial update from the posted form fields.
func UpdateBannerHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		updates := map[string]any{}

		if v := c.PostForm("banner_type"); v != "" {
			updates["banner_type"] = v
		}
		for form, column := range map[string]string{
			"title_hi":       "title_hi",
			"title_en":       "title_en",
			"description_hi": "description_hi",
			"description_en": "description_en",
		} {
			if v, ok := c.GetPostForm(form); ok {
				updates[column] = v
			}
		}
		if v, ok := c.GetPostForm("show_bg"); ok {
			updates["show_bg"] = formFlag(v)
		}
		if v := c.PostForm("bg_color"); v != "" {
			updates["bg_color"] = v
		}

		if fh := formFile(c, "banner_image"); fh != nil {
			name, err := saveUpload(c, fh)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
				return
			}
			updates["banner_image"] = name
		}
		if fh := formFile(c, "banner_video"); fh != nil {
			name, err := saveUpload(c, fh)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
				return
			}
			updates["video_url"] = name
		} else if v, ok := c.GetPostForm("video_url"); ok {
			updates["video_url"] = v
		}

		if len(updates) > 0 {
			if err := db.Model(&models.Banner{}).
				Where("id = ?", c.Param("id")).
				Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Banner updated"})
	}
}

type activateBannerRequest struct {
	IsActive any `json:"is_active"`
}

// ActivateBannerHandler toggles a banner. At most one banner is active:
// activating one deactivates all others first.
func ActivateBannerHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req activateBannerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}

		var err error
		if jsonFlag(req.IsActive) {
			err = db.Transaction(func(tx *gorm.DB) error {
				if err := tx.Model(&models.Banner{}).
					Where("is_active = ?", true).
					Update("is_active", false).Error; err != nil {
					return err
				}
				return tx.Model(&models.Banner{}).
					Where("id = ?", c.Param("id")).
					Update("is_active", true).Error
			})
		} else {
			err = db.Model(&models.Banner{}).
				Where("id = ?", c.Param("id")).
				Update("is_active", false).Error
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Banner activation updated"})
	}
}

// DeleteBannerHandler removes the DB record and any locally stored image.
func DeleteBannerHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var banner models.Banner
		if err := db.First(&banner, c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Banner not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}

		if banner.BannerImage != nil && *banner.BannerImage != "" {
			_ = os.Remove(filepath.Join(UploadDir(), *banner.BannerImage))
		}

		if err := db.Delete(&banner).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Banner deleted"})
	}
}

// defaultStr returns s or fallback when s is empty.
func defaultStr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// formFlag interprets the loose boolean encodings the admin frontend sends
// in form fields.
func formFlag(v string) bool {
	return v == "true" || v == "1"
}

// jsonFlag interprets a JSON body flag that may arrive as bool, number or
// string.
func jsonFlag(v any) bool {
	switch f := v.(type) {
	case bool:
		return f
	case float64:
		return f == 1
	case string:
		return formFlag(f)
	default:
		return false
	}
}

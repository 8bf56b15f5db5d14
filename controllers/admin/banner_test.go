package adminController

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/Vishal221302/Agriculture-Shop-bakend/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedBanners(t *testing.T, db *gorm.DB, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, db.Create(&models.Banner{
			BannerType: "image",
			TitleEn:    "Harvest Sale",
			TitleHi:    "फसल बिक्री",
		}).Error)
	}
}

func TestCreateBanner_Defaults(t *testing.T) {
	db := newTestDB(t)

	form := url.Values{}
	form.Set("title_en", "Monsoon Offers")
	form.Set("video_url", "https://youtu.be/abc123")
	rec := doForm(t, CreateBannerHandler(db), http.MethodPost, "/api/admin/banners", form)
	require.Equal(t, http.StatusOK, rec.Code)

	var banner models.Banner
	require.NoError(t, db.First(&banner).Error)
	assert.Equal(t, "image", banner.BannerType)
	assert.Equal(t, "#14532d", banner.BgColor)
	assert.False(t, banner.IsActive, "new banners start inactive")
	require.NotNil(t, banner.VideoURL)
	assert.Equal(t, "https://youtu.be/abc123", *banner.VideoURL)
}

func TestActivateBanner_Exclusive(t *testing.T) {
	db := newTestDB(t)
	seedBanners(t, db, 3)

	activate := func(id string) {
		rec := doJSON(t, ActivateBannerHandler(db), http.MethodPut,
			"/api/admin/banners/"+id+"/activate",
			map[string]any{"is_active": 1},
			gin.Param{Key: "id", Value: id})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	activate("1")
	activate("2")

	var active []models.Banner
	require.NoError(t, db.Where("is_active = ?", true).Find(&active).Error)
	require.Len(t, active, 1, "activating one banner must deactivate the rest")
	assert.Equal(t, uint(2), active[0].ID)
}

func TestActivateBanner_Deactivate(t *testing.T) {
	db := newTestDB(t)
	seedBanners(t, db, 2)
	require.NoError(t, db.Model(&models.Banner{}).Where("id = ?", 1).Update("is_active", true).Error)

	rec := doJSON(t, ActivateBannerHandler(db), http.MethodPut,
		"/api/admin/banners/1/activate",
		map[string]any{"is_active": 0},
		gin.Param{Key: "id", Value: "1"})
	require.Equal(t, http.StatusOK, rec.Code)

	var count int64
	require.NoError(t, db.Model(&models.Banner{}).Where("is_active = ?", true).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpdateBanner_PartialFields(t *testing.T) {
	db := newTestDB(t)
	seedBanners(t, db, 1)

	form := url.Values{}
	form.Set("title_en", "Updated Title")
	form.Set("show_bg", "1")
	rec := doForm(t, UpdateBannerHandler(db), http.MethodPut, "/api/admin/banners/1",
		form, gin.Param{Key: "id", Value: "1"})
	require.Equal(t, http.StatusOK, rec.Code)

	var banner models.Banner
	require.NoError(t, db.First(&banner, 1).Error)
	assert.Equal(t, "Updated Title", banner.TitleEn)
	assert.Equal(t, "फसल बिक्री", banner.TitleHi, "untouched fields keep their value")
	assert.True(t, banner.ShowBg)
}

func TestDeleteBanner(t *testing.T) {
	db := newTestDB(t)
	seedBanners(t, db, 1)

	rec := doJSON(t, DeleteBannerHandler(db), http.MethodDelete, "/api/admin/banners/1",
		nil, gin.Param{Key: "id", Value: "1"})
	require.Equal(t, http.StatusOK, rec.Code)

	var count int64
	require.NoError(t, db.Model(&models.Banner{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteBanner_NotFound(t *testing.T) {
	db := newTestDB(t)

	rec := doJSON(t, DeleteBannerHandler(db), http.MethodDelete, "/api/admin/banners/99",
		nil, gin.Param{Key: "id", Value: "99"})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

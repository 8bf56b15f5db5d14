package adminController

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/Vishal221302/Agriculture-Shop-bakend/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategory(t *testing.T) {
	db := newTestDB(t)

	form := url.Values{}
	form.Set("name_hi", "बीज")
	form.Set("name_en", "Seeds")
	rec := doForm(t, CreateCategoryHandler(db), http.MethodPost, "/api/admin/categories", form)
	require.Equal(t, http.StatusCreated, rec.Code)

	var category models.Category
	require.NoError(t, db.First(&category).Error)
	assert.Equal(t, "Seeds", category.NameEn)
	assert.Equal(t, "🌾", category.Icon)
}

func TestCreateCategory_RequiresBothNames(t *testing.T) {
	db := newTestDB(t)

	form := url.Values{}
	form.Set("name_en", "Seeds")
	rec := doForm(t, CreateCategoryHandler(db), http.MethodPost, "/api/admin/categories", form)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Hindi and English names are required", decodeBody(t, rec)["message"])
}

func TestUpdateCategory(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&models.Category{NameHi: "बीज", NameEn: "Seeds"}).Error)

	form := url.Values{}
	form.Set("name_hi", "खाद")
	form.Set("name_en", "Fertilizer")
	form.Set("icon", "🧪")
	rec := doForm(t, UpdateCategoryHandler(db), http.MethodPut, "/api/admin/categories/1",
		form, gin.Param{Key: "id", Value: "1"})
	require.Equal(t, http.StatusOK, rec.Code)

	var category models.Category
	require.NoError(t, db.First(&category, 1).Error)
	assert.Equal(t, "Fertilizer", category.NameEn)
	assert.Equal(t, "🧪", category.Icon)
}

func TestDeleteCategory(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&models.Category{NameHi: "बीज", NameEn: "Seeds"}).Error)

	rec := doForm(t, DeleteCategoryHandler(db), http.MethodDelete, "/api/admin/categories/1",
		url.Values{}, gin.Param{Key: "id", Value: "1"})
	require.Equal(t, http.StatusOK, rec.Code)

	var count int64
	require.NoError(t, db.Model(&models.Category{}).Count(&count).Error)
	assert.Zero(t, count)
}

package adminController

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var allowedUploadExts = map[string]bool{
	".jpeg": true, ".jpg": true, ".png": true, ".gif": true, ".webp": true,
	".pdf": true, ".mp4": true, ".webm": true, ".mov": true,
}

var errBadUploadType = errors.New("Only images, PDFs and video files are allowed")

// UploadDir returns the directory uploaded files are stored in.
// Served statically under /uploads.
func UploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "./uploads"
}

// saveUpload stores one uploaded file under a collision-free name and
// returns the stored filename.
func saveUpload(c *gin.Context, fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedUploadExts[ext] {
		return "", errBadUploadType
	}

	if err := os.MkdirAll(UploadDir(), os.ModePerm); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)
	if err := c.SaveUploadedFile(fh, filepath.Join(UploadDir(), name)); err != nil {
		return "", err
	}
	return name, nil
}

// formFile fetches a named multipart file if present; a missing file is not
// an error for any of the admin endpoints.
func formFile(c *gin.Context, field string) *multipart.FileHeader {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil
	}
	return fh
}

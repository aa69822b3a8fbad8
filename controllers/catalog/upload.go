package catalogControllers

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadsDir is the root of the statically served uploads tree.
func UploadsDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "/var/www/sofasteam/uploads"
}

// SaveImage stores an uploaded file under uploads/<subdir> with a unique name
// and returns the public URL it will be served from.
func SaveImage(c *gin.Context, file *multipart.FileHeader, subdir string) (string, error) {
	saveDir := filepath.Join(UploadsDir(), subdir)
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload folder: %w", err)
	}

	ext := filepath.Ext(file.Filename)
	base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
	base = strings.ReplaceAll(base, " ", "_")
	filename := fmt.Sprintf("%s_%s%s", uuid.NewString(), base, ext)

	if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}

	return fmt.Sprintf("/uploads/%s/%s", subdir, filename), nil
}

package utils

import (
	"fmt"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// UploadDir is where advertisement images live, referenced by filename.
const UploadDir = "uploads"

// SaveUploadedImage writes a multipart file into the uploads directory
// under a fresh uuid filename and returns that filename.
func SaveUploadedImage(c *fiber.Ctx, file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(UploadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	filename := uuid.New().String() + filepath.Ext(file.Filename)
	if err := c.SaveFile(file, filepath.Join(UploadDir, filename)); err != nil {
		return "", err
	}
	return filename, nil
}

// RemoveUploadedImage deletes a stored image file. Failures are logged
// and swallowed so a missing file never blocks the database operation.
func RemoveUploadedImage(filename string) {
	if filename == "" {
		return
	}
	if err := os.Remove(filepath.Join(UploadDir, filename)); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to remove uploaded image %s: %v", filename, err)
	}
}

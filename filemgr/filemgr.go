package filemgr

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

type Category string

const (
	CatDocument Category = "documents"
	CatBrochure Category = "brochures"
)

const MaxUploadSize = 5 << 20 // 5MB

var (
	allowedExtensions = []string{".pdf", ".jpg", ".jpeg", ".png"}

	ErrInvalidExtension = errors.New("invalid file extension")
	ErrFileTooLarge     = errors.New("file size exceeds limit")
)

var UploadRoot = "uploads"

func isExtensionAllowed(ext string) bool {
	for _, e := range allowedExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

func isImage(ext string) bool {
	return ext == ".jpg" || ext == ".jpeg" || ext == ".png"
}

// SaveUpload stores an uploaded file under uploads/<category>/ with a
// randomized name, preserving the original extension. Returns the stored
// path relative to the process working directory.
func SaveUpload(file multipart.File, header *multipart.FileHeader, cat Category) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !isExtensionAllowed(ext) {
		return "", fmt.Errorf("%w: %s", ErrInvalidExtension, ext)
	}
	if header.Size > MaxUploadSize {
		return "", ErrFileTooLarge
	}

	destDir := filepath.Join(UploadRoot, string(cat))
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	name := uuid.NewString() + ext
	destPath := filepath.Join(destDir, name)

	out, err := os.Create(destPath)
	if err != nil {
		return "", err
	}
	defer out.Close()

	// header.Size comes from the client; count what was actually copied.
	written, err := io.Copy(out, io.LimitReader(file, MaxUploadSize+1))
	if err != nil {
		os.Remove(destPath)
		return "", err
	}
	if written > MaxUploadSize {
		os.Remove(destPath)
		return "", ErrFileTooLarge
	}
	return destPath, nil
}

// SaveThumbnail writes a 320px-wide thumbnail next to an image upload.
// Non-image paths are skipped without error.
func SaveThumbnail(srcPath string) (string, error) {
	ext := strings.ToLower(filepath.Ext(srcPath))
	if !isImage(ext) {
		return "", nil
	}

	img, err := imaging.Open(srcPath)
	if err != nil {
		return "", err
	}
	thumb := imaging.Resize(img, 320, 0, imaging.Lanczos)

	thumbPath := strings.TrimSuffix(srcPath, ext) + "_thumb" + ext
	if err := imaging.Save(thumb, thumbPath); err != nil {
		return "", err
	}
	return thumbPath, nil
}

// Remove deletes a stored upload and its thumbnail if present.
func Remove(path, thumbPath string) {
	if path != "" {
		os.Remove(path)
	}
	if thumbPath != "" {
		os.Remove(thumbPath)
	}
}

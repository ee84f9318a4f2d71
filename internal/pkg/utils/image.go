package utils

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// AllowedScanFormats are the upload extensions the analysis workflow accepts.
var AllowedScanFormats = []string{".jpg", ".jpeg", ".png", ".tif", ".dcm", ".dicom"}

func ValidateImageFormat(filename string, allowedFormats []string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return errors.New("filename has no extension")
	}
	for _, format := range allowedFormats {
		if ext == format {
			return nil
		}
	}
	return fmt.Errorf("invalid image format %s. Allowed formats are: %s", ext, strings.Join(allowedFormats, ", "))
}

func ValidateImageSize(data []byte, maxSizeInMB int64) error {
	if int64(len(data)) > maxSizeInMB*1024*1024 {
		return fmt.Errorf("image exceeds maximum allowed size of %dMB", maxSizeInMB)
	}
	return nil
}

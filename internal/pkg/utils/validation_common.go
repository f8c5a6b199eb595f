package utils

import (
	"encoding/base64"
	"errors"
	"mime"
	"strconv"
	"strings"
)

// ValidateUrlParamID parses a positive numeric path parameter.
func ValidateUrlParamID(param string) (int64, error) {
	if param == "" {
		return 0, errors.New("parameter is missing from url path")
	}

	id, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, errors.New("parameter must be a positive id")
	}

	return id, nil
}

// DecodeBase64Image splits a data URI, decodes the payload and returns the
// bytes with the file extension inferred from the declared content type.
func DecodeBase64Image(encodedImage string) ([]byte, string, error) {
	parts := strings.SplitN(encodedImage, ",", 2)
	if len(parts) != 2 {
		return nil, "", errors.New("invalid base64 image")
	}

	data, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, "", err
	}

	semicolon := strings.Index(parts[0], ";")
	if !strings.HasPrefix(parts[0], "data:") || semicolon < 5 {
		return nil, "", errors.New("invalid base64 image header")
	}
	contentType := parts[0][5:semicolon]
	ext, err := mime.ExtensionsByType(contentType)
	if err != nil || len(ext) == 0 {
		return nil, "", errors.New("invalid image type")
	}

	return data, ext[0], nil
}

// ValidateImageFormat checks the extension against the allowed set.
func ValidateImageFormat(ext string, allowedFormats []string) error {
	for _, format := range allowedFormats {
		if ext == format {
			return nil
		}
	}
	return errors.New("invalid image format, allowed formats are: " + strings.Join(allowedFormats, ", "))
}

// ValidateImageSize rejects payloads over the configured megabyte limit.
func ValidateImageSize(data []byte, maxSizeInMB int64) error {
	if int64(len(data)) > maxSizeInMB*1024*1024 {
		return errors.New("image exceeds maximum allowed size of " + strconv.FormatInt(maxSizeInMB, 10) + "MB")
	}
	return nil
}

package usecases

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"rewear.backend/internal/domain/entities"
	domainerrors "rewear.backend/internal/domain/errors"
)

const (
	categoryIconDir  = "categories"
	profilePhotoDir  = "profiles"
	defaultMaxUpload = 2048 * 1024
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
	"image/bmp":  true,
}

// inspectImage checks size and sniffed content type of an upload. Only raster
// formats are accepted; the client's filename plays no part. The bytes
// consumed while sniffing are stitched back onto upload.Content.
func inspectImage(field string, upload *entities.Upload, maxBytes int64) error {
	if maxBytes <= 0 {
		maxBytes = defaultMaxUpload
	}
	if upload.Size > maxBytes {
		return domainerrors.BadRequest(fmt.Sprintf("The %s may not be greater than %d kilobytes.", field, maxBytes/1024))
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(upload.Content, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return domainerrors.InternalError(err)
	}
	head = head[:n]
	if n == 0 {
		return domainerrors.BadRequest(fmt.Sprintf("The %s must be an image.", field))
	}

	contentType := http.DetectContentType(head)
	if !allowedImageTypes[contentType] {
		return domainerrors.BadRequest(fmt.Sprintf("The %s must be an image.", field))
	}

	upload.ContentType = contentType
	upload.Content = io.MultiReader(bytes.NewReader(head), upload.Content)
	return nil
}

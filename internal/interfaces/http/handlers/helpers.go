package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"rewear.backend/internal/domain/entities"
	domainerrors "rewear.backend/internal/domain/errors"
	"rewear.backend/internal/interfaces/http/middleware"
	"rewear.backend/pkg/utils"
)

// pathID parses :id. A malformed id cannot name an existing row, so it is a 404.
func pathID(c *gin.Context, resource string) (uuid.UUID, error) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		return uuid.Nil, domainerrors.NotFound(resource + " not found")
	}
	return id, nil
}

func currentUserID(c *gin.Context) (uuid.UUID, error) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.Unauthorized("unauthenticated")
	}
	return id, nil
}

// formUpload opens an optional multipart file. The returned closer is never nil.
func formUpload(c *gin.Context, field string) (*entities.Upload, func(), error) {
	noop := func() {}
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, noop, nil
		}
		return nil, noop, domainerrors.BadRequest("The " + field + " failed to upload.")
	}
	file, err := header.Open()
	if err != nil {
		return nil, noop, domainerrors.InternalError(err)
	}
	upload := &entities.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     file,
	}
	return upload, func() { _ = file.Close() }, nil
}

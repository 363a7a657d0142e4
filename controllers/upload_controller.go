package controllers

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	"tours-backend/services"
	"tours-backend/utils"
)

// Content types served for derivative files, keyed by extension. Anything
// else is a generic binary.
var assetContentTypes = map[string]string{
	".webp": "image/webp",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
}

type UploadController struct {
	Uploads *services.UploadService
}

func NewUploadController(uploads *services.UploadService) *UploadController {
	return &UploadController{Uploads: uploads}
}

// Upload accepts one multipart file and returns the two derivative paths.
// The original filename and content type are diagnostic only.
func (uc *UploadController) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "file is required")
		return
	}

	f, err := header.Open()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to read upload")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to read upload")
		return
	}

	result, err := uc.Uploads.Ingest(data)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			utils.JSONError(c, http.StatusBadRequest, "file is not a supported image")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to process upload")
		return
	}
	c.JSON(http.StatusCreated, result)
}

type deleteUploadPayload struct {
	Path string `json:"path"`
}

func (uc *UploadController) Delete(c *gin.Context) {
	var payload deleteUploadPayload
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Path == "" {
		utils.JSONError(c, http.StatusBadRequest, "path is required")
		return
	}
	uc.Uploads.Remove(payload.Path)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"removed": payload.Path})
}

// Serve streams a stored derivative. Traversal segments are rejected before
// any filesystem access; content type comes from the extension, never from
// anything the uploader supplied.
func (uc *UploadController) Serve(c *gin.Context) {
	rel := strings.TrimPrefix(c.Param("path"), "/")
	if rel == "" {
		c.String(http.StatusNotFound, "Not found")
		return
	}
	if strings.Contains(rel, "..") {
		c.String(http.StatusForbidden, "Forbidden")
		return
	}

	abs := uc.Uploads.Resolve(rel)
	info, err := os.Stat(abs)
	if err != nil || info.IsDir() {
		c.String(http.StatusNotFound, "Not found")
		return
	}

	contentType := assetContentTypes[strings.ToLower(path.Ext(rel))]
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	c.Header("Cache-Control", "public, max-age=31536000, immutable")
	c.File(abs)
}

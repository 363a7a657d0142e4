package controllers

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tours-backend/services"
)

func newUploadRouter(t *testing.T) (*gin.Engine, *services.UploadService) {
	t.Helper()
	uploads, err := services.NewUploadService(t.TempDir())
	require.NoError(t, err)

	uc := NewUploadController(uploads)
	r := gin.New()
	r.GET("/uploads/*path", uc.Serve)
	r.POST("/upload", uc.Upload)
	r.DELETE("/upload", uc.Delete)
	return r, uploads
}

func multipartImage(t *testing.T) (*bytes.Buffer, string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 500, 400))
	for x := 0; x < 500; x++ {
		for y := 0; y < 400; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: 100, B: 50, A: 255})
		}
	}
	var encoded bytes.Buffer
	require.NoError(t, png.Encode(&encoded, img))

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", "holiday.png")
	require.NoError(t, err)
	_, err = part.Write(encoded.Bytes())
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestUploadReturnsDerivativePaths(t *testing.T) {
	r, uploads := newUploadRouter(t)

	body, contentType := multipartImage(t)
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var result services.UploadResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Regexp(t, `^images/[0-9a-f]+\.jpg$`, result.Path)
	assert.Regexp(t, `^thumbs/[0-9a-f]+\.jpg$`, result.ThumbPath)

	_, err := os.Stat(uploads.Resolve(result.Path))
	assert.NoError(t, err)
}

func TestUploadRejectsNonImage(t *testing.T) {
	r, _ := newUploadRouter(t)

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", "notes.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("plain text, not pixels"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadRequiresFile(t *testing.T) {
	r, _ := newUploadRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/upload", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServeRejectsTraversalBeforeTouchingDisk(t *testing.T) {
	r, _ := newUploadRouter(t)

	for _, target := range []string{
		"/uploads/../secret.txt",
		"/uploads/images/../../secret.txt",
		"/uploads/..",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code, "target %s", target)
	}
}

func TestServeMissingFileIs404(t *testing.T) {
	r, _ := newUploadRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/uploads/images/nope.jpg", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServeSetsTypeFromExtensionAndCachesForever(t *testing.T) {
	r, uploads := newUploadRouter(t)

	path := filepath.Join(uploads.Root, "images", "banner.webp")
	require.NoError(t, os.WriteFile(path, []byte("RIFF....WEBP"), 0o644))

	req := httptest.NewRequest(http.MethodGet, "/uploads/images/banner.webp", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/webp", rec.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=31536000, immutable", rec.Header().Get("Cache-Control"))
}

func TestDeleteUploadRemovesBothDerivatives(t *testing.T) {
	r, uploads := newUploadRouter(t)

	body, contentType := multipartImage(t)
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var result services.UploadResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))

	payload, err := json.Marshal(map[string]string{"path": result.Path})
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodDelete, "/upload", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	_, err = os.Stat(uploads.Resolve(result.Path))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(uploads.Resolve(result.ThumbPath))
	assert.True(t, os.IsNotExist(err))
}

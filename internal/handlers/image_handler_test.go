package handlers_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/amalynlocs/salon-api/internal/kv"
	"github.com/amalynlocs/salon-api/internal/models"
)

func (e *testEnv) upload(t *testing.T, token, filename, fileType string, data []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("type", fileType))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/admin/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

type imageResponse struct {
	Success bool         `json:"success"`
	Image   models.Image `json:"image"`
}

func TestUploadStoresBlobAndMetadata(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	w := env.upload(t, token, "loc style.png", "product", pngBytes(t))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp imageResponse
	decodeBody(t, w, &resp)
	require.True(t, resp.Success)
	require.Equal(t, "product", resp.Image.Type)
	require.Equal(t, env.cfg.ProductsBucket, resp.Image.Bucket)
	require.True(t, strings.HasPrefix(resp.Image.FilePath, "product/"))
	require.Contains(t, resp.Image.FileName, "loc-style.png")
	require.NotEmpty(t, resp.Image.URL)
	require.True(t, env.blobs.has(resp.Image.Bucket, resp.Image.FilePath))

	// decodable image gets a thumbnail and recorded dimensions
	require.NotEmpty(t, resp.Image.ThumbPath)
	require.True(t, env.blobs.has(resp.Image.Bucket, resp.Image.ThumbPath))
	require.Equal(t, 8, resp.Image.Width)
	require.Equal(t, 8, resp.Image.Height)

	var list struct {
		Images []models.Image `json:"images"`
	}
	w = env.do(t, http.MethodGet, "/admin/images?type=product", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &list)
	require.Len(t, list.Images, 1)

	w = env.do(t, http.MethodGet, "/admin/images?type=gallery", token, nil)
	decodeBody(t, w, &list)
	require.Empty(t, list.Images)
}

func TestUploadNonImageSkipsThumbnail(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	w := env.upload(t, token, "pricelist.txt", "general", []byte("starter locs - 25000"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp imageResponse
	decodeBody(t, w, &resp)
	require.Empty(t, resp.Image.ThumbPath)
	require.Zero(t, resp.Image.Width)
	require.True(t, env.blobs.has(env.cfg.ImagesBucket, resp.Image.FilePath))
}

func TestUploadWithoutFileIs400(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("type", "gallery"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/admin/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteImageRemovesBlob(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	w := env.upload(t, token, "braid.png", "gallery", pngBytes(t))
	require.Equal(t, http.StatusOK, w.Code)
	var resp imageResponse
	decodeBody(t, w, &resp)

	w = env.do(t, http.MethodDelete, adminPath("/images/%s", resp.Image.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.False(t, env.blobs.has(resp.Image.Bucket, resp.Image.FilePath))
	require.False(t, env.blobs.has(resp.Image.Bucket, resp.Image.ThumbPath))

	// record is gone too
	w = env.do(t, http.MethodDelete, adminPath("/images/%s", resp.Image.ID), token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

// failingStore simulates a key-value outage for one key prefix.
type failingStore struct {
	kv.Store
	failPrefix string
}

func (f *failingStore) Set(ctx context.Context, key string, value any) error {
	if strings.HasPrefix(key, f.failPrefix) {
		return errors.New("kv unavailable")
	}
	return f.Store.Set(ctx, key, value)
}

func TestUploadMetadataFailureCleansUpBlobs(t *testing.T) {
	store := &failingStore{Store: kv.NewMemoryStore(), failPrefix: models.ImagePrefix}
	env := newTestEnvWithStore(t, store)
	token := env.login(t)

	w := env.upload(t, token, "orphan.png", "gallery", pngBytes(t))
	require.Equal(t, http.StatusInternalServerError, w.Code)

	// compensating deletes removed both the original and the thumbnail
	require.Zero(t, env.blobs.count())
}

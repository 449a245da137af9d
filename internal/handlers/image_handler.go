package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amalynlocs/salon-api/internal/httperr"
	"github.com/amalynlocs/salon-api/internal/httpresp"
	"github.com/amalynlocs/salon-api/internal/kv"
	"github.com/amalynlocs/salon-api/internal/middleware"
	"github.com/amalynlocs/salon-api/internal/models"
	ucMedia "github.com/amalynlocs/salon-api/internal/usecase/media"
)

// Uploads above this size are rejected before touching storage.
const maxUploadBytes = 20 << 20

type ImageHandler struct {
	store    kv.Store
	uploadUC *ucMedia.Upload
	deleteUC *ucMedia.Delete
}

func NewImageHandler(
	store kv.Store,
	uploadUC *ucMedia.Upload,
	deleteUC *ucMedia.Delete,
) *ImageHandler {
	return &ImageHandler{
		store:    store,
		uploadUC: uploadUC,
		deleteUC: deleteUC,
	}
}

// Upload takes a multipart form with `file` and a `type` tag routing the
// blob to its bucket (product | gallery | general).
func (h *ImageHandler) Upload(c *gin.Context) {
	adminEmail := c.MustGet(middleware.ContextAdminEmail).(string)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "no_file_provided", "No file provided.")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		httperr.BadRequest(c, "file_too_large", "File exceeds the upload size limit.")
		return
	}

	imageType := c.PostForm("type")
	if imageType == "" {
		imageType = "general"
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_upload_file", "Failed to read uploaded file.")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_file", "Failed to read uploaded file.")
		return
	}

	img, err := h.uploadUC.Execute(c.Request.Context(), ucMedia.UploadInput{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
		Type:        imageType,
		Actor:       adminEmail,
	})
	if err != nil {
		httperr.Internal(c, "failed_to_upload_file", "Failed to upload file.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "image": img})
}

func (h *ImageHandler) List(c *gin.Context) {
	imageType := c.Query("type")

	raws, err := h.store.GetByPrefix(c.Request.Context(), models.ImagePrefix)
	if err != nil {
		httperr.Internal(c, "failed_to_fetch_images", "Failed to fetch images.")
		return
	}

	images := make([]models.Image, 0, len(raws))
	for _, raw := range raws {
		var img models.Image
		if err := json.Unmarshal(raw, &img); err != nil {
			continue
		}
		if imageType != "" && img.Type != imageType {
			continue
		}
		images = append(images, img)
	}

	c.JSON(http.StatusOK, gin.H{"images": images})
}

func (h *ImageHandler) Delete(c *gin.Context) {
	adminEmail := c.MustGet(middleware.ContextAdminEmail).(string)
	id := c.Param("id")

	if err := h.deleteUC.Execute(c.Request.Context(), id, adminEmail); err != nil {
		if httperr.IsBusiness(err, "image_not_found") {
			httperr.NotFound(c, "image_not_found", "Image not found.")
			return
		}
		httperr.Internal(c, "failed_to_delete_image", "Failed to delete image.")
		return
	}

	httpresp.Success(c, "Image deleted successfully")
}

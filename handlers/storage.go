package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"roomify/services/storage"
	"roomify/utils"
)

// StorageHandler handles media uploads for room images and staff profile pictures.
type StorageHandler struct {
	StorageSvc storage.StorageService
}

// NewStorageHandler creates a new StorageHandler instance.
func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{StorageSvc: svc}
}

// allowedBuckets defines permitted buckets for uploads.
var allowedBuckets = map[string]bool{
	"rooms": true,
	"staff": true,
}

// UploadFileHandler accepts a multipart file and returns its download URL.
func (h *StorageHandler) UploadFileHandler(c *gin.Context) {
	bucket := c.Param("bucket")
	if !allowedBuckets[bucket] {
		utils.JSONError(c, http.StatusBadRequest, "invalid bucket; allowed values are 'rooms' and 'staff'")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "file not provided")
		return
	}

	tempDir := os.TempDir()
	tempFilePath := filepath.Join(tempDir, fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save file")
		return
	}
	defer os.Remove(tempFilePath)

	publicID, err := h.StorageSvc.UploadFile(c, tempFilePath, "images/"+bucket)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to upload file")
		return
	}

	downloadURL, err := h.StorageSvc.GetDownloadURL(c, publicID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to construct download URL")
		return
	}

	utils.JSONData(c, http.StatusOK, gin.H{
		"publicId": publicID,
		"url":      downloadURL,
	})
}

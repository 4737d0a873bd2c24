package handlers

import (
	"fmt"
	"io"
	"math/rand/v2"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// UploadHandler godoc
// @Summary Upload a single file
// @Description Stores the file under the public uploads path and returns its URL. No type or size validation; uploads are never deleted.
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Success 200 {object} UploadResult
// @Failure 400 {object} OKResult
// @Router /api/admin/upload [post]
func UploadHandler(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		fail(w, http.StatusBadRequest, "no file")
		return
	}
	defer file.Close()

	url, err := saveUpload(file, header)
	if err != nil {
		log.Errorw("could not store upload", "filename", header.Filename, "error", err)
		fail(w, http.StatusInternalServerError, "could not store file")
		return
	}

	_ = writeJSON(w, http.StatusOK, UploadResult{OK: true, URL: url})
}

// saveUpload writes the file under a collision-resistant name (millisecond
// timestamp plus random suffix, original extension preserved) and returns
// the public URL referencing it.
func saveUpload(file multipart.File, header *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}

	name := fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), rand.IntN(10000), filepath.Ext(header.Filename))
	dst, err := os.Create(filepath.Join(uploadDir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return "/uploads/" + name, nil
}

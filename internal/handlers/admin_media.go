// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// maxUploadSize is the maximum allowed image upload size (10 MB).
const maxUploadSize = 10 << 20

// allowedMediaTypes defines MIME types accepted for proposal imagery.
var allowedMediaTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

// MediaUpload handles a multipart image upload for the editor. On success
// it returns the public URL, ready to be written into an image field of
// the draft. Responds 503 when object storage is not configured.
func (a *Admin) MediaUpload(w http.ResponseWriter, r *http.Request) {
	if a.storageClient == nil {
		writeJSONError(w, http.StatusServiceUnavailable, "Object storage is not configured.")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1024)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeJSONError(w, http.StatusRequestEntityTooLarge, "File too large. Maximum size is 10 MB.")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "No file in the request.")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !allowedMediaTypes[contentType] {
		writeJSONError(w, http.StatusUnsupportedMediaType, "Only images can be uploaded here.")
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	key := fmt.Sprintf("media/%s%s", uuid.NewString(), ext)

	url, err := a.storageClient.Upload(r.Context(), key, contentType, file, header.Size)
	if err != nil {
		slog.Error("media upload failed", "error", err, "key", key)
		writeJSONError(w, http.StatusInternalServerError, "Upload failed.")
		return
	}

	slog.Info("media uploaded", "key", key, "size", header.Size)
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

// MediaDelete removes an uploaded file given its public URL.
func (a *Admin) MediaDelete(w http.ResponseWriter, r *http.Request) {
	if a.storageClient == nil {
		writeJSONError(w, http.StatusServiceUnavailable, "Object storage is not configured.")
		return
	}

	req, ok := decodeEditorRequest(w, r)
	if !ok {
		return
	}
	url, _ := req.Value.(string)

	key, ok := a.storageClient.ExtractKey(url)
	if !ok {
		writeJSONError(w, http.StatusBadRequest, "That URL is not in our storage.")
		return
	}

	if err := a.storageClient.Delete(r.Context(), key); err != nil {
		slog.Error("media delete failed", "error", err, "key", key)
		writeJSONError(w, http.StatusInternalServerError, "Delete failed.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"deleted": key})
}

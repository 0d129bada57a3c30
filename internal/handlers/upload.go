package handlers

import (
	"net/http"
)

const maxUploadSize = 10 << 20 // 10 MB

type UploadResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	URL     string `json:"url,omitempty"`
}

// UploadAvatar uploads an avatar image to Cloudinary and stores the hosted
// URL on the active user.
func (api *API) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	if api.Cloudinary == nil {
		writeError(w, http.StatusServiceUnavailable, "File uploads are not available")
		return
	}

	user := api.Session.User()
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not signed in")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	_, fileHeader, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "A file field named 'file' is required")
		return
	}

	url, err := api.Cloudinary.UploadFileFromHeader(r.Context(), fileHeader, "avatars")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to upload file")
		return
	}

	user.Avatar = url
	api.Session.SetUser(r.Context(), user)

	writeJSON(w, http.StatusOK, UploadResponse{
		Success: true,
		Message: "Avatar updated",
		URL:     url,
	})
}

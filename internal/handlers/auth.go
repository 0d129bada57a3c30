package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/moodmitra/moodmitra-backend/internal/models"
)

// Identity here is locally simulated: signup and signin validate their input
// shape but store no credentials and verify nothing against a directory.
// The server tracks exactly one active user per process, matching the
// single-device model of the app.

type SignupRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *models.User `json:"user,omitempty"`
}

// Signup creates the active user after validating the form input.
// A mismatched password confirmation is a validation error.
func (api *API) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "Name is required")
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		writeError(w, http.StatusBadRequest, "Email is required")
		return
	}
	if req.Password == "" {
		writeError(w, http.StatusBadRequest, "Password is required")
		return
	}
	if req.Password != req.ConfirmPassword {
		writeError(w, http.StatusBadRequest, "Passwords do not match")
		return
	}

	user := &models.User{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		IsAnonymous: false,
	}
	api.Session.SetUser(r.Context(), user)

	writeJSON(w, http.StatusCreated, AuthResponse{
		Success: true,
		Message: "Account created successfully",
		User:    user,
	})
}

// Signin sets the active user from the sign-in form. No credential is
// verified; the name is derived from the email's local part.
func (api *API) Signin(w http.ResponseWriter, r *http.Request) {
	var req SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Email) == "" {
		writeError(w, http.StatusBadRequest, "Email is required")
		return
	}
	if req.Password == "" {
		writeError(w, http.StatusBadRequest, "Password is required")
		return
	}

	name := req.Email
	if idx := strings.Index(name, "@"); idx > 0 {
		name = name[:idx]
	}

	user := &models.User{
		ID:          uuid.NewString(),
		Name:        name,
		Email:       strings.TrimSpace(req.Email),
		IsAnonymous: false,
	}
	api.Session.SetUser(r.Context(), user)

	writeJSON(w, http.StatusOK, AuthResponse{
		Success: true,
		Message: "Signed in successfully",
		User:    user,
	})
}

// Anonymous starts a guest session without any identifying details.
func (api *API) Anonymous(w http.ResponseWriter, r *http.Request) {
	user := &models.User{
		ID:          uuid.NewString(),
		Name:        "Guest",
		IsAnonymous: true,
	}
	api.Session.SetUser(r.Context(), user)

	writeJSON(w, http.StatusOK, AuthResponse{
		Success: true,
		Message: "Continuing as guest",
		User:    user,
	})
}

// Logout clears the user and wipes all persisted state. This is a total,
// irreversible reset.
func (api *API) Logout(w http.ResponseWriter, r *http.Request) {
	api.Session.Logout(r.Context())
	writeJSON(w, http.StatusOK, AuthResponse{
		Success: true,
		Message: "Signed out. All local data has been cleared.",
	})
}

// Me returns the active user, or 401 when no one is signed in.
func (api *API) Me(w http.ResponseWriter, r *http.Request) {
	user := api.Session.User()
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not signed in")
		return
	}
	writeJSON(w, http.StatusOK, AuthResponse{
		Success: true,
		Message: "OK",
		User:    user,
	})
}

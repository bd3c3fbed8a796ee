package auth

import (
	"encoding/json"
	"net/http"

	"roomly/internal/models"
	"roomly/internal/store"
	"roomly/internal/utils"
)

type SignupHandler struct {
	Users store.UserStore
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ServeHTTP handles POST /auth/signup
func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{
			Success: false,
			Message: "name, email and password are required",
		})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{
			Success: false,
			Message: "Failed to hash password",
		})
		return
	}

	user, err := h.Users.Create(r.Context(), &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	})
	if err != nil {
		if ce, ok := store.IsConflict(err); ok {
			utils.JSON(w, http.StatusConflict, utils.APIResponse{
				Success: false,
				Message: ce.Message,
				Data:    map[string]string{"field": ce.Field},
			})
			return
		}
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{
			Success: false,
			Message: "Could not create user",
		})
		return
	}

	utils.JSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "User created successfully",
		Data:    user,
	})
}

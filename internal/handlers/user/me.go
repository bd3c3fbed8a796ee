package user

import (
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"roomly/internal/middleware"
	"roomly/internal/store"
	"roomly/internal/utils"
)

type MeHandler struct {
	Users store.UserStore
}

// ServeHTTP handles GET /user/me
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(string)
	if !ok {
		utils.JSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		utils.JSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	u, err := h.Users.GetByID(r.Context(), oid)
	if errors.Is(err, store.ErrUserNotFound) {
		utils.JSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "User not found"})
		return
	} else if err != nil {
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Database error"})
		return
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "User details retrieved successfully",
		Data:    u,
	})
}

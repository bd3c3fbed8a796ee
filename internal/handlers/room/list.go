package room

import (
	"net/http"

	"roomly/internal/middleware"
	"roomly/internal/service"
	"roomly/internal/utils"
)

type UserRoomsHandler struct {
	Rooms *service.RoomService
}

// ServeHTTP handles GET /rooms — rooms the acting user owns or belongs to.
func (h *UserRoomsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(string)
	if !ok {
		utils.JSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	rooms, err := h.Rooms.GetRoomsByUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "rooms fetched", Data: rooms})
}

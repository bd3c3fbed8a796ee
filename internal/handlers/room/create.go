package room

import (
	"encoding/json"
	"net/http"

	"roomly/internal/middleware"
	"roomly/internal/service"
	"roomly/internal/utils"
)

type CreateRoomHandler struct {
	Rooms *service.RoomService
}

type CreateRoomRequest struct {
	Name    string                 `json:"name"`
	Members *[]service.MemberInput `json:"members"`
}

// ServeHTTP handles POST /rooms
func (h *CreateRoomHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(string)
	if !ok {
		utils.JSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	var req CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid request body"})
		return
	}
	// name and a members array are required before the service is touched;
	// an empty members array is fine.
	if req.Name == "" || req.Members == nil {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "room name and members are required"})
		return
	}

	room, err := h.Rooms.CreateRoom(r.Context(), req.Name, *req.Members, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, utils.APIResponse{Success: true, Message: "Room created", Data: room})
}

package room

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"roomly/internal/middleware"
	"roomly/internal/service"
	"roomly/internal/utils"
)

type UpdateRoomHandler struct {
	Rooms *service.RoomService
}

// ServeHTTP handles PATCH /rooms/{id}
func (h *UpdateRoomHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if _, ok := r.Context().Value(middleware.UserIDKey).(string); !ok {
		utils.JSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}
	id := chi.URLParam(r, "id")

	var patch service.RoomPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid request body"})
		return
	}
	if patch.Name == nil && patch.Members == nil {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "nothing to update"})
		return
	}

	room, err := h.Rooms.UpdateRoom(r.Context(), id, patch)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Room updated", Data: room})
}

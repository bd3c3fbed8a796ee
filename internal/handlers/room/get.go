package room

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"roomly/internal/service"
	"roomly/internal/utils"
)

type GetRoomHandler struct {
	Rooms *service.RoomService
}

// ServeHTTP handles GET /rooms/{id}
func (h *GetRoomHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	room, err := h.Rooms.GetRoomByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "room fetched", Data: room})
}

package room

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"roomly/internal/middleware"
	"roomly/internal/service"
	"roomly/internal/utils"
)

type DeleteRoomHandler struct {
	Rooms *service.RoomService
}

// ServeHTTP handles DELETE /rooms/{id}. Absence and ownership mismatch
// both come back as 404 via writeError.
func (h *DeleteRoomHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(string)
	if !ok {
		utils.JSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}
	id := chi.URLParam(r, "id")

	if _, err := h.Rooms.DeleteRoom(r.Context(), id, userID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

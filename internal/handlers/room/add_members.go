package room

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"roomly/internal/middleware"
	"roomly/internal/service"
	"roomly/internal/utils"
)

type AddMembersHandler struct {
	Rooms *service.RoomService
}

type AddMembersRequest struct {
	Members []service.MemberInput `json:"members"`
}

// ServeHTTP handles POST /rooms/{id}/members
func (h *AddMembersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(string)
	if !ok {
		utils.JSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}
	id := chi.URLParam(r, "id")

	var req AddMembersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid request body"})
		return
	}
	if len(req.Members) == 0 {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "members are required"})
		return
	}

	room, err := h.Rooms.AddMembers(r.Context(), id, userID, req.Members)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Members added", Data: room})
}

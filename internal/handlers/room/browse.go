package room

import (
	"net/http"
	"strconv"

	"roomly/internal/service"
	"roomly/internal/utils"
)

// maxPerPage caps the page size so a single request cannot pull the whole
// collection.
const maxPerPage = 100

type ListRoomsHandler struct {
	Rooms *service.RoomService
}

// ServeHTTP handles GET /rooms/all?page=&per_page= — all rooms, newest
// first, paginated.
func (h *ListRoomsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	page, ok := queryInt(r, "page", 1)
	if !ok {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "invalid page"})
		return
	}
	perPage, ok := queryInt(r, "per_page", 10)
	if !ok || perPage > maxPerPage {
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "invalid per_page (1-100)"})
		return
	}

	rooms, err := h.Rooms.ListRooms(r.Context(), page, perPage)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "rooms fetched", Data: rooms})
}

func queryInt(r *http.Request, key string, def int) (int, bool) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def, true
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

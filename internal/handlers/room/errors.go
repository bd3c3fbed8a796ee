package room

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"roomly/internal/service"
	"roomly/internal/store"
	"roomly/internal/utils"
)

// writeError maps domain errors to HTTP responses. Ownership mismatches
// are rendered as 404 on purpose: a non-owner must not learn whether the
// room exists. Anything unrecognized is logged and surfaced generically.
func writeError(w http.ResponseWriter, err error) {
	if ce, ok := store.IsConflict(err); ok {
		utils.JSON(w, http.StatusConflict, utils.APIResponse{
			Success: false,
			Message: ce.Message,
			Data:    map[string]string{"field": ce.Field},
		})
		return
	}

	switch {
	case errors.Is(err, store.ErrRoomNotFound), errors.Is(err, service.ErrNotRoomOwner):
		utils.JSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "room not found"})
	case errors.Is(err, service.ErrNameRequired),
		errors.Is(err, service.ErrInvalidUserID),
		errors.Is(err, service.ErrInvalidRole):
		utils.JSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: err.Error()})
	default:
		logrus.WithError(err).Error("room handler: internal error")
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "internal error"})
	}
}

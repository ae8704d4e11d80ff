package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
	"github.com/rocketscienceinc/monopoly-backend/internal/pkg"
	"github.com/rocketscienceinc/monopoly-backend/internal/repository"
)

type roomLister interface {
	ListRooms() []entity.RoomSummary
}

type snapshotReader interface {
	GetByCode(ctx context.Context, code string) (*entity.Snapshot, error)
}

type roomHandlers struct {
	logger    *slog.Logger
	rooms     roomLister
	snapshots snapshotReader
}

func (that *roomHandlers) listRooms(w http.ResponseWriter, _ *http.Request) {
	that.writeJSON(w, http.StatusOK, that.rooms.ListRooms())
}

// getRoom - the last mirrored snapshot of a room.
func (that *roomHandlers) getRoom(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "getRoom")

	code := pkg.NormalizeRoomCode(mux.Vars(r)["code"])

	snapshot, err := that.snapshots.GetByCode(r.Context(), code)
	if errors.Is(err, repository.ErrSnapshotNotFound) {
		http.Error(w, "room not found", http.StatusNotFound)
		return
	}

	if err != nil {
		log.Error("failed to get room snapshot", "roomCode", code, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)

		return
	}

	that.writeJSON(w, http.StatusOK, snapshot)
}

func (that *roomHandlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

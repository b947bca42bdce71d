package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/ukaji3/silsilah-go/pkg/silsilah"
	"github.com/ukaji3/silsilah-go/pkg/silsilah/models"
	"github.com/ukaji3/silsilah-go/pkg/silsilah/search"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, "index.html", buildView(s.loader.Current(), r.URL.Query().Get("q")))
}

func (s *Server) handleFragment(w http.ResponseWriter, r *http.Request) {
	s.render(w, "tree.html", buildView(s.loader.Current(), r.URL.Query().Get("q")))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	body := map[string]interface{}{"status": "ok"}
	if snap := s.loader.Current(); snap != nil {
		body["snapshot_id"] = snap.ID.String()
		body["fetched_at"] = snap.FetchedAt
	} else {
		body["status"] = "data_unavailable"
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, body)
}

type treeResponse struct {
	SnapshotID     string            `json:"snapshot_id"`
	Term           string            `json:"term"`
	FetchedAt      time.Time         `json:"fetched_at"`
	MissingColumns []string          `json:"missing_columns,omitempty"`
	Tree           *models.Hierarchy `json:"tree"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	snap := s.loader.Current()
	if snap == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{
			Error:   "data_unavailable",
			Message: "family data has not been loaded",
		})
		return
	}

	term := r.URL.Query().Get("q")
	writeJSON(w, http.StatusOK, treeResponse{
		SnapshotID:     snap.ID.String(),
		Term:           term,
		FetchedAt:      snap.FetchedAt,
		MissingColumns: snap.MissingColumns,
		Tree:           search.Filter(snap.Hierarchy, term),
	})
}

type refreshResponse struct {
	SnapshotID    string    `json:"snapshot_id"`
	FetchedAt     time.Time `json:"fetched_at"`
	Couples       int       `json:"couples"`
	Children      int       `json:"children"`
	Grandchildren int       `json:"grandchildren"`
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	snap, err := s.loader.Refresh(r.Context())
	if err != nil {
		status, code := refreshErrorStatus(err)
		s.logger.Warn("manual refresh failed", zap.String("code", code), zap.Error(err))
		writeJSON(w, status, errorResponse{Error: code, Message: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, refreshResponse{
		SnapshotID:    snap.ID.String(),
		FetchedAt:     snap.FetchedAt,
		Couples:       snap.Hierarchy.Len(),
		Children:      snap.Hierarchy.ChildCount(),
		Grandchildren: snap.Hierarchy.GrandchildCount(),
	})
}

func refreshErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, silsilah.ErrFetchFailure):
		return http.StatusBadGateway, "data_unavailable"
	case errors.Is(err, silsilah.ErrEmptyInput):
		return http.StatusUnprocessableEntity, "empty_input"
	case errors.Is(err, silsilah.ErrInvalidFormat):
		return http.StatusUnprocessableEntity, "invalid_format"
	case errors.Is(err, silsilah.ErrSuperseded):
		return http.StatusConflict, "superseded"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

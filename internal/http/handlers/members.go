package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/hongminglow/shift-assign/internal/http/respond"
	"github.com/hongminglow/shift-assign/internal/metrics"
	"github.com/hongminglow/shift-assign/internal/models"
	"github.com/hongminglow/shift-assign/internal/models/dto"
	"github.com/hongminglow/shift-assign/internal/storage"
)

// MembersHandler owns the /members endpoints.
type MembersHandler struct {
	store storage.MemberRepository
}

// NewMembersHandler constructs the handler.
func NewMembersHandler(store storage.MemberRepository) *MembersHandler {
	return &MembersHandler{store: store}
}

// Register attaches member routes to the mux.
func (h *MembersHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /members", h.handleList)
	mux.HandleFunc("POST /members", h.handleCreate)
	mux.HandleFunc("DELETE /members/{id}", h.handleDelete)
}

func (h *MembersHandler) handleList(w http.ResponseWriter, r *http.Request) {
	members, err := h.store.ListMembers(r.Context())
	if err != nil {
		observe("list", err)
		slog.Error("list members failed", "error", err)
		respond.Error(w, http.StatusInternalServerError, "failed to list members")
		return
	}
	observe("list", nil)
	if members == nil {
		members = []models.Member{}
	}
	respond.JSON(w, http.StatusOK, members)
}

func (h *MembersHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	name := strings.TrimSpace(req.Name)
	phone := strings.TrimSpace(req.Phone)
	if name == "" || phone == "" {
		respond.Error(w, http.StatusBadRequest, "name and phone are required")
		return
	}

	created, err := h.store.CreateMember(r.Context(), models.Member{
		Name:          name,
		Phone:         phone,
		AssignedHours: models.DefaultAssignedHours,
		LeaveHours:    models.DefaultLeaveHours,
		Status:        models.StatusActive,
	})
	if err != nil {
		observe("create", err)
		slog.Error("create member failed", "error", err)
		respond.Error(w, http.StatusInternalServerError, "failed to create member")
		return
	}
	observe("create", nil)
	slog.Info("member created", "member_id", created.ID)
	respond.JSON(w, http.StatusCreated, created)
}

// handleDelete is idempotent: deleting an unknown id still answers 204.
func (h *MembersHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid member id")
		return
	}

	err = h.store.DeleteMember(r.Context(), id)
	switch {
	case err == nil:
		slog.Info("member deleted", "member_id", id)
	case errors.Is(err, storage.ErrNotFound):
		slog.Debug("delete of unknown member", "member_id", id)
	default:
		observe("delete", err)
		slog.Error("delete member failed", "member_id", id, "error", err)
		respond.Error(w, http.StatusInternalServerError, "failed to delete member")
		return
	}
	observe("delete", nil)
	respond.NoContent(w)
}

func observe(operation string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.MemberOperationsTotal.WithLabelValues(operation, status).Inc()
}

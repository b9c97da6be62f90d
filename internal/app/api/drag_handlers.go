package api

import (
	"errors"
	"net/http"

	"github.com/bnema/dockyard/internal/app/workspace"
	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
)

// GetDrag handles GET /api/drag.
func (h *Handlers) GetDrag(w http.ResponseWriter, _ *http.Request) {
	var resp dragResponse
	h.Workspace.Read(func(s workspace.State) {
		resp = toDragResponse(s.Drag)
	})
	writeJSON(w, http.StatusOK, resp)
}

// BeginPaneDrag handles POST /api/drag/pane.
func (h *Handlers) BeginPaneDrag(w http.ResponseWriter, r *http.Request) {
	var req beginDragRequest
	if !decodeBody(w, r, &req) {
		return
	}
	h.beginDrag(w, func(s *workspace.State) (*entity.DragSession, error) {
		return h.DragDrop.BeginPaneDrag(r.Context(), s.Drag, s.Layout, req.PaneID)
	})
}

// BeginStackDrag handles POST /api/drag/stack.
func (h *Handlers) BeginStackDrag(w http.ResponseWriter, r *http.Request) {
	var req beginDragRequest
	if !decodeBody(w, r, &req) {
		return
	}
	h.beginDrag(w, func(s *workspace.State) (*entity.DragSession, error) {
		return h.DragDrop.BeginStackDrag(r.Context(), s.Drag, s.Layout, req.StackID)
	})
}

func (h *Handlers) beginDrag(w http.ResponseWriter, begin func(*workspace.State) (*entity.DragSession, error)) {
	var resp dragResponse
	_, err := h.Workspace.Update(func(s *workspace.State) (*usecase.MutationOutput, error) {
		session, err := begin(s)
		if err != nil {
			return nil, err
		}
		s.Drag = session
		resp = toDragResponse(session)
		return nil, nil
	})
	switch {
	case errors.Is(err, usecase.ErrDragInProgress):
		writeError(w, http.StatusConflict, err)
	case errors.Is(err, entity.ErrNotFound):
		writeError(w, http.StatusNotFound, err)
	case err != nil:
		writeError(w, http.StatusInternalServerError, err)
	default:
		writeJSON(w, http.StatusOK, resp)
	}
}

// DragOver handles POST /api/drag/over. The pointer is hit-tested against
// the layout arranged in the given bounds.
func (h *Handlers) DragOver(w http.ResponseWriter, r *http.Request) {
	var req dragOverRequest
	if !decodeBody(w, r, &req) {
		return
	}
	var resp dragResponse
	_, _ = h.Workspace.Update(func(s *workspace.State) (*usecase.MutationOutput, error) {
		rects := s.Arrange(req.Width, req.Height)
		h.DragDrop.DragOverPoint(s.Drag, rects, req.X, req.Y)
		resp = toDragResponse(s.Drag)
		return nil, nil
	})
	writeJSON(w, http.StatusOK, resp)
}

// DragLeave handles POST /api/drag/leave.
func (h *Handlers) DragLeave(w http.ResponseWriter, _ *http.Request) {
	var resp dragResponse
	_, _ = h.Workspace.Update(func(s *workspace.State) (*usecase.MutationOutput, error) {
		h.DragDrop.Leave(s.Drag)
		resp = toDragResponse(s.Drag)
		return nil, nil
	})
	writeJSON(w, http.StatusOK, resp)
}

// CancelDrag handles DELETE /api/drag.
func (h *Handlers) CancelDrag(w http.ResponseWriter, r *http.Request) {
	_, _ = h.Workspace.Update(func(s *workspace.State) (*usecase.MutationOutput, error) {
		s.Drag = h.DragDrop.Cancel(r.Context(), s.Drag)
		return nil, nil
	})
	writeJSON(w, http.StatusOK, toDragResponse(nil))
}

// Drop handles POST /api/drag/drop. The session ends whatever the outcome.
func (h *Handlers) Drop(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, func(s *workspace.State) (*usecase.MutationOutput, error) {
		out, err := h.DragDrop.Drop(r.Context(), s.Drag, s.Layout)
		s.Drag = nil
		return out, err
	})
}

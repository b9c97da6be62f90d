package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bnema/dockyard/internal/app/workspace"
	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/service"
	"github.com/bnema/dockyard/internal/logging"
)

const maxBodyBytes = 1 << 20

// Deps holds what the handlers operate on.
type Deps struct {
	Workspace *workspace.Workspace
	Layouts   *usecase.ManageLayoutUseCase
	Panes     *usecase.ManagePanesUseCase
	DragDrop  *usecase.DragDropUseCase
	Persist   *usecase.PersistLayoutUseCase
	Registry  port.ContentRegistry
}

// Handlers implements the layout API endpoints.
type Handlers struct {
	Deps
}

// NewHandlers creates the API handlers.
func NewHandlers(deps Deps) *Handlers {
	return &Handlers{Deps: deps}
}

// Health handles GET /healthz.
func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetLayout handles GET /api/layout.
func (h *Handlers) GetLayout(w http.ResponseWriter, _ *http.Request) {
	var snap *entity.LayoutSnapshot
	h.Workspace.Read(func(s workspace.State) {
		snap = entity.SnapshotFromLayout(s.Layout)
	})
	writeJSON(w, http.StatusOK, snap)
}

// PutLayout handles PUT /api/layout, replacing the live tree.
func (h *Handlers) PutLayout(w http.ResponseWriter, r *http.Request) {
	var snap entity.LayoutSnapshot
	if !decodeBody(w, r, &snap) {
		return
	}
	layout, err := entity.LayoutFromSnapshot(&snap)
	if err == nil {
		err = usecase.CheckLayout(layout)
	}
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	h.Workspace.Replace(layout)
	logging.FromContext(r.Context()).Info().Int("stacks", layout.StackCount()).Msg("layout replaced")
	writeJSON(w, http.StatusOK, entity.SnapshotFromLayout(layout))
}

// ResetLayout handles POST /api/layout/reset.
func (h *Handlers) ResetLayout(w http.ResponseWriter, r *http.Request) {
	layout, err := h.Persist.Reset(r.Context(), h.Workspace.LayoutName())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	h.Workspace.Replace(layout)
	writeJSON(w, http.StatusOK, entity.SnapshotFromLayout(layout))
}

// CleanupLayout handles POST /api/layout/cleanup.
func (h *Handlers) CleanupLayout(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, func(s *workspace.State) (*usecase.MutationOutput, error) {
		return h.Layouts.Cleanup(r.Context(), s.Layout)
	})
}

// ListContent handles GET /api/content.
func (h *Handlers) ListContent(w http.ResponseWriter, r *http.Request) {
	metas := h.Registry.List(r.Context())
	resp := make([]contentResponse, 0, len(metas))
	h.Workspace.Read(func(s workspace.State) {
		for _, m := range metas {
			pane, _ := s.Layout.FindPaneByContent(m.ContentID)
			resp = append(resp, contentResponse{
				ID:       m.ContentID,
				Title:    m.Title,
				Closable: m.Closable,
				Open:     pane != nil,
			})
		}
	})
	writeJSON(w, http.StatusOK, resp)
}

// ActivateContent handles POST /api/content/{contentID}/activate.
func (h *Handlers) ActivateContent(w http.ResponseWriter, r *http.Request) {
	contentID := chi.URLParam(r, "contentID")
	h.mutate(w, func(s *workspace.State) (*usecase.MutationOutput, error) {
		return h.Panes.ActivatePane(r.Context(), usecase.ActivatePaneInput{
			Layout:    s.Layout,
			ContentID: contentID,
		})
	})
}

// ListStacks handles GET /api/stacks. With width and height query
// parameters each stack carries its arranged rectangle.
func (h *Handlers) ListStacks(w http.ResponseWriter, r *http.Request) {
	width, height, err := boundsFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var resp []stackResponse
	h.Workspace.Read(func(s workspace.State) {
		rects := s.Arrange(width, height)
		for _, stack := range s.Layout.Stacks() {
			sr := toStackResponse(stack)
			if rect, ok := service.FindRect(rects, stack.ID); ok {
				sr.Rect = &rect
			}
			resp = append(resp, sr)
		}
	})
	if resp == nil {
		resp = []stackResponse{}
	}
	writeJSON(w, http.StatusOK, resp)
}

// MoveStack handles POST /api/stacks/{stackID}/move.
func (h *Handlers) MoveStack(w http.ResponseWriter, r *http.Request) {
	var req moveStackRequest
	if !decodeBody(w, r, &req) {
		return
	}
	zone, ok := entity.ParseDropZone(req.Zone)
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Errorf("unknown zone %q", req.Zone))
		return
	}
	stackID := entity.NodeID(chi.URLParam(r, "stackID"))
	h.mutate(w, func(s *workspace.State) (*usecase.MutationOutput, error) {
		return h.Layouts.MoveStack(r.Context(), usecase.MoveStackInput{
			Layout:        s.Layout,
			SourceStackID: stackID,
			TargetStackID: req.TargetStackID,
			Zone:          zone,
		})
	})
}

// ReorderTab handles POST /api/stacks/{stackID}/reorder.
func (h *Handlers) ReorderTab(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if !decodeBody(w, r, &req) {
		return
	}
	input := usecase.ReorderTabInput{
		StackID:     entity.NodeID(chi.URLParam(r, "stackID")),
		PaneID:      req.PaneID,
		TargetIndex: req.Index,
	}
	h.mutate(w, func(s *workspace.State) (*usecase.MutationOutput, error) {
		input.Layout = s.Layout
		if req.Gap {
			return h.Panes.ReorderTabToGap(r.Context(), input)
		}
		return h.Panes.ReorderTab(r.Context(), input)
	})
}

// AddPane handles POST /api/panes.
func (h *Handlers) AddPane(w http.ResponseWriter, r *http.Request) {
	var req addPaneRequest
	if !decodeBody(w, r, &req) {
		return
	}
	h.mutate(w, func(s *workspace.State) (*usecase.MutationOutput, error) {
		return h.Panes.AddPane(r.Context(), usecase.AddPaneInput{
			Layout:    s.Layout,
			StackID:   req.StackID,
			ContentID: req.ContentID,
			Title:     req.Title,
		})
	})
}

// ClosePane handles DELETE /api/panes/{paneID}?force=true.
func (h *Handlers) ClosePane(w http.ResponseWriter, r *http.Request) {
	force, _ := strconv.ParseBool(r.URL.Query().Get("force"))
	paneID := entity.NodeID(chi.URLParam(r, "paneID"))
	h.mutate(w, func(s *workspace.State) (*usecase.MutationOutput, error) {
		return h.Panes.ClosePane(r.Context(), usecase.ClosePaneInput{
			Layout: s.Layout,
			PaneID: paneID,
			Force:  force,
		})
	})
}

// MovePane handles POST /api/panes/{paneID}/move.
func (h *Handlers) MovePane(w http.ResponseWriter, r *http.Request) {
	var req movePaneRequest
	if !decodeBody(w, r, &req) {
		return
	}
	zone, ok := entity.ParseDropZone(req.Zone)
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Errorf("unknown zone %q", req.Zone))
		return
	}
	paneID := entity.NodeID(chi.URLParam(r, "paneID"))
	h.mutate(w, func(s *workspace.State) (*usecase.MutationOutput, error) {
		return h.Layouts.MovePane(r.Context(), usecase.MovePaneInput{
			Layout:        s.Layout,
			PaneID:        paneID,
			SourceStackID: req.SourceStackID,
			TargetStackID: req.TargetStackID,
			Zone:          zone,
		})
	})
}

// SetWeights handles PUT /api/boxes/{boxID}/weights.
func (h *Handlers) SetWeights(w http.ResponseWriter, r *http.Request) {
	var req weightsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	boxID := entity.NodeID(chi.URLParam(r, "boxID"))
	h.mutate(w, func(s *workspace.State) (*usecase.MutationOutput, error) {
		return h.Layouts.SetWeights(r.Context(), usecase.SetWeightsInput{
			Layout:  s.Layout,
			BoxID:   boxID,
			Weights: req.Weights,
		})
	})
}

// ListPanels handles GET /api/panels.
func (h *Handlers) ListPanels(w http.ResponseWriter, _ *http.Request) {
	panels := h.Panes.SidePanels()
	resp := make([]panelResponse, 0, len(panels))
	h.Workspace.Read(func(s workspace.State) {
		for _, p := range panels {
			resp = append(resp, panelResponse{
				ID:       p.StackID,
				Title:    p.Title,
				Position: p.Position,
				Visible:  h.Panes.PanelVisible(s.Layout, p.StackID),
			})
		}
	})
	writeJSON(w, http.StatusOK, resp)
}

// TogglePanel handles POST /api/panels/{panelID}/toggle.
func (h *Handlers) TogglePanel(w http.ResponseWriter, r *http.Request) {
	panelID := entity.NodeID(chi.URLParam(r, "panelID"))
	h.mutate(w, func(s *workspace.State) (*usecase.MutationOutput, error) {
		return h.Panes.ToggleSidePanel(r.Context(), s.Layout, panelID)
	})
}

// FocusNeighbor handles POST /api/focus.
func (h *Handlers) FocusNeighbor(w http.ResponseWriter, r *http.Request) {
	var req focusRequest
	if !decodeBody(w, r, &req) {
		return
	}
	dir, ok := service.ParseNavigateDirection(req.Direction)
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Errorf("unknown direction %q", req.Direction))
		return
	}
	if req.Width <= 0 || req.Height <= 0 {
		writeError(w, http.StatusBadRequest, errors.New("width and height must be positive"))
		return
	}

	var (
		out *usecase.FocusNeighborOutput
		err error
	)
	h.Workspace.Read(func(s workspace.State) {
		out, err = h.Layouts.FocusNeighbor(r.Context(), usecase.FocusNeighborInput{
			Layout:        s.Layout,
			ActiveStackID: req.ActiveStackID,
			Direction:     dir,
			Width:         req.Width,
			Height:        req.Height,
		})
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, focusResponse{StackID: out.StackID, Found: out.Found})
}

// mutate runs a use case against the live layout and writes its outcome.
func (h *Handlers) mutate(w http.ResponseWriter, fn func(*workspace.State) (*usecase.MutationOutput, error)) {
	out, err := h.Workspace.Update(fn)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, statusFor(out.Outcome), toMutationResponse(out))
}

// statusFor maps an outcome onto an HTTP status. Ignored requests succeed.
func statusFor(outcome usecase.Outcome) int {
	switch outcome {
	case usecase.OutcomeNotFound:
		return http.StatusNotFound
	case usecase.OutcomeRejected:
		return http.StatusConflict
	default:
		return http.StatusOK
	}
}

func boundsFromQuery(r *http.Request) (int, int, error) {
	q := r.URL.Query()
	if q.Get("width") == "" && q.Get("height") == "" {
		return 0, 0, nil
	}
	width, err := strconv.Atoi(q.Get("width"))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width: %w", err)
	}
	height, err := strconv.Atoi(q.Get("height"))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height: %w", err)
	}
	return width, height, nil
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

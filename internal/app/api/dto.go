package api

import (
	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
)

type mutationResponse struct {
	Outcome    usecase.Outcome `json:"outcome"`
	Changed    bool            `json:"changed"`
	NewStackID entity.NodeID   `json:"new_stack_id,omitempty"`
	Reason     string          `json:"reason,omitempty"`
}

func toMutationResponse(out *usecase.MutationOutput) mutationResponse {
	return mutationResponse{
		Outcome:    out.Outcome,
		Changed:    out.Changed,
		NewStackID: out.NewStackID,
		Reason:     out.Reason,
	}
}

type paneResponse struct {
	ID        entity.NodeID `json:"id"`
	Title     string        `json:"title"`
	ContentID string        `json:"content_id"`
	Closable  bool          `json:"closable"`
	Active    bool          `json:"active"`
}

type stackResponse struct {
	ID       entity.NodeID  `json:"id"`
	Weight   float64        `json:"weight"`
	ActiveID entity.NodeID  `json:"active_id,omitempty"`
	Rect     *entity.Rect   `json:"rect,omitempty"`
	Panes    []paneResponse `json:"panes"`
}

func toStackResponse(s *entity.Stack) stackResponse {
	panes := make([]paneResponse, 0, len(s.Children))
	for _, p := range s.Children {
		panes = append(panes, paneResponse{
			ID:        p.ID,
			Title:     p.Title,
			ContentID: p.ContentID,
			Closable:  p.Closable,
			Active:    p.ID == s.ActiveID,
		})
	}
	return stackResponse{ID: s.ID, Weight: s.Weight, ActiveID: s.ActiveID, Panes: panes}
}

type contentResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Closable bool   `json:"closable"`
	Open     bool   `json:"open"`
}

type panelResponse struct {
	ID       entity.NodeID        `json:"id"`
	Title    string               `json:"title"`
	Position entity.PanelPosition `json:"position"`
	Visible  bool                 `json:"visible"`
}

type dragResponse struct {
	State         string             `json:"state"`
	Kind          entity.DragKind    `json:"kind,omitempty"`
	PaneID        entity.NodeID      `json:"pane_id,omitempty"`
	SourceStackID entity.NodeID      `json:"source_stack_id,omitempty"`
	Target        *entity.DropTarget `json:"target,omitempty"`
}

func toDragResponse(d *entity.DragSession) dragResponse {
	if !d.Active() {
		return dragResponse{State: d.State()}
	}
	return dragResponse{
		State:         d.State(),
		Kind:          d.Kind,
		PaneID:        d.PaneID,
		SourceStackID: d.SourceStackID,
		Target:        d.Target,
	}
}

type addPaneRequest struct {
	ContentID string        `json:"content_id"`
	StackID   entity.NodeID `json:"stack_id,omitempty"`
	Title     string        `json:"title,omitempty"`
}

type movePaneRequest struct {
	SourceStackID entity.NodeID `json:"source_stack_id,omitempty"`
	TargetStackID entity.NodeID `json:"target_stack_id"`
	Zone          string        `json:"zone"`
}

type moveStackRequest struct {
	TargetStackID entity.NodeID `json:"target_stack_id"`
	Zone          string        `json:"zone"`
}

type reorderRequest struct {
	PaneID entity.NodeID `json:"pane_id"`
	Index  int           `json:"index"`
	// Gap selects insertion-gap semantics instead of a final index.
	Gap bool `json:"gap,omitempty"`
}

type weightsRequest struct {
	Weights []float64 `json:"weights"`
}

type focusRequest struct {
	ActiveStackID entity.NodeID `json:"active_stack_id"`
	Direction     string        `json:"direction"`
	Width         int           `json:"width"`
	Height        int           `json:"height"`
}

type focusResponse struct {
	StackID entity.NodeID `json:"stack_id,omitempty"`
	Found   bool          `json:"found"`
}

type beginDragRequest struct {
	PaneID  entity.NodeID `json:"pane_id,omitempty"`
	StackID entity.NodeID `json:"stack_id,omitempty"`
}

type dragOverRequest struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
}

type errorResponse struct {
	Error string `json:"error"`
}

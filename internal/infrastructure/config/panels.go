package config

import "github.com/bnema/dockyard/internal/domain/entity"

// Panels converts the configured side panels into domain values.
func (c LayoutConfig) Panels() []entity.SidePanel {
	panels := make([]entity.SidePanel, 0, len(c.SidePanels))
	for _, p := range c.SidePanels {
		panels = append(panels, entity.SidePanel{
			StackID:   entity.NodeID(p.ID),
			ContentID: p.ContentID,
			Title:     p.Title,
			Position:  entity.PanelPosition(p.Position),
			Direction: entity.Direction(p.Direction),
			Weight:    p.Weight,
		})
	}
	return panels
}

// VisiblePanels returns the ids of the side panels shown in a fresh layout.
func (c LayoutConfig) VisiblePanels() []entity.NodeID {
	var ids []entity.NodeID
	for _, p := range c.SidePanels {
		if p.VisibleOnStart {
			ids = append(ids, entity.NodeID(p.ID))
		}
	}
	return ids
}

package api

import "github.com/go-chi/chi/v5"

// SetupRoutes registers the layout API routes.
func SetupRoutes(router chi.Router, h *Handlers) {
	router.Get("/healthz", h.Health)

	router.Route("/api", func(r chi.Router) {
		r.Get("/layout", h.GetLayout)
		r.Put("/layout", h.PutLayout)
		r.Post("/layout/reset", h.ResetLayout)
		r.Post("/layout/cleanup", h.CleanupLayout)

		r.Get("/content", h.ListContent)
		r.Post("/content/{contentID}/activate", h.ActivateContent)

		r.Get("/stacks", h.ListStacks)
		r.Post("/stacks/{stackID}/move", h.MoveStack)
		r.Post("/stacks/{stackID}/reorder", h.ReorderTab)

		r.Post("/panes", h.AddPane)
		r.Delete("/panes/{paneID}", h.ClosePane)
		r.Post("/panes/{paneID}/move", h.MovePane)

		r.Put("/boxes/{boxID}/weights", h.SetWeights)

		r.Get("/panels", h.ListPanels)
		r.Post("/panels/{panelID}/toggle", h.TogglePanel)

		r.Post("/focus", h.FocusNeighbor)

		r.Route("/drag", func(r chi.Router) {
			r.Get("/", h.GetDrag)
			r.Delete("/", h.CancelDrag)
			r.Post("/pane", h.BeginPaneDrag)
			r.Post("/stack", h.BeginStackDrag)
			r.Post("/over", h.DragOver)
			r.Post("/leave", h.DragLeave)
			r.Post("/drop", h.Drop)
		})
	})
}

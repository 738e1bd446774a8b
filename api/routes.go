package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public catalog routes and the token-guarded admin
// routes.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public catalog
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/home", handlers.listingHandler.getHome())
		r.Get("/tools", handlers.toolHandler.getTools())
		r.Get("/tools/featured", handlers.toolHandler.getFeatured())
		r.Get("/tool/{slug}", handlers.toolHandler.getToolBySlug())
		r.Get("/tool/{slug}/alternatives", handlers.toolHandler.getAlternatives())
		r.Get("/search", handlers.toolHandler.searchTools())
		r.Get("/categories", handlers.categoryHandler.getCategories())
		r.Get("/category/{slug}", handlers.categoryHandler.getCategoryTools())
		r.Get("/tags", handlers.tagHandler.getTags())
		r.Post("/submissions", handlers.submissionHandler.createSubmission())

		r.Post("/admin/login", handlers.adminHandler.login())
	})

	// Admin panel
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.authenticate)

		r.Get("/admin/tools", handlers.adminHandler.listTools())
		r.Post("/admin/tool", handlers.adminHandler.createTool())
		r.Put("/admin/tool/{toolID}", handlers.adminHandler.updateTool())
		r.Delete("/admin/tool/{toolID}", handlers.adminHandler.deleteTool())

		r.Get("/admin/categories", handlers.adminHandler.listCategories())
		r.Post("/admin/category", handlers.adminHandler.createCategory())
		r.Put("/admin/category/{categoryID}", handlers.adminHandler.updateCategory())
		r.Delete("/admin/category/{categoryID}", handlers.adminHandler.deleteCategory())

		r.Get("/admin/submissions", handlers.adminHandler.listSubmissions())
		r.Post("/admin/submission/{submissionID}/approve", handlers.adminHandler.approveSubmission())
		r.Post("/admin/submission/{submissionID}/reject", handlers.adminHandler.rejectSubmission())
	})
}

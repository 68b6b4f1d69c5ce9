package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/inkwell/bookshop/internal/application"
)

// Handler is the HTTP adapter entrypoint. Only the application service is
// depended on here so the adapter boundary stays clean.
type Handler struct {
	service   *application.Service
	uploadDir string
}

func NewHandler(service *application.Service, uploadDir string) *Handler {
	return &Handler{service: service, uploadDir: uploadDir}
}

// NewRouter registers the storefront API routes and middleware stack.
func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(recoverMiddleware)
	r.Use(loggingMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	r.Get("/", handler.root)
	r.Get("/healthz", handler.healthz)
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})
	r.Get("/swagger/", handler.swaggerUI)
	r.Get("/swagger/openapi.yaml", handler.swaggerSpec)

	r.Handle("/uploads/*", http.StripPrefix("/uploads/",
		http.FileServer(http.Dir(handler.uploadDir))))

	r.Route("/api/Auth", func(r chi.Router) {
		r.Post("/", handler.register)
		r.Post("/loginUser", handler.login)
		r.Post("/logout", handler.logout)
		r.Get("/profile", handler.profile)
	})

	r.Route("/api/Books", func(r chi.Router) {
		r.Get("/", handler.listBooks)
		r.Get("/{id}", handler.getBook)
		r.Post("/", handler.createBook)
		r.Put("/{id}", handler.updateBook)
		r.Delete("/", handler.deleteBook)
	})

	r.Route("/api/Categories", func(r chi.Router) {
		r.Get("/", handler.listCategories)
		r.Get("/{id}", handler.getCategory)
		r.Post("/", handler.createCategory)
		r.Put("/{id}", handler.updateCategory)
		r.Delete("/", handler.deleteCategory)
	})

	r.Post("/api/Checkout/create-session", handler.createCheckoutSession)

	return r
}

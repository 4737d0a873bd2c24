package http

import (
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/dimasarya/panelstore/internal/http/handlers"
)

var publicDir = "public"

// SetPublicDir sets the directory the static site (and uploads) are served
// from.
func SetPublicDir(dir string) {
	publicDir = dir
}

// NewRouter builds the full HTTP surface: public catalog endpoints, the
// cookie-gated admin API, upload, swagger and the static site.
func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(corsMiddleware)

	// public catalog
	r.Get("/produk.json", handlers.GetDocumentHandler)
	r.Get("/api/produk", handlers.GetProductsHandler)

	// session endpoints
	r.Get("/admin/check", handlers.CheckHandler)
	r.With(LoginRateLimit).Post("/admin/login", handlers.LoginHandler)
	r.Post("/admin/logout", handlers.LogoutHandler)

	// admin pages
	r.Get("/admin/login", loginPageHandler)
	r.With(RequireSession).Get("/admin/dashboard", dashboardPageHandler)

	// admin API
	r.Group(func(r chi.Router) {
		r.Use(RequireSession)
		r.Get("/admin/produk", handlers.GetDocumentHandler)
		r.Get("/admin/produk/stats", handlers.StatsHandler)
		r.Post("/api/admin/upload", handlers.UploadHandler)
		r.Post("/api/admin/add", handlers.AddProductHandler)
		r.Post("/api/produk/add", handlers.AddProductHandler) // legacy alias
		r.Post("/api/admin/edit/{id}", handlers.EditProductHandler)
		r.Post("/api/admin/delete/{id}", handlers.DeleteProductHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	// everything else is the static site, uploads included
	fileServer := http.FileServer(http.Dir(publicDir))
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		fileServer.ServeHTTP(w, req)
	})

	return r
}

func loginPageHandler(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(publicDir, "admin", "login.html"))
}

func dashboardPageHandler(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(publicDir, "admin", "dashboard.html"))
}

// corsMiddleware mirrors the permissive CORS policy the catalog frontend
// relies on.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

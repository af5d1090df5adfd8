package api

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the product API surface.
func Routes(products *ProductHandler, images *ImageHandler) chi.Router {
	r := chi.NewRouter()

	r.Route("/products", func(r chi.Router) {
		r.Get("/", products.List)
		r.Post("/", products.Create)
		r.Post("/upload-image", images.Upload)
		r.Get("/{id}", products.GetOne)
		r.Delete("/{id}", products.Delete)
	})

	return r
}

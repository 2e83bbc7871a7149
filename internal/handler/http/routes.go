package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-file-keeper/internal/metrics"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Route("/api/files", func(r chi.Router) {
		// short JSON calls
		r.Group(func(r chi.Router) {
			if h.cfg.RequestTimeout > 0 {
				r.Use(middleware.Timeout(h.cfg.RequestTimeout))
			}
			r.Use(withGZip)

			r.Post("/directory", h.createDirectory)
			r.Put("/list", h.list)
			r.Put("/copy", h.copy)
			r.Post("/move", h.move)
			r.Post("/remove", h.remove)

			r.Put("/import/{cid}", h.startImport)
			r.Put("/import/cancel/{cid}", h.cancelImport)

			r.Get("/pin/{cid}", h.pinStatus)
			r.Put("/pin/{cid}", h.pin)
			r.Delete("/pin/{cid}", h.unpin)

			r.Get("/encrypted/{cid}", h.isEncrypted)
		})

		// uploads and streamed downloads
		r.Group(func(r chi.Router) {
			r.Post("/upload", h.upload)
			r.Put("/pin/upload/{cid}", h.pinByUpload)
			r.Post("/bundle/upload/file", h.uploadBundleFile)
			r.Post("/bundle/upload/folder", h.uploadBundleFolder)
			r.Post("/bundle/{cid}", h.downloadDecrypted)
			r.Get("/{cid}", h.read)
		})
	})

	router.Get("/api/version", h.getServerVersion)
	router.Handle("/metrics", metrics.Handler())

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

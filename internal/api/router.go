package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/samandr77/microservices/crmwidget/docs" // swagger docs
	"github.com/samandr77/microservices/crmwidget/internal/entity"
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Get("/health", h.Health)

	mux.Route("/webhook", func(r chi.Router) {
		r.Post("/chat-started", h.ChatWebhook(entity.ChatEventStarted))
		r.Post("/visitor-updated", h.ChatWebhook(entity.ChatEventVisitorUpdated))
		r.Post("/chat-ended", h.ChatWebhook(entity.ChatEventEnded))
	})

	mux.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.HandleFunc("/swagger/*", httpSwagger.Handler())
		r.Get("/salesiq/integration-status", h.IntegrationStatus)

		r.Group(func(r chi.Router) {
			r.Use(mw.BearerToken)

			r.Route("/contacts", func(r chi.Router) {
				r.Get("/search", h.SearchContact)
				r.Post("/", h.CreateContact)

				r.Route("/{id}", func(r chi.Router) {
					r.Use(mw.ContactID)
					r.Patch("/", h.UpdateContact)
					r.Get("/deals", h.Deals)
					r.Get("/notes", h.Notes)
					r.Get("/activities", h.Activities)
					r.Post("/quick-action", h.QuickAction)
					r.Get("/owner", h.ContactOwner)
					r.Post("/tags", h.TagContact)
					r.Post("/associate-company", h.AssociateCompany)
				})
			})

			r.Post("/deals", h.CreateDeal)
			r.Post("/notes", h.CreateNote)
			r.Post("/tasks", h.CreateTask)
			r.Post("/activities/log", h.LogActivity)
			r.Get("/owners", h.Owners)
			r.Get("/companies/search", h.SearchCompany)
			r.Get("/chats/events", h.ChatEvents)
			r.HandleFunc("/hubspot/*", h.Passthrough)
		})
	})

	return mux
}

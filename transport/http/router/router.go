package router

import (
	"net/http"

	"lodge/config"
	"lodge/internal/handlers/announcement"
	"lodge/internal/handlers/auth"
	"lodge/internal/handlers/booking"
	"lodge/internal/handlers/checkin"
	"lodge/internal/handlers/contact"
	"lodge/internal/handlers/guest"
	"lodge/internal/handlers/housekeeping"
	"lodge/internal/handlers/inventory"
	"lodge/internal/handlers/payment"
	"lodge/internal/handlers/report"
	"lodge/internal/handlers/room"
	"lodge/internal/handlers/staff"
	"lodge/transport/http/middleware"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type DomainHandlers struct {
	Announcement *announcement.Handler
	Auth         *auth.Handler
	Booking      *booking.Handler
	Checkin      *checkin.Handler
	Contact      *contact.Handler
	Guest        *guest.Handler
	Housekeeping *housekeeping.Handler
	Inventory    *inventory.Handler
	Payment      *payment.Handler
	Report       *report.Handler
	Room         *room.Handler
	Staff        *staff.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AppMiddleware  middleware.AppMiddleware
	AuthRole       middleware.AuthRole
	Config         *config.Config
}

func New(
	domainHandlers DomainHandlers,
	appMiddleware middleware.AppMiddleware,
	authRole middleware.AuthRole,
	cfg *config.Config,
) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AppMiddleware:  appMiddleware,
		AuthRole:       authRole,
		Config:         cfg,
	}
}

func (r *Router) SetupRoutes(router chi.Router) {
	if r.Config.App.CORS.Enable {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   r.Config.App.CORS.AllowedOrigins,
			AllowedMethods:   r.Config.App.CORS.AllowedMethods,
			AllowedHeaders:   r.Config.App.CORS.AllowedHeaders,
			AllowCredentials: r.Config.App.CORS.AllowCredentials,
			MaxAge:           r.Config.App.CORS.MaxAgeSeconds,
		}))
	}

	router.Use(r.AppMiddleware.Tracing)
	router.Use(r.AppMiddleware.RateLimit)

	router.Get("/v1/health", func(w http.ResponseWriter, _ *http.Request) {
		response.WithMessage(w, http.StatusOK, "OK")
	})

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthRole.Auth)
		routerGroup.Use(r.AuthRole.RBAC)

		r.DomainHandlers.Announcement.Router(routerGroup)
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Checkin.Router(routerGroup)
		r.DomainHandlers.Contact.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Housekeeping.Router(routerGroup)
		r.DomainHandlers.Inventory.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.Report.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Staff.Router(routerGroup)
	})
}

//go:build wireinject
// +build wireinject

package di

import (
	"lodge/config"
	"lodge/infras/event"
	"lodge/infras/jwt"
	"lodge/infras/mail"
	"lodge/infras/objectstore"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/infras/redis"
	"lodge/infras/sms"
	"lodge/internal/notify"
	"lodge/permissions"
	"lodge/shared/cache"
	"lodge/transport/http"
	"lodge/transport/http/middleware"
	"lodge/transport/http/router"

	announcementHandler "lodge/internal/handlers/announcement"
	authHandler "lodge/internal/handlers/auth"
	bookingHandler "lodge/internal/handlers/booking"
	checkinHandler "lodge/internal/handlers/checkin"
	contactHandler "lodge/internal/handlers/contact"
	guestHandler "lodge/internal/handlers/guest"
	housekeepingHandler "lodge/internal/handlers/housekeeping"
	inventoryHandler "lodge/internal/handlers/inventory"
	paymentHandler "lodge/internal/handlers/payment"
	reportHandler "lodge/internal/handlers/report"
	roomHandler "lodge/internal/handlers/room"
	staffHandler "lodge/internal/handlers/staff"

	announcementRepository "lodge/internal/domains/announcement/repository"
	announcementService "lodge/internal/domains/announcement/service"
	authService "lodge/internal/domains/auth/service"
	bookingRepository "lodge/internal/domains/booking/repository"
	bookingService "lodge/internal/domains/booking/service"
	checkinRepository "lodge/internal/domains/checkin/repository"
	checkinService "lodge/internal/domains/checkin/service"
	contactRepository "lodge/internal/domains/contact/repository"
	contactService "lodge/internal/domains/contact/service"
	guestRepository "lodge/internal/domains/guest/repository"
	guestService "lodge/internal/domains/guest/service"
	housekeepingRepository "lodge/internal/domains/housekeeping/repository"
	housekeepingService "lodge/internal/domains/housekeeping/service"
	inventoryRepository "lodge/internal/domains/inventory/repository"
	inventoryService "lodge/internal/domains/inventory/service"
	paymentRepository "lodge/internal/domains/payment/repository"
	paymentService "lodge/internal/domains/payment/service"
	reportService "lodge/internal/domains/report/service"
	roomRepository "lodge/internal/domains/room/repository"
	roomService "lodge/internal/domains/room/service"
	staffRepository "lodge/internal/domains/staff/repository"
	staffService "lodge/internal/domains/staff/service"
	userRepository "lodge/internal/domains/user/repository"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	mail.New,
	sms.New,
	event.New,
	objectstore.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	notify.New,
)

var announcementDomain = wire.NewSet(
	announcementRepository.New,
	announcementService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var checkinDomain = wire.NewSet(
	checkinRepository.New,
	checkinService.New,
)

var contactDomain = wire.NewSet(
	contactRepository.New,
	contactService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var housekeepingDomain = wire.NewSet(
	housekeepingRepository.New,
	housekeepingService.New,
)

var inventoryDomain = wire.NewSet(
	inventoryRepository.New,
	inventoryService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
)

var reportDomain = wire.NewSet(
	reportService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var staffDomain = wire.NewSet(
	staffRepository.New,
	staffService.New,
)

var domains = wire.NewSet(
	announcementDomain,
	authDomain,
	bookingDomain,
	checkinDomain,
	contactDomain,
	guestDomain,
	housekeepingDomain,
	inventoryDomain,
	paymentDomain,
	reportDomain,
	roomDomain,
	staffDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	announcementHandler.New,
	authHandler.New,
	bookingHandler.New,
	checkinHandler.New,
	contactHandler.New,
	guestHandler.New,
	housekeepingHandler.New,
	inventoryHandler.New,
	paymentHandler.New,
	reportHandler.New,
	roomHandler.New,
	staffHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

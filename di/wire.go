//go:build wireinject
// +build wireinject

package di

import (
	"innkeep/config"
	"innkeep/infras/jwt"
	"innkeep/infras/kafka"
	"innkeep/infras/otel"
	"innkeep/infras/postgres"
	"innkeep/infras/redis"
	"innkeep/infras/s3"
	"innkeep/permissions"
	"innkeep/shared/cache"
	"innkeep/transport/http"
	"innkeep/transport/http/middleware"
	"innkeep/transport/http/router"

	"github.com/google/wire"

	authService "innkeep/internal/domains/auth/service"
	bookingRepository "innkeep/internal/domains/booking/repository"
	bookingService "innkeep/internal/domains/booking/service"
	employeeRepository "innkeep/internal/domains/employee/repository"
	employeeService "innkeep/internal/domains/employee/service"
	exportService "innkeep/internal/domains/export/service"
	guestRepository "innkeep/internal/domains/guest/repository"
	guestService "innkeep/internal/domains/guest/service"
	reportService "innkeep/internal/domains/report/service"
	roomRepository "innkeep/internal/domains/room/repository"
	roomService "innkeep/internal/domains/room/service"

	authHandler "innkeep/internal/handlers/auth"
	bookingHandler "innkeep/internal/handlers/booking"
	employeeHandler "innkeep/internal/handlers/employee"
	exportHandler "innkeep/internal/handlers/export"
	guestHandler "innkeep/internal/handlers/guest"
	reportHandler "innkeep/internal/handlers/report"
	roomHandler "innkeep/internal/handlers/room"
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
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var employeeDomain = wire.NewSet(
	employeeRepository.New,
	employeeService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var reportDomain = wire.NewSet(
	reportService.New,
)

var exportDomain = wire.NewSet(
	exportService.New,
)

var domains = wire.NewSet(
	roomDomain,
	guestDomain,
	employeeDomain,
	bookingDomain,
	authDomain,
	reportDomain,
	exportDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	roomHandler.New,
	guestHandler.New,
	employeeHandler.New,
	bookingHandler.New,
	reportHandler.New,
	exportHandler.New,
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

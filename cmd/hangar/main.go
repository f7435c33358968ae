package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"github.com/hangarhq/hangar/internal/config"
	"github.com/hangarhq/hangar/internal/infra/database"
	"github.com/hangarhq/hangar/internal/infra/repository"
	"github.com/hangarhq/hangar/internal/infra/tracing"
	"github.com/hangarhq/hangar/internal/present/rest"
	"github.com/hangarhq/hangar/internal/present/rest/middleware"
	"github.com/hangarhq/hangar/internal/service"
	"github.com/hangarhq/hangar/internal/usecase"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	if conf.Server.EnableTrace {
		shutdown, err := tracing.Setup(ctx, conf.Server.TraceEndpoint)
		if err != nil {
			slog.Error("failed to set up tracing", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer shutdown(ctx)
	}

	db, err := database.NewPostgres(conf.Server.PostgresDsn)
	if err != nil {
		panic("failed to connect database")
	}

	err = database.MigratePostgres(db)
	if err != nil {
		panic("failed to migrate database")
	}

	rdb := database.NewRedis(conf.Server.RedisAddr, "", conf.Server.RedisDB)
	events := service.NewEventService(rdb)

	airplaneRepo := repository.NewAirplaneRepository(db)
	var airplanes usecase.AirplaneRepository = airplaneRepo
	if conf.Server.MemcachedAddr != "" {
		mc := database.NewMemcached(conf.Server.MemcachedAddr)
		airplanes = repository.NewCachedAirplaneRepository(airplaneRepo, mc)
	}
	userRepo := repository.NewUserRepository(db)

	airplaneUC := usecase.NewAirplaneUsecase(airplanes, events)
	userUC := usecase.NewUserUsecase(userRepo, events)
	authUC := usecase.NewAuthUsecase(userRepo, conf.Auth.SigningKey, conf.Auth.Issuer)

	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	if conf.Server.EnableTrace {
		e.Use(otelecho.Middleware("hangar"))
	}

	authmw := middleware.NewAuthMiddleware(authUC)
	handler := rest.NewHandler(airplaneUC, userUC, authUC, events)
	handler.RegisterRoutes(e, authmw)

	e.Logger.Fatal(e.Start(conf.Server.ListenAddr))
}

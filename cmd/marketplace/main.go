package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/zlog"

	authhandler "github.com/gwalharshu287-lang/Service-get/internal/api/handlers/auth"
	bookinghandler "github.com/gwalharshu287-lang/Service-get/internal/api/handlers/booking"
	chathandler "github.com/gwalharshu287-lang/Service-get/internal/api/handlers/chat"
	notifhandler "github.com/gwalharshu287-lang/Service-get/internal/api/handlers/notification"
	prohandler "github.com/gwalharshu287-lang/Service-get/internal/api/handlers/pro"
	searchhandler "github.com/gwalharshu287-lang/Service-get/internal/api/handlers/search"
	"github.com/gwalharshu287-lang/Service-get/internal/api/router"
	"github.com/gwalharshu287-lang/Service-get/internal/api/server"
	"github.com/gwalharshu287-lang/Service-get/internal/config"
	bookingrepo "github.com/gwalharshu287-lang/Service-get/internal/repository/booking"
	chatrepo "github.com/gwalharshu287-lang/Service-get/internal/repository/chat"
	notifrepo "github.com/gwalharshu287-lang/Service-get/internal/repository/notification"
	prorepo "github.com/gwalharshu287-lang/Service-get/internal/repository/pro"
	bookingsvc "github.com/gwalharshu287-lang/Service-get/internal/service/booking"
	chatsvc "github.com/gwalharshu287-lang/Service-get/internal/service/chat"
	notifsvc "github.com/gwalharshu287-lang/Service-get/internal/service/notification"
	prosvc "github.com/gwalharshu287-lang/Service-get/internal/service/pro"
	searchsvc "github.com/gwalharshu287-lang/Service-get/internal/service/search"
	sessionsvc "github.com/gwalharshu287-lang/Service-get/internal/service/session"
	"github.com/gwalharshu287-lang/Service-get/internal/worker"
	"github.com/gwalharshu287-lang/Service-get/pkg/gemini"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	bookings := bookingrepo.NewRepository()
	notifications := notifrepo.NewRepository()
	pros := prorepo.NewRepository(prorepo.Seed())
	chats := chatrepo.NewRepository(chatrepo.SeedMessages(), chatrepo.SeedCallLogs())

	sched := worker.NewScheduler()
	ai := gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.Timeout)

	notifService := notifsvc.NewService(notifications, cfg.Notifications.TTL)
	bookingService := bookingsvc.NewService(bookings, pros, notifService)
	sessionService := sessionsvc.NewService(sched, notifService, pros, cfg.Notifications)
	proService := prosvc.NewService(pros, ai)
	searchService := searchsvc.NewService(ai, pros)
	chatService := chatsvc.NewService(chats, sched, pros, cfg.Calls.ConnectDelay)

	handlers := router.Handlers{
		Auth:         authhandler.NewHandler(sessionService, val),
		Booking:      bookinghandler.NewHandler(bookingService, val),
		Chat:         chathandler.NewHandler(chatService, val),
		Notification: notifhandler.NewHandler(notifService),
		Pro:          prohandler.NewHandler(proService, val),
		Search:       searchhandler.NewHandler(searchService, val),
	}

	r := router.New(handlers, sessionService)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	sched.Stop()
	notifService.Stop()
}

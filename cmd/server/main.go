package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/cine-estrella/box-office/internal/booking"
	"github.com/cine-estrella/box-office/internal/config"
	"github.com/cine-estrella/box-office/internal/handler"
	"github.com/cine-estrella/box-office/internal/queue"
	"github.com/cine-estrella/box-office/internal/repository"
	"github.com/cine-estrella/box-office/internal/router"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on process environment")
	}

	cfg := config.Load()
	ledger := booking.New(cfg.CinemaName)

	// Redis is optional: without it the cache and rate limiter pass through.
	rdb := config.NewRedisClient()

	users := repository.NewUserRepo()
	tokens := repository.NewTokenRepo()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewRequestValidator()

	router.Register(e, cfg, router.Handlers{
		Auth:   handler.NewAuthHandler(cfg, users, tokens),
		Public: handler.NewPublicHandler(ledger),
		Ticket: handler.NewTicketHandler(ledger, users),
		Admin:  handler.NewAdminHandler(ledger),
	}, rdb)

	// Ticket events are consumed in-process and appended to the audit log.
	go func() {
		if err := queue.StartTicketConsumer(); err != nil {
			log.Printf("ticket consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("%s listening on %s (env=%s)", cfg.CinemaName, addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

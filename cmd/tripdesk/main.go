package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/pitabwire/frame"
	"github.com/pitabwire/frame/config"

	tdconfig "github.com/tripdesk/tripdesk/config"
	"github.com/tripdesk/tripdesk/internal/fulfillment/handler"
	"github.com/tripdesk/tripdesk/internal/httputil"
	"github.com/tripdesk/tripdesk/pkg/booking"
	"github.com/tripdesk/tripdesk/pkg/events"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadWithOIDC[tdconfig.HookConfig](ctx)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	eventRef := cfg.GetEventsQueueName()
	eventURL := cfg.GetEventsQueueURL()

	ctx, srv := frame.NewService(
		frame.WithConfig(&cfg),
		frame.WithName("tripdesk-fulfillment"),
		frame.WithRegisterPublisher(eventRef, eventURL),
	)
	defer srv.Stop(ctx)

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("loading timezone %q: %v", cfg.Timezone, err)
	}

	refdata, err := booking.NewLoader(cfg.RefDataDir)
	if err != nil {
		log.Fatalf("loading reference data: %v", err)
	}
	if err := refdata.Load(); err != nil {
		log.Printf("warning: loading reference data overrides: %v", err)
	}
	go func() {
		if err := refdata.WatchAndReload(ctx.Done()); err != nil {
			log.Printf("warning: reference data watcher: %v", err)
		}
	}()

	pub := events.NewPublisher(srv.QueueManager(), "fulfillment", eventRef)
	dispatcher := booking.NewDispatcher(refdata, booking.NewClock(loc), pub)

	h := handler.NewFulfillmentHandler(dispatcher, refdata)
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	srv.Init(ctx, frame.WithHTTPHandler(httputil.H2C(mux)))

	if err := srv.Run(ctx, ""); err != nil {
		log.Fatalf("service exited: %v", err)
	}
}

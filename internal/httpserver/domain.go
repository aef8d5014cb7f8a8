package httpserver

import (
	"context"
	"fmt"

	"journal-ripples/internal/automation"
	"journal-ripples/internal/middleware"
	plannerHTTP "journal-ripples/internal/planner/delivery/http"
	plannerRepo "journal-ripples/internal/planner/repository/sqlite"
	plannerUC "journal-ripples/internal/planner/usecase"
	rippleHTTP "journal-ripples/internal/ripple/delivery/http"
	rippleRepo "journal-ripples/internal/ripple/repository/sqlite"
	rippleUC "journal-ripples/internal/ripple/usecase"
	"journal-ripples/internal/webhook"
)

// registerDomainRoutes migrates the schema and wires every domain.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.db, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) registerDomainRoutes(ctx context.Context) error {
	// Schema
	if err := plannerRepo.Migrate(ctx, srv.db); err != nil {
		return fmt.Errorf("planner migration: %w", err)
	}
	if err := rippleRepo.Migrate(ctx, srv.db); err != nil {
		return fmt.Errorf("ripple migration: %w", err)
	}

	mw := middleware.New(srv.l)
	api := srv.gin.Group("/api/v1")

	// Planner: tasks, appointments and important events
	planner := plannerUC.New(plannerRepo.New(srv.db, srv.l), srv.l, srv.publisher)
	plannerHTTP.RegisterRoutes(api, plannerHTTP.New(srv.l, planner), mw)

	// Ripples and suggested tasks
	ripples := rippleUC.New(rippleRepo.New(srv.db, srv.l), planner, srv.l)
	rippleHTTP.RegisterRoutes(api, rippleHTTP.New(srv.l, ripples), mw)

	srv.l.Infof(ctx, "Planner and ripple domains registered")

	// Entry events from the journal
	if !srv.webhookEnabled {
		srv.l.Infof(ctx, "Entry webhook disabled, skipping POST /webhook/entries")
		return nil
	}
	orchestrator := automation.New(ripples, planner, srv.lexicon, srv.dates,
		automation.Options{DirectUpserts: srv.directUpserts}, srv.l)
	wh := webhook.NewHandler(orchestrator, srv.webhookSecurity, srv.l)
	srv.gin.POST("/webhook/entries", wh.HandleEntryEvent)
	srv.l.Infof(ctx, "Entry webhook route registered at POST /webhook/entries")

	return nil
}

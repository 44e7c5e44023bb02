package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mindhub/internal/chatbot"
	"mindhub/internal/config"
	"mindhub/internal/content"
	"mindhub/internal/email"
	"mindhub/internal/jobs"
	"mindhub/internal/metrics"
	"mindhub/internal/screening"
	"mindhub/internal/server"
	"mindhub/internal/store"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	// Optional content overrides
	contentCfg, err := config.LoadContent(cfg.ContentFile)
	if err != nil {
		log.Fatalf("Failed to load content file: %v", err)
	}
	if contentCfg != nil {
		log.Printf("Loaded content overrides from %s", cfg.ContentFile)
	}

	matcher, err := chatbot.NewMatcher(contentCfg.ChatRules(), contentCfg.ChatDefaults())
	if err != nil {
		log.Fatalf("Invalid chatbot rules: %v", err)
	}

	topics := contentCfg.GetForumTopics(content.ForumTopics())
	conversations := store.NewConversations()

	deps := server.Deps{
		Matcher:       matcher,
		Questionnaire: screening.PHQ9(),
		Conversations: conversations,
		Forum:         store.NewForum(topics, content.SeedPosts(time.Now())),
		Appointments:  store.NewAppointments(),
		Resources:     contentCfg.GetResources(content.Resources()),
		Notifier:      email.NewNotifier(cfg),
	}

	metrics.Init()

	// Evict idle chat conversations
	pruner := jobs.NewConversationPruner(conversations, cfg.ChatPruneInterval, cfg.ChatIdleTTL)
	go pruner.Start(ctx)

	srv := server.New(cfg)
	if err := srv.RegisterRoutes(ctx, deps); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}
	if !cfg.IsOIDCEnabled() {
		log.Println("OIDC authentication is disabled. Set OIDC_ISSUER and OIDC_CLIENT_ID to enable.")
	}

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancel()
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}

package server

import (
	"context"
	"log"

	"mindhub/internal/chatbot"
	"mindhub/internal/email"
	"mindhub/internal/handlers"
	"mindhub/internal/handlers/api"
	"mindhub/internal/middleware"
	"mindhub/internal/models"
	"mindhub/internal/screening"
	"mindhub/internal/store"
)

// Deps are the long-lived components the routes serve.
type Deps struct {
	Matcher       *chatbot.Matcher
	Questionnaire *screening.Questionnaire
	Conversations *store.Conversations
	Forum         *store.Forum
	Appointments  *store.Appointments
	Resources     []models.Resource
	Notifier      *email.Notifier
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(ctx context.Context, d Deps) error {
	authMiddleware := middleware.NewAuthMiddleware()

	authHandler := handlers.NewAuthHandler(s.Cfg)
	dashboardHandler := handlers.NewDashboardHandler(s.Cfg)
	chatHandler := handlers.NewChatHandler(s.Cfg, d.Matcher, d.Conversations)
	screeningHandler := handlers.NewScreeningHandler(s.Cfg, d.Questionnaire)
	appointmentHandler := handlers.NewAppointmentHandler(s.Cfg, d.Appointments, d.Notifier)
	forumHandler := handlers.NewForumHandler(s.Cfg, d.Forum)
	resourcesHandler := handlers.NewResourcesHandler(s.Cfg, d.Resources)

	// Credential login is always on; OIDC is an extra when configured.
	s.App.Get("/login", authHandler.LoginPage)
	s.App.Post("/login", authHandler.Login)
	s.App.Get("/logout", authHandler.Logout)

	if s.Cfg.IsOIDCEnabled() {
		if err := authHandler.EnableOIDC(ctx); err != nil {
			log.Printf("Warning: Failed to initialize OIDC auth: %v", err)
		} else {
			s.App.Get("/auth/login", authHandler.OIDCLogin)
			s.App.Get("/auth/callback", authHandler.OIDCCallback)
		}
	}

	// Pages
	s.App.Get("/", authMiddleware.RequireAuth, dashboardHandler.Index)
	s.App.Get("/chatbot", authMiddleware.RequireAuth, chatHandler.Index)
	s.App.Post("/chatbot", authMiddleware.RequireAuth, chatHandler.Send)
	s.App.Post("/chatbot/reset", authMiddleware.RequireAuth, chatHandler.Reset)
	s.App.Get("/screening", authMiddleware.RequireAuth, screeningHandler.Index)
	s.App.Post("/screening/next", authMiddleware.RequireAuth, screeningHandler.Next)
	s.App.Post("/screening/back", authMiddleware.RequireAuth, screeningHandler.Back)
	s.App.Post("/screening/restart", authMiddleware.RequireAuth, screeningHandler.Restart)
	s.App.Get("/appointment", authMiddleware.RequireAuth, appointmentHandler.Form)
	s.App.Post("/appointment", authMiddleware.RequireAuth, appointmentHandler.Submit)
	s.App.Get("/forum", authMiddleware.RequireAuth, forumHandler.Index)
	s.App.Get("/forum/:topic", authMiddleware.RequireAuth, forumHandler.Topic)
	s.App.Post("/forum/:topic/posts", authMiddleware.RequireAuth, forumHandler.CreatePost)
	s.App.Post("/forum/:topic/posts/:id/replies", authMiddleware.RequireAuth, forumHandler.Reply)
	s.App.Get("/resources", authMiddleware.RequireAuth, resourcesHandler.Index)

	// JSON API
	apiChat := api.NewChatHandler(d.Matcher)
	apiScreening := api.NewScreeningHandler(d.Questionnaire)
	apiAppointments := api.NewAppointmentHandler(d.Appointments, d.Notifier, s.Cfg.AppointmentDelay)
	apiForum := api.NewForumHandler(d.Forum)
	apiResources := api.NewResourcesHandler(d.Resources)
	apiHealth := api.NewHealthHandler(d.Conversations)

	s.App.Get("/api/health", apiHealth.Check)
	s.App.Get("/api/session", authMiddleware.OptionalAuth, api.Session)

	apiGroup := s.App.Group("/api", authMiddleware.RequireAPIAuth)
	apiGroup.Get("/chat", apiChat.Greeting)
	apiGroup.Post("/chat", apiChat.Reply)
	apiGroup.Get("/screening/questions", apiScreening.Questions)
	apiGroup.Post("/screening/score", apiScreening.Score)
	apiGroup.Get("/appointments", apiAppointments.List)
	apiGroup.Post("/appointments", apiAppointments.Create)
	apiGroup.Get("/forum/topics", apiForum.Topics)
	apiGroup.Get("/forum/topics/:topic/posts", apiForum.Posts)
	apiGroup.Post("/forum/topics/:topic/posts", apiForum.CreatePost)
	apiGroup.Post("/forum/topics/:topic/posts/:id/replies", apiForum.Reply)
	apiGroup.Get("/resources", apiResources.List)

	return nil
}

package routes

import (
	"github.com/djruiz44/wrestling-hub/handlers"
	"github.com/djruiz44/wrestling-hub/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRoutes wires the full HTTP surface: public pages, auth, the schedule,
// and the authenticated profile/match/event routes.
func SetupRoutes(
	router *chi.Mux,
	sessionSecret string,
	pagesHandler *handlers.PagesHandler,
	authHandler *handlers.AuthHandler,
	contactHandler *handlers.ContactHandler,
	eventHandler *handlers.EventHandler,
	matchHandler *handlers.MatchHandler,
	profileHandler *handlers.ProfileHandler,
	collegeHandler *handlers.CollegeHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Public pages
	router.Get("/", pagesHandler.Home)
	router.Get("/about", pagesHandler.About)
	router.Get("/donations", pagesHandler.Donations)
	router.Get("/contact", pagesHandler.Contact)

	// Public API
	router.Post("/contact", contactHandler.Submit)
	router.Get("/schedule", eventHandler.Schedule)
	router.Get("/colleges", collegeHandler.List)
	router.Post("/register", authHandler.Register)
	router.Post("/login", authHandler.Login)
	router.Get("/ws/schedule", webSocketHandler.ServeSchedule)

	router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Authenticated routes
	router.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate([]byte(sessionSecret)))

		r.Post("/logout", authHandler.Logout)
		r.Post("/events", eventHandler.Create)
		r.Get("/profile", profileHandler.Get)
		r.Put("/profile", profileHandler.Update)
		r.Get("/matches", matchHandler.List)
		r.Post("/matches", matchHandler.Create)
		r.Post("/colleges/{collegeID}/logo", collegeHandler.UploadLogo)
	})
}

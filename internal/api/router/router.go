package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/gwalharshu287-lang/Service-get/internal/api/handlers/auth"
	"github.com/gwalharshu287-lang/Service-get/internal/api/handlers/booking"
	"github.com/gwalharshu287-lang/Service-get/internal/api/handlers/chat"
	"github.com/gwalharshu287-lang/Service-get/internal/api/handlers/notification"
	"github.com/gwalharshu287-lang/Service-get/internal/api/handlers/pro"
	"github.com/gwalharshu287-lang/Service-get/internal/api/handlers/search"
	"github.com/gwalharshu287-lang/Service-get/internal/api/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth         *auth.Handler
	Booking      *booking.Handler
	Chat         *chat.Handler
	Notification *notification.Handler
	Pro          *pro.Handler
	Search       *search.Handler
}

// New builds the HTTP engine. Routes under /api require a session token
// except for login, the professional directory and search.
func New(h Handlers, sessions middleware.SessionResolver) *ginext.Engine {
	e := ginext.New()
	e.Use(middleware.CORS())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api")
	{
		api.POST("/auth/login", h.Auth.Login)

		api.GET("/pros", h.Pro.List)
		api.GET("/pros/:id", h.Pro.Get)
		api.POST("/pros", h.Pro.Onboard)
		api.POST("/pros/bio", h.Pro.DraftBio)

		api.POST("/search", h.Search.Search)
	}

	authed := api.Group("")
	authed.Use(middleware.Auth(sessions))
	{
		authed.POST("/auth/logout", h.Auth.Logout)
		authed.GET("/auth/me", h.Auth.Me)
		authed.POST("/favorites/:proId", h.Auth.ToggleFavorite)

		authed.POST("/bookings", h.Booking.Create)
		authed.GET("/bookings", h.Booking.List)
		authed.PUT("/bookings/:id/status", h.Booking.UpdateStatus)

		authed.GET("/notifications", h.Notification.List)
		authed.DELETE("/notifications/:id", h.Notification.Dismiss)

		authed.GET("/chats/:proId/messages", h.Chat.Messages)
		authed.POST("/chats/:proId/messages", h.Chat.Send)

		authed.POST("/calls", h.Chat.StartCall)
		authed.GET("/calls/history", h.Chat.CallHistory)
		authed.GET("/calls/:id", h.Chat.Call)
		authed.POST("/calls/:id/end", h.Chat.EndCall)
	}

	return e
}

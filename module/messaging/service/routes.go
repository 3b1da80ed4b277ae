package service

import (
	mid "conectify/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the messaging surface under /api. Everything here
// requires a bearer token; the live channel is mounted separately.
func RegisterRoutes(r gin.IRoutes, h *Handler) {
	mid.POST(r, "/api/messages", h.SendMessage, mid.RouteOpt{IsAuth: true})
	mid.GET(r, "/api/messages/:otherUserId", h.ListMessages, mid.RouteOpt{IsAuth: true})
	mid.POST(r, "/api/messages/read", h.MarkConversationRead, mid.RouteOpt{IsAuth: true})
	mid.GET(r, "/api/conversations", h.ListConversations, mid.RouteOpt{IsAuth: true})
	mid.GET(r, "/api/notifications", h.ListNotifications, mid.RouteOpt{IsAuth: true})
	mid.POST(r, "/api/notifications/:id/read", h.MarkNotificationRead, mid.RouteOpt{IsAuth: true})
}

package middleware

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fathoor/calendra/internal/services"
)

func DatabaseMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("db", db)
		c.Next()
	}
}

func EventServiceMiddleware(eventService *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("event_service", eventService)
		c.Next()
	}
}

func GetEventService(c *gin.Context) *services.EventService {
	svc, exists := c.Get("event_service")
	if !exists {
		return nil
	}
	return svc.(*services.EventService)
}

package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hotel-frontdesk/service-frontdesk/internal/common/middleware"
)

// NewRouter builds the front-desk engine: global middleware plus every
// /api/v1 route. Each handler adds the /api/v1 prefix itself.
func NewRouter(desk Desk, log *zap.Logger, corsOrigins ...string) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware(corsOrigins...))
	router.Use(middleware.SecurityHeadersMiddleware())

	NewBoardHandler(desk).RegisterRoutes(&router.RouterGroup)
	NewGuestHandler(desk).RegisterRoutes(&router.RouterGroup)
	NewRoomHandler(desk).RegisterRoutes(&router.RouterGroup)
	NewBookingHandler(desk).RegisterRoutes(&router.RouterGroup)
	return router
}

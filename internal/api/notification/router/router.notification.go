package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/munkhjinod/erxes-api/internal/api/middleware"
	notifhdl "github.com/munkhjinod/erxes-api/internal/api/notification/handler"
	"github.com/munkhjinod/erxes-api/internal/api/router"
)

// Register đăng ký các route thông báo của người dùng
func Register(v1 fiber.Router, _ *router.Router) error {
	notificationHandler, err := notifhdl.NewNotificationHandler()
	if err != nil {
		return err
	}

	authManager, err := middleware.NewAuthManager()
	if err != nil {
		return err
	}
	protected := []fiber.Handler{authManager.Authenticate}

	router.RegisterRouteWithMiddleware(v1, "/notifications", "GET", "/", protected, notificationHandler.HandleListMyNotifications)
	router.RegisterRouteWithMiddleware(v1, "/notifications", "GET", "/unread-count", protected, notificationHandler.HandleUnreadCount)
	router.RegisterRouteWithMiddleware(v1, "/notifications", "PUT", "/:id/read", protected, notificationHandler.HandleMarkAsRead)

	return nil
}

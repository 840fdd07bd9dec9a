package router

import (
	"github.com/gofiber/fiber/v3"

	authhdl "github.com/munkhjinod/erxes-api/internal/api/auth/handler"
	basehdl "github.com/munkhjinod/erxes-api/internal/api/base/handler"
	"github.com/munkhjinod/erxes-api/internal/api/middleware"
	"github.com/munkhjinod/erxes-api/internal/api/router"
)

// Register đăng ký các route xác thực và phân quyền.
// Đăng nhập, đăng ký và health check là route công khai
func Register(v1 fiber.Router, _ *router.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return err
	}
	roleHandler, err := authhdl.NewRoleHandler()
	if err != nil {
		return err
	}
	systemHandler := basehdl.NewSystemHandler()

	authManager, err := middleware.NewAuthManager()
	if err != nil {
		return err
	}
	protected := []fiber.Handler{authManager.Authenticate}

	// Route công khai
	v1.Get("/health", systemHandler.HandleHealth)
	v1.Post("/auth/register", userHandler.HandleRegister)
	v1.Post("/auth/login", userHandler.HandleLogin)

	// Route cần đăng nhập
	router.RegisterRouteWithMiddleware(v1, "/users", "POST", "/logout", protected, userHandler.HandleLogout)
	router.RegisterRouteWithMiddleware(v1, "/users", "GET", "/me", protected, userHandler.HandleMe)
	router.RegisterRouteWithMiddleware(v1, "/users", "POST", "/block", protected, userHandler.HandleBlockUser)
	router.RegisterRouteWithMiddleware(v1, "/users", "POST", "/unblock", protected, userHandler.HandleUnBlockUser)

	router.RegisterRouteWithMiddleware(v1, "/roles", "POST", "/", protected, roleHandler.HandleCreateRole)
	router.RegisterRouteWithMiddleware(v1, "/roles", "GET", "/", protected, roleHandler.HandleListRoles)
	router.RegisterRouteWithMiddleware(v1, "/permissions", "GET", "/", protected, roleHandler.HandleListPermissions)
	router.RegisterRouteWithMiddleware(v1, "/roles", "POST", "/permissions", protected, roleHandler.HandleAssignPermission)
	router.RegisterRouteWithMiddleware(v1, "/roles", "POST", "/assign", protected, roleHandler.HandleAssignRole)

	return nil
}

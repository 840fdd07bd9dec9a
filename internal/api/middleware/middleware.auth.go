package middleware

// Package middleware - xác thực JWT và nạp người dùng vào context của request.

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "github.com/munkhjinod/erxes-api/internal/api/auth/models"
	authsvc "github.com/munkhjinod/erxes-api/internal/api/auth/service"
	"github.com/munkhjinod/erxes-api/internal/common"
	"github.com/munkhjinod/erxes-api/internal/global"
	"github.com/munkhjinod/erxes-api/internal/utility"
)

// userContextKey là key của người dùng trong Locals của request
const userContextKey = "currentUser"

// AuthManager xác thực token và nạp người dùng cho các route cần đăng nhập
type AuthManager struct {
	userService *authsvc.UserService
}

// NewAuthManager tạo middleware xác thực mới
func NewAuthManager() (*AuthManager, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, err
	}
	return &AuthManager{userService: userService}, nil
}

// Authenticate kiểm tra JWT trong header Authorization, đối chiếu với danh sách
// token còn hiệu lực của người dùng rồi gắn người dùng vào request
func (m *AuthManager) Authenticate(c fiber.Ctx) error {
	tokenString := strings.TrimSpace(strings.TrimPrefix(c.Get("Authorization"), "Bearer"))
	if tokenString == "" {
		return HandleErrorResponse(c, common.ErrTokenMissing)
	}

	userIDHex, err := utility.VerifyToken(global.MongoDB_ServerConfig.JwtSecret, tokenString)
	if err != nil {
		return HandleErrorResponse(c, common.ErrTokenInvalid)
	}

	userID, err := primitive.ObjectIDFromHex(userIDHex)
	if err != nil {
		return HandleErrorResponse(c, common.ErrTokenInvalid)
	}

	user, err := m.userService.FindOneById(c.Context(), userID)
	if err != nil {
		return HandleErrorResponse(c, common.ErrTokenInvalid)
	}

	if user.IsBlock {
		return HandleErrorResponse(c, common.NewError(
			common.ErrCodeAuthCredentials,
			"Tài khoản đã bị khóa: "+user.BlockNote,
			common.StatusForbidden,
			nil,
		))
	}

	// Token phải còn trong danh sách token đang hiệu lực (chưa logout)
	valid := false
	for _, t := range user.Tokens {
		if t.JwtToken == tokenString {
			valid = true
			break
		}
	}
	if !valid {
		return HandleErrorResponse(c, common.ErrTokenInvalid)
	}

	c.Locals(userContextKey, &user)
	return c.Next()
}

// GetUserFromContext lấy người dùng đã xác thực khỏi request, nil nếu chưa đăng nhập
func GetUserFromContext(c fiber.Ctx) *authmodels.User {
	user, ok := c.Locals(userContextKey).(*authmodels.User)
	if !ok {
		return nil
	}
	return user
}

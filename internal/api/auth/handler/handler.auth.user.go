// Package handler xử lý các request HTTP của domain auth.
package handler

import (
	"github.com/gofiber/fiber/v3"

	authdto "github.com/munkhjinod/erxes-api/internal/api/auth/dto"
	authsvc "github.com/munkhjinod/erxes-api/internal/api/auth/service"
	basehdl "github.com/munkhjinod/erxes-api/internal/api/base/handler"
	"github.com/munkhjinod/erxes-api/internal/api/middleware"
	"github.com/munkhjinod/erxes-api/internal/common"
	"github.com/munkhjinod/erxes-api/internal/logger"
)

// UserHandler xử lý đăng ký, đăng nhập và quản lý tài khoản
type UserHandler struct {
	userService *authsvc.UserService
}

// NewUserHandler tạo handler người dùng mới
func NewUserHandler() (*UserHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, err
	}
	return &UserHandler{userService: userService}, nil
}

// HandleRegister đăng ký tài khoản mới
func (h *UserHandler) HandleRegister(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input authdto.UserRegisterInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		if err := basehdl.ValidateInput(&input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.Register(c.Context(), &input)
		if err == nil {
			logger.LogAction(user.ID.Hex(), "register", map[string]interface{}{"email": user.Email})
		}
		basehdl.HandleResponse(c, user, err)
		return nil
	})
}

// HandleLogin đăng nhập và nhận JWT gắn với thiết bị (hwid)
func (h *UserHandler) HandleLogin(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input authdto.UserLoginInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		if err := basehdl.ValidateInput(&input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.Login(c.Context(), &input)
		if err == nil {
			logger.LogAction(user.ID.Hex(), "login", map[string]interface{}{"hwid": input.Hwid})
		}
		basehdl.HandleResponse(c, user, err)
		return nil
	})
}

// HandleLogout hủy token của thiết bị hiện tại
func (h *UserHandler) HandleLogout(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		user := middleware.GetUserFromContext(c)
		if user == nil {
			basehdl.HandleResponse(c, nil, common.ErrUnauthenticated)
			return nil
		}

		var input authdto.UserLogoutInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		err := h.userService.Logout(c.Context(), user.ID, &input)
		basehdl.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleMe trả về thông tin người dùng đang đăng nhập
func (h *UserHandler) HandleMe(c fiber.Ctx) error {
	user := middleware.GetUserFromContext(c)
	if user == nil {
		basehdl.HandleResponse(c, nil, common.ErrUnauthenticated)
		return nil
	}
	basehdl.HandleResponse(c, user, nil)
	return nil
}

// HandleBlockUser khóa một tài khoản, chỉ dành cho quản trị
func (h *UserHandler) HandleBlockUser(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		actor := middleware.GetUserFromContext(c)
		if actor == nil || !actor.IsOwner {
			basehdl.HandleResponse(c, nil, common.ErrPermissionDenied)
			return nil
		}

		var input authdto.BlockUserInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		if err := basehdl.ValidateInput(&input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.BlockUser(c.Context(), &input)
		if err == nil {
			logger.LogAction(actor.ID.Hex(), "block_user", map[string]interface{}{"target": input.Email})
		}
		basehdl.HandleResponse(c, user, err)
		return nil
	})
}

// HandleUnBlockUser mở khóa một tài khoản, chỉ dành cho quản trị
func (h *UserHandler) HandleUnBlockUser(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		actor := middleware.GetUserFromContext(c)
		if actor == nil || !actor.IsOwner {
			basehdl.HandleResponse(c, nil, common.ErrPermissionDenied)
			return nil
		}

		var input authdto.UnBlockUserInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.UnBlockUser(c.Context(), &input)
		basehdl.HandleResponse(c, user, err)
		return nil
	})
}

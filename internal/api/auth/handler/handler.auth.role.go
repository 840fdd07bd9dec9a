package handler

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	authdto "github.com/munkhjinod/erxes-api/internal/api/auth/dto"
	authsvc "github.com/munkhjinod/erxes-api/internal/api/auth/service"
	basehdl "github.com/munkhjinod/erxes-api/internal/api/base/handler"
	"github.com/munkhjinod/erxes-api/internal/api/middleware"
	"github.com/munkhjinod/erxes-api/internal/common"
)

// RoleHandler xử lý quản trị vai trò và gán quyền
type RoleHandler struct {
	roleService           *authsvc.RoleService
	permissionService     *authsvc.PermissionService
	rolePermissionService *authsvc.RolePermissionService
	userRoleService       *authsvc.UserRoleService
	accessService         *authsvc.AccessService
}

// NewRoleHandler tạo handler vai trò mới
func NewRoleHandler() (*RoleHandler, error) {
	roleService, err := authsvc.NewRoleService()
	if err != nil {
		return nil, err
	}
	permissionService, err := authsvc.NewPermissionService()
	if err != nil {
		return nil, err
	}
	rolePermissionService, err := authsvc.NewRolePermissionService()
	if err != nil {
		return nil, err
	}
	userRoleService, err := authsvc.NewUserRoleService()
	if err != nil {
		return nil, err
	}
	accessService, err := authsvc.NewAccessService()
	if err != nil {
		return nil, err
	}

	return &RoleHandler{
		roleService:           roleService,
		permissionService:     permissionService,
		rolePermissionService: rolePermissionService,
		userRoleService:       userRoleService,
		accessService:         accessService,
	}, nil
}

// requireOwner chặn mọi thao tác quản trị vai trò với người không phải chủ hệ thống
func (h *RoleHandler) requireOwner(c fiber.Ctx) bool {
	actor := middleware.GetUserFromContext(c)
	if actor == nil || !actor.IsOwner {
		basehdl.HandleResponse(c, nil, common.ErrPermissionDenied)
		return false
	}
	return true
}

// HandleCreateRole tạo vai trò mới
func (h *RoleHandler) HandleCreateRole(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		if !h.requireOwner(c) {
			return nil
		}

		var input authdto.RoleCreateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		if err := basehdl.ValidateInput(&input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		role, err := h.roleService.Create(c.Context(), &input)
		basehdl.HandleResponse(c, role, err)
		return nil
	})
}

// HandleListRoles liệt kê toàn bộ vai trò
func (h *RoleHandler) HandleListRoles(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		if !h.requireOwner(c) {
			return nil
		}

		roles, err := h.roleService.Find(c.Context(), bson.M{}, nil)
		basehdl.HandleResponse(c, roles, err)
		return nil
	})
}

// HandleListPermissions liệt kê toàn bộ quyền đã seed
func (h *RoleHandler) HandleListPermissions(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		if !h.requireOwner(c) {
			return nil
		}

		permissions, err := h.permissionService.Find(c.Context(), bson.M{}, nil)
		basehdl.HandleResponse(c, permissions, err)
		return nil
	})
}

// HandleAssignPermission gán một quyền cho vai trò
func (h *RoleHandler) HandleAssignPermission(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		if !h.requireOwner(c) {
			return nil
		}

		var input authdto.RolePermissionCreateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		if err := basehdl.ValidateInput(&input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		rolePermission, err := h.rolePermissionService.Create(c.Context(), &input)
		basehdl.HandleResponse(c, rolePermission, err)
		return nil
	})
}

// HandleAssignRole gán vai trò cho người dùng, đồng thời làm mới cache quyền
func (h *RoleHandler) HandleAssignRole(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		if !h.requireOwner(c) {
			return nil
		}

		var input authdto.UserRoleCreateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		if err := basehdl.ValidateInput(&input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		userRole, err := h.userRoleService.Create(c.Context(), &input)
		if err == nil {
			h.accessService.InvalidateUser(input.UserID)
		}
		basehdl.HandleResponse(c, userRole, err)
		return nil
	})
}

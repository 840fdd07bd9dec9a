// Package authsvc - service kiểm tra quyền truy cập (Access).
package authsvc

import (
	"context"
	"fmt"
	"time"

	models "github.com/munkhjinod/erxes-api/internal/api/auth/models"
	"github.com/munkhjinod/erxes-api/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
)

// AccessService kiểm tra user có được phép thực hiện một action hay không.
// Kết quả permission theo user được cache 5 phút để giảm số lần truy vấn role/permission.
type AccessService struct {
	userService           *UserService
	permissionService     *PermissionService
	rolePermissionService *RolePermissionService
	userRoleService       *UserRoleService
	cache                 *utility.Cache
}

// NewAccessService tạo mới AccessService
func NewAccessService() (*AccessService, error) {
	userService, err := NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	permissionService, err := NewPermissionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create permission service: %v", err)
	}
	rolePermissionService, err := NewRolePermissionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create role permission service: %v", err)
	}
	userRoleService, err := NewUserRoleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user role service: %v", err)
	}

	return &AccessService{
		userService:           userService,
		permissionService:     permissionService,
		rolePermissionService: rolePermissionService,
		userRoleService:       userRoleService,
		cache:                 utility.NewCache(5*time.Minute, 10*time.Minute),
	}, nil
}

// Can kiểm tra user có được phép thực hiện action không.
// Owner bỏ qua mọi kiểm tra permission.
func (s *AccessService) Can(ctx context.Context, action string, user *models.User) (bool, error) {
	if user == nil {
		return false, nil
	}
	if user.IsOwner {
		return true, nil
	}

	permissions, err := s.getUserPermissions(ctx, user.ID.Hex())
	if err != nil {
		return false, err
	}

	allowed, found := permissions[action]
	return found && allowed, nil
}

// getUserPermissions lấy map action -> allowed của user từ cache hoặc database.
// Gộp permission từ tất cả role của user.
func (s *AccessService) getUserPermissions(ctx context.Context, userID string) (map[string]bool, error) {
	cacheKey := "user_permissions:" + userID

	// Kiểm tra cache trước để tối ưu hiệu suất
	if cached, found := s.cache.Get(cacheKey); found {
		return cached.(map[string]bool), nil
	}

	permissions := make(map[string]bool)

	// Lấy tất cả role của user
	findRoles, err := s.userRoleService.Find(ctx, bson.M{"userId": utility.String2ObjectID(userID)}, nil)
	if err != nil {
		return nil, err
	}

	// Duyệt qua từng vai trò để lấy permissions
	for _, userRole := range findRoles {
		findRolePermissions, err := s.rolePermissionService.Find(ctx, bson.M{"roleId": userRole.RoleID}, nil)
		if err != nil {
			continue
		}

		for _, rolePermission := range findRolePermissions {
			permission, err := s.permissionService.FindOneById(ctx, rolePermission.PermissionID)
			if err != nil {
				continue
			}
			// Một role cho phép là đủ
			if rolePermission.Allowed || permissions[permission.Name] {
				permissions[permission.Name] = rolePermission.Allowed || permissions[permission.Name]
			} else if _, seen := permissions[permission.Name]; !seen {
				permissions[permission.Name] = false
			}
		}
	}

	// Lưu vào cache để sử dụng cho các lần sau
	s.cache.Set(cacheKey, permissions)
	return permissions, nil
}

// InvalidateUser xóa cache permission của một user (gọi khi thay đổi role/permission)
func (s *AccessService) InvalidateUser(userID string) {
	s.cache.Delete("user_permissions:" + userID)
}

package boardsvc

import (
	"context"
	"fmt"

	authmodels "github.com/munkhjinod/erxes-api/internal/api/auth/models"
	"github.com/munkhjinod/erxes-api/internal/api/board/models"
	"github.com/munkhjinod/erxes-api/internal/common"
)

// PermissionResolver kiểm tra quyền thao tác trên thẻ theo bảng PermissionMap
type PermissionResolver struct {
	authorizer Authorizer
}

// NewPermissionResolver tạo resolver quyền trên một Authorizer
func NewPermissionResolver(authorizer Authorizer) *PermissionResolver {
	return &PermissionResolver{authorizer: authorizer}
}

// CheckPermission xác nhận người dùng được phép chạy một thao tác trên loại thẻ.
// Thiếu người dùng là lỗi xác thực. Cặp (loại thẻ, thao tác) không có trong
// bảng là lỗi cấu hình, phải nổ ngay chứ không được bỏ qua.
// Chủ hệ thống (isOwner) luôn được phép
func (r *PermissionResolver) CheckPermission(ctx context.Context, itemType models.ItemType, user *authmodels.User, mutation models.ItemMutation) error {
	if user == nil {
		return common.ErrUnauthenticated
	}

	byMutation, ok := models.PermissionMap[itemType]
	if !ok {
		return fmt.Errorf("%w: %s.%s", common.ErrUnknownPermission, itemType, mutation)
	}
	action, ok := byMutation[mutation]
	if !ok {
		return fmt.Errorf("%w: %s.%s", common.ErrUnknownPermission, itemType, mutation)
	}

	if user.IsOwner {
		return nil
	}

	allowed, err := r.authorizer.Can(ctx, action, user)
	if err != nil {
		return err
	}
	if !allowed {
		return fmt.Errorf("%w: %s", common.ErrPermissionDenied, action)
	}

	return nil
}

// Test kiểm tra quyền thao tác trên thẻ.
package boardsvc

import (
	"context"
	"errors"
	"testing"

	authmodels "github.com/munkhjinod/erxes-api/internal/api/auth/models"
	"github.com/munkhjinod/erxes-api/internal/api/board/models"
	"github.com/munkhjinod/erxes-api/internal/common"
)

func TestCheckPermission_ThieuNguoiDung(t *testing.T) {
	resolver := NewPermissionResolver(&fakeAuthorizer{granted: map[string]bool{}})

	err := resolver.CheckPermission(context.Background(), models.ItemTypeDeal, nil, models.MutationAdd)
	if !errors.Is(err, common.ErrUnauthenticated) {
		t.Errorf("muốn lỗi Unauthenticated, có %v", err)
	}
}

func TestCheckPermission_ChuHeThongLuonQua(t *testing.T) {
	// Authorizer từ chối mọi action nhưng isOwner vẫn phải qua
	resolver := NewPermissionResolver(&fakeAuthorizer{granted: map[string]bool{}})
	owner := &authmodels.User{Name: "owner", IsOwner: true}

	if err := resolver.CheckPermission(context.Background(), models.ItemTypeDeal, owner, models.MutationRemove); err != nil {
		t.Errorf("chủ hệ thống bị chặn: %v", err)
	}
}

func TestCheckPermission_KhongCoQuyenBiTuChoi(t *testing.T) {
	resolver := NewPermissionResolver(&fakeAuthorizer{granted: map[string]bool{"dealsEdit": true}})
	user := &authmodels.User{Name: "member"}

	// có dealsEdit thì qua
	if err := resolver.CheckPermission(context.Background(), models.ItemTypeDeal, user, models.MutationEdit); err != nil {
		t.Errorf("người có quyền dealsEdit bị chặn: %v", err)
	}

	// không có dealsRemove thì bị từ chối
	err := resolver.CheckPermission(context.Background(), models.ItemTypeDeal, user, models.MutationRemove)
	if !errors.Is(err, common.ErrPermissionDenied) {
		t.Errorf("muốn lỗi PermissionDenied, có %v", err)
	}
}

func TestCheckPermission_ThaoTacKhongCoTrongBang(t *testing.T) {
	resolver := NewPermissionResolver(&fakeAuthorizer{granted: map[string]bool{}})
	user := &authmodels.User{Name: "member", IsOwner: true}

	// isOwner không cứu được cặp (loại, thao tác) không tồn tại trong bảng
	err := resolver.CheckPermission(context.Background(), models.ItemTypeDeal, user, models.ItemMutation("duplicate"))
	if !errors.Is(err, common.ErrUnknownPermission) {
		t.Errorf("muốn lỗi UnknownPermission, có %v", err)
	}
}

func TestPermissionMap_DuMoiLoaiVaThaoTac(t *testing.T) {
	mutations := []models.ItemMutation{
		models.MutationAdd, models.MutationEdit, models.MutationChange,
		models.MutationUpdateOrder, models.MutationRemove, models.MutationWatch,
	}

	for _, itemType := range models.AllItemTypes {
		byMutation, ok := models.PermissionMap[itemType]
		if !ok {
			t.Fatalf("PermissionMap thiếu loại thẻ %s", itemType)
		}
		for _, mutation := range mutations {
			if _, ok := byMutation[mutation]; !ok {
				t.Errorf("PermissionMap thiếu %s.%s", itemType, mutation)
			}
		}
	}
}

// Package checklistsvc - service quản lý checklist gắn với board item.
package checklistsvc

import (
	"context"
	"fmt"

	models "github.com/munkhjinod/erxes-api/internal/api/checklist/models"
	basesvc "github.com/munkhjinod/erxes-api/internal/api/base/service"
	"github.com/munkhjinod/erxes-api/internal/common"
	"github.com/munkhjinod/erxes-api/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChecklistService là cấu trúc chứa các phương thức liên quan đến checklist
type ChecklistService struct {
	*basesvc.BaseServiceMongoImpl[models.Checklist]
}

// NewChecklistService tạo mới ChecklistService
func NewChecklistService() (*ChecklistService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Checklists)
	if !exist {
		return nil, fmt.Errorf("failed to get checklists collection: %v", common.ErrNotFound)
	}

	return &ChecklistService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Checklist](collection),
	}, nil
}

// RemoveChecklists xóa tất cả checklist của một item (cascade khi xóa item).
// Item không có checklist nào là no-op.
func (s *ChecklistService) RemoveChecklists(ctx context.Context, contentType string, contentTypeID primitive.ObjectID) error {
	filter := bson.M{
		"contentType":   contentType,
		"contentTypeId": contentTypeID,
	}
	_, err := s.BaseServiceMongoImpl.DeleteMany(ctx, filter)
	return err
}

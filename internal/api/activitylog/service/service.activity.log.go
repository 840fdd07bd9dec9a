// Package activitysvc - service ghi activity log (lịch sử hoạt động trên item).
package activitysvc

import (
	"context"
	"fmt"

	models "github.com/munkhjinod/erxes-api/internal/api/activitylog/models"
	basesvc "github.com/munkhjinod/erxes-api/internal/api/base/service"
	"github.com/munkhjinod/erxes-api/internal/common"
	"github.com/munkhjinod/erxes-api/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityLogService là cấu trúc chứa các phương thức ghi activity log
type ActivityLogService struct {
	*basesvc.BaseServiceMongoImpl[models.ActivityLog]
}

// NewActivityLogService tạo mới ActivityLogService
func NewActivityLogService() (*ActivityLogService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ActivityLogs)
	if !exist {
		return nil, fmt.Errorf("failed to get activity_logs collection: %v", common.ErrNotFound)
	}

	return &ActivityLogService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.ActivityLog](collection),
	}, nil
}

// RecordMovement ghi một sự kiện di chuyển item giữa hai stage.
// Ghi đồng bộ - lỗi phải được surface trước khi caller báo thành công.
func (s *ActivityLogService) RecordMovement(ctx context.Context, contentType string, contentID primitive.ObjectID, userID primitive.ObjectID, content models.MovementContent) error {
	log := models.ActivityLog{
		ID:          primitive.NewObjectID(),
		ContentType: contentType,
		ContentID:   contentID,
		Action:      models.ActivityActionMoved,
		Content:     content,
		CreatedBy:   userID,
	}
	_, err := s.BaseServiceMongoImpl.InsertOne(ctx, log)
	return err
}

// RemoveActivityLogs xóa tất cả activity log của một item (cascade khi xóa item)
func (s *ActivityLogService) RemoveActivityLogs(ctx context.Context, contentType string, contentID primitive.ObjectID) error {
	filter := bson.M{
		"contentType": contentType,
		"contentId":   contentID,
	}
	_, err := s.BaseServiceMongoImpl.DeleteMany(ctx, filter)
	return err
}

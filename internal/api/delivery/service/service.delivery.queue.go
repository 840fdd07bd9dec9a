// Package deliverysvc chứa service data access cho domain Delivery (queue).
package deliverysvc

import (
	"context"
	"fmt"
	"time"

	basesvc "github.com/munkhjinod/erxes-api/internal/api/base/service"
	deliverymodels "github.com/munkhjinod/erxes-api/internal/api/delivery/models"
	"github.com/munkhjinod/erxes-api/internal/common"
	"github.com/munkhjinod/erxes-api/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DeliveryQueueService là service quản lý Delivery Queue (enqueue, pending, status).
type DeliveryQueueService struct {
	*basesvc.BaseServiceMongoImpl[deliverymodels.DeliveryQueueItem]
}

// NewDeliveryQueueService tạo mới DeliveryQueueService
func NewDeliveryQueueService() (*DeliveryQueueService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.DeliveryQueue)
	if !exist {
		return nil, fmt.Errorf("failed to get delivery_queue collection: %v", common.ErrNotFound)
	}

	return &DeliveryQueueService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[deliverymodels.DeliveryQueueItem](collection),
	}, nil
}

// Enqueue thêm một item vào queue với trạng thái pending
func (s *DeliveryQueueService) Enqueue(ctx context.Context, item deliverymodels.DeliveryQueueItem) (deliverymodels.DeliveryQueueItem, error) {
	item.ID = primitive.NewObjectID()
	item.Status = deliverymodels.StatusPending
	item.RetryCount = 0
	if item.MaxRetries == 0 {
		item.MaxRetries = 3
	}
	item.NextAttemptAt = time.Now().Unix()
	return s.BaseServiceMongoImpl.InsertOne(ctx, item)
}

// FindPending tìm các items có status="pending" hoặc "processing" quá lâu (stale)
func (s *DeliveryQueueService) FindPending(ctx context.Context, limit int) ([]deliverymodels.DeliveryQueueItem, error) {
	now := time.Now().Unix()
	staleThreshold := now - 300 // 5 phút trước

	filter := bson.M{
		"$and": []bson.M{
			{
				"$or": []bson.M{
					{"status": deliverymodels.StatusPending},
					{
						"status":    deliverymodels.StatusProcessing,
						"updatedAt": bson.M{"$lt": staleThreshold * 1000},
					},
				},
			},
			{"nextAttemptAt": bson.M{"$lte": now}},
		},
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}}).
		SetLimit(int64(limit))

	return s.BaseServiceMongoImpl.Find(ctx, filter, opts)
}

// MarkSent đánh dấu item đã gửi thành công
func (s *DeliveryQueueService) MarkSent(ctx context.Context, id primitive.ObjectID) error {
	update := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status":    deliverymodels.StatusSent,
			"lastError": "",
		},
	}
	_, err := s.BaseServiceMongoImpl.UpdateById(ctx, id, update)
	return err
}

// MarkFailed ghi nhận lần gửi thất bại, tăng retry count với backoff lũy tiến.
// Hết số lần retry thì chuyển sang trạng thái failed.
func (s *DeliveryQueueService) MarkFailed(ctx context.Context, item deliverymodels.DeliveryQueueItem, sendErr error) error {
	retryCount := item.RetryCount + 1
	status := deliverymodels.StatusPending
	if retryCount >= item.MaxRetries {
		status = deliverymodels.StatusFailed
	}

	backoff := int64(60) << uint(item.RetryCount) // 60s, 120s, 240s...
	update := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status":        status,
			"retryCount":    retryCount,
			"nextAttemptAt": time.Now().Unix() + backoff,
			"lastError":     sendErr.Error(),
		},
	}
	_, err := s.BaseServiceMongoImpl.UpdateById(ctx, item.ID, update)
	return err
}

// CleanupFailedItems xóa các items failed đã quá N ngày
func (s *DeliveryQueueService) CleanupFailedItems(ctx context.Context, daysOld int) (int64, error) {
	cutoffTime := time.Now().UnixMilli() - int64(daysOld)*24*60*60*1000
	filter := bson.M{
		"status":    deliverymodels.StatusFailed,
		"updatedAt": bson.M{"$lt": cutoffTime},
	}
	return s.BaseServiceMongoImpl.DeleteMany(ctx, filter)
}

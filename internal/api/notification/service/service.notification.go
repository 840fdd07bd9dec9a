package notifsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/munkhjinod/erxes-api/internal/api/base/service"
	deliverymodels "github.com/munkhjinod/erxes-api/internal/api/delivery/models"
	deliverysvc "github.com/munkhjinod/erxes-api/internal/api/delivery/service"
	"github.com/munkhjinod/erxes-api/internal/api/notification/models"
	"github.com/munkhjinod/erxes-api/internal/common"
	"github.com/munkhjinod/erxes-api/internal/global"
	"github.com/munkhjinod/erxes-api/internal/logger"
)

// NotificationService phát thông báo: lưu một dòng cho mỗi người nhận
// và đẩy một mục vào hàng đợi gửi đi cho từng kênh
type NotificationService struct {
	basesvc.BaseServiceMongo[models.Notification]
	queueService *deliverysvc.DeliveryQueueService
}

// NewNotificationService tạo service thông báo mới
func NewNotificationService() (*NotificationService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Notifications)
	if !exist {
		return nil, fmt.Errorf("failed to get notifications collection: %v", common.ErrNotFound)
	}

	queueService, err := deliverysvc.NewDeliveryQueueService()
	if err != nil {
		return nil, err
	}

	return &NotificationService{
		BaseServiceMongo: basesvc.NewBaseServiceMongo[models.Notification](collection),
		queueService:     queueService,
	}, nil
}

// Send lưu thông báo cho từng người nhận trong payload và đưa vào hàng đợi gửi email.
// Trả về các dòng thông báo đã lưu. Payload không có người nhận thì không làm gì.
func (s *NotificationService) Send(ctx context.Context, payload models.NotificationPayload) ([]models.Notification, error) {
	if len(payload.Receivers) == 0 {
		return nil, nil
	}

	saved := make([]models.Notification, 0, len(payload.Receivers))
	for _, receiverID := range payload.Receivers {
		row := models.Notification{
			NotifType:     payload.NotifType,
			Title:         payload.Title,
			Content:       payload.Content,
			Link:          payload.Link,
			Action:        payload.Action,
			ContentType:   payload.ContentType,
			ContentTypeID: payload.ContentTypeID,
			CreatedUserID: payload.CreatedUserID,
			ReceiverID:    receiverID,
		}

		inserted, err := s.InsertOne(ctx, row)
		if err != nil {
			return saved, err
		}
		saved = append(saved, inserted)

		_, err = s.queueService.Enqueue(ctx, deliverymodels.DeliveryQueueItem{
			NotificationID: inserted.ID,
			ReceiverID:     receiverID,
			ChannelType:    deliverymodels.ChannelEmail,
			Subject:        payload.Title,
			Body:           payload.Action + " " + payload.Content,
			Link:           payload.Link,
		})
		if err != nil {
			logger.LogError(err, "notification.enqueue", map[string]interface{}{
				"notificationId": inserted.ID.Hex(),
				"receiverId":     receiverID.Hex(),
			})
		}
	}

	return saved, nil
}

// MarkAsRead đánh dấu một thông báo đã đọc cho đúng người nhận
func (s *NotificationService) MarkAsRead(ctx context.Context, notificationID primitive.ObjectID, receiverID primitive.ObjectID) error {
	filter := bson.M{"_id": notificationID, "receiverId": receiverID}
	update := bson.M{"$set": bson.M{"isRead": true}}
	_, err := s.UpdateOne(ctx, filter, update, nil)
	return err
}

// UnreadCount đếm số thông báo chưa đọc của một người dùng
func (s *NotificationService) UnreadCount(ctx context.Context, receiverID primitive.ObjectID) (int64, error) {
	return s.CountDocuments(ctx, bson.M{"receiverId": receiverID, "isRead": false})
}

// FindByReceiver lấy danh sách thông báo của một người dùng, mới nhất trước
func (s *NotificationService) FindByReceiver(ctx context.Context, receiverID primitive.ObjectID, limit int64) ([]models.Notification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	return s.Find(ctx, bson.M{"receiverId": receiverID}, opts)
}

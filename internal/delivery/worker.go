// Package delivery chạy worker nền gửi các thông báo đã xếp hàng ra kênh ngoài.
package delivery

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	deliverymodels "github.com/munkhjinod/erxes-api/internal/api/delivery/models"
	deliverysvc "github.com/munkhjinod/erxes-api/internal/api/delivery/service"
	"github.com/munkhjinod/erxes-api/internal/delivery/channels"
	"github.com/munkhjinod/erxes-api/internal/logger"
)

const (
	defaultPollInterval = 15 * time.Second
	defaultBatchSize    = 20
)

// EmailResolver trả về địa chỉ email của một người dùng theo ID.
// Được tiêm từ tầng khởi tạo để tránh phụ thuộc vòng vào module auth.
type EmailResolver func(ctx context.Context, userID primitive.ObjectID) (string, error)

// Worker đọc hàng đợi gửi đi theo chu kỳ và đẩy từng mục ra kênh tương ứng
type Worker struct {
	queueService *deliverysvc.DeliveryQueueService
	email        *channels.EmailChannel
	resolveEmail EmailResolver
	pollInterval time.Duration
	batchSize    int
}

// NewWorker tạo worker gửi thông báo. email có thể nil khi SMTP chưa cấu hình,
// khi đó các mục email sẽ bị đánh dấu thất bại.
func NewWorker(queueService *deliverysvc.DeliveryQueueService, email *channels.EmailChannel, resolveEmail EmailResolver) *Worker {
	return &Worker{
		queueService: queueService,
		email:        email,
		resolveEmail: resolveEmail,
		pollInterval: defaultPollInterval,
		batchSize:    defaultBatchSize,
	}
}

// Start chạy vòng lặp xử lý cho tới khi context bị hủy
func (w *Worker) Start(ctx context.Context) {
	log := logger.GetAppLogger()
	log.Info("Delivery worker đã khởi động")

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("Delivery worker dừng lại")
			return
		case <-ticker.C:
			w.processBatch(ctx)
		}
	}
}

// processBatch lấy một lô mục chờ gửi và xử lý từng mục
func (w *Worker) processBatch(ctx context.Context) {
	items, err := w.queueService.FindPending(ctx, w.batchSize)
	if err != nil {
		logger.LogError(err, "delivery.find_pending", nil)
		return
	}

	for _, item := range items {
		if err := w.deliver(ctx, item); err != nil {
			logger.LogError(err, "delivery.send", map[string]interface{}{
				"itemId":     item.ID.Hex(),
				"receiverId": item.ReceiverID.Hex(),
				"channel":    item.ChannelType,
			})
			if markErr := w.queueService.MarkFailed(ctx, item, err); markErr != nil {
				logger.LogError(markErr, "delivery.mark_failed", nil)
			}
			continue
		}

		if err := w.queueService.MarkSent(ctx, item.ID); err != nil {
			logger.LogError(err, "delivery.mark_sent", nil)
		}
	}
}

// deliver gửi một mục ra kênh tương ứng
func (w *Worker) deliver(ctx context.Context, item deliverymodels.DeliveryQueueItem) error {
	switch item.ChannelType {
	case deliverymodels.ChannelEmail:
		if w.email == nil {
			return fmt.Errorf("kênh email chưa được cấu hình")
		}
		to, err := w.resolveEmail(ctx, item.ReceiverID)
		if err != nil {
			return fmt.Errorf("không tìm được email người nhận: %w", err)
		}
		return w.email.Send(to, item.Subject, item.Body, item.Link)
	default:
		return fmt.Errorf("kênh không được hỗ trợ: %s", item.ChannelType)
	}
}

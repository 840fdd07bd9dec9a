package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/munkhjinod/erxes-api/internal/api/base/handler"
	"github.com/munkhjinod/erxes-api/internal/api/middleware"
	notifsvc "github.com/munkhjinod/erxes-api/internal/api/notification/service"
	"github.com/munkhjinod/erxes-api/internal/common"
)

// NotificationHandler xử lý các request về thông báo của người dùng
type NotificationHandler struct {
	notificationService *notifsvc.NotificationService
}

// NewNotificationHandler tạo handler thông báo mới
func NewNotificationHandler() (*NotificationHandler, error) {
	notificationService, err := notifsvc.NewNotificationService()
	if err != nil {
		return nil, err
	}
	return &NotificationHandler{notificationService: notificationService}, nil
}

// HandleListMyNotifications trả về thông báo mới nhất của người đang đăng nhập
func (h *NotificationHandler) HandleListMyNotifications(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		user := middleware.GetUserFromContext(c)
		if user == nil {
			basehdl.HandleResponse(c, nil, common.ErrUnauthenticated)
			return nil
		}

		limit := int64(20)
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || parsed <= 0 || parsed > 100 {
				basehdl.HandleResponse(c, nil, common.ErrInvalidFormat)
				return nil
			}
			limit = parsed
		}

		notifications, err := h.notificationService.FindByReceiver(c.Context(), user.ID, limit)
		basehdl.HandleResponse(c, notifications, err)
		return nil
	})
}

// HandleMarkAsRead đánh dấu một thông báo của người đang đăng nhập là đã đọc
func (h *NotificationHandler) HandleMarkAsRead(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		user := middleware.GetUserFromContext(c)
		if user == nil {
			basehdl.HandleResponse(c, nil, common.ErrUnauthenticated)
			return nil
		}

		notificationID, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			basehdl.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}

		err = h.notificationService.MarkAsRead(c.Context(), notificationID, user.ID)
		basehdl.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleUnreadCount trả về số thông báo chưa đọc của người đang đăng nhập
func (h *NotificationHandler) HandleUnreadCount(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		user := middleware.GetUserFromContext(c)
		if user == nil {
			basehdl.HandleResponse(c, nil, common.ErrUnauthenticated)
			return nil
		}

		count, err := h.notificationService.UnreadCount(c.Context(), user.ID)
		basehdl.HandleResponse(c, fiber.Map{"unreadCount": count}, err)
		return nil
	})
}

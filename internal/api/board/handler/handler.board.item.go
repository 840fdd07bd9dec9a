package handler

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/munkhjinod/erxes-api/internal/api/base/handler"
	boarddto "github.com/munkhjinod/erxes-api/internal/api/board/dto"
	"github.com/munkhjinod/erxes-api/internal/api/board/models"
	boardsvc "github.com/munkhjinod/erxes-api/internal/api/board/service"
	"github.com/munkhjinod/erxes-api/internal/api/middleware"
	"github.com/munkhjinod/erxes-api/internal/common"
	"github.com/munkhjinod/erxes-api/internal/logger"
)

// ItemHandler xử lý các request về thẻ công việc trên bảng
type ItemHandler struct {
	itemService *boardsvc.ItemService
}

// NewItemHandler tạo handler thẻ mới trên các adapter Mongo thật
func NewItemHandler() (*ItemHandler, error) {
	itemService, err := boardsvc.NewItemServiceMongo()
	if err != nil {
		return nil, err
	}
	return &ItemHandler{itemService: itemService}, nil
}

// parseItemType đọc loại thẻ từ path param và kiểm tra hợp lệ
func parseItemType(c fiber.Ctx) (models.ItemType, error) {
	itemType := models.ItemType(c.Params("type"))
	for _, t := range models.AllItemTypes {
		if itemType == t {
			return itemType, nil
		}
	}
	return "", common.NewError(
		common.ErrCodeValidationInput,
		"Loại thẻ không được hỗ trợ: "+string(itemType),
		common.StatusBadRequest,
		nil,
	)
}

// parseItemID đọc ID thẻ từ path param
func parseItemID(c fiber.Ctx) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return primitive.NilObjectID, common.ErrInvalidFormat
	}
	return id, nil
}

// HandleAddItem tạo thẻ mới
func (h *ItemHandler) HandleAddItem(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		user := middleware.GetUserFromContext(c)

		itemType, err := parseItemType(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		var input boarddto.ItemAddInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		input.Type = itemType
		if err := basehdl.ValidateInput(&input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		item, err := h.itemService.AddItem(c.Context(), user, &input)
		if err == nil && user != nil {
			logger.LogMutation(user.ID.Hex(), string(itemType), item.ID.Hex(), "add", item.Name)
		}
		basehdl.HandleResponse(c, item, err)
		return nil
	})
}

// HandleEditItem sửa một thẻ
func (h *ItemHandler) HandleEditItem(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		user := middleware.GetUserFromContext(c)

		itemType, err := parseItemType(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		itemID, err := parseItemID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		var input boarddto.ItemEditInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		item, err := h.itemService.EditItem(c.Context(), user, itemType, itemID, &input)
		basehdl.HandleResponse(c, item, err)
		return nil
	})
}

// HandleChangeItem chuyển thẻ sang stage khác
func (h *ItemHandler) HandleChangeItem(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		user := middleware.GetUserFromContext(c)

		itemType, err := parseItemType(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		itemID, err := parseItemID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		var input boarddto.ItemChangeInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		if err := basehdl.ValidateInput(&input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		item, err := h.itemService.ChangeItem(c.Context(), user, itemType, itemID, &input)
		basehdl.HandleResponse(c, item, err)
		return nil
	})
}

// HandleUpdateOrder ghi thứ tự mới cho các thẻ trong một stage
func (h *ItemHandler) HandleUpdateOrder(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		user := middleware.GetUserFromContext(c)

		itemType, err := parseItemType(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		var input boarddto.ItemsOrderInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		if err := basehdl.ValidateInput(&input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		err = h.itemService.UpdateItemsOrder(c.Context(), user, itemType, &input)
		basehdl.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleRemoveItem xóa một thẻ cùng các dữ liệu phụ thuộc
func (h *ItemHandler) HandleRemoveItem(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		user := middleware.GetUserFromContext(c)

		itemType, err := parseItemType(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		itemID, err := parseItemID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		err = h.itemService.RemoveItem(c.Context(), user, itemType, itemID)
		if err == nil && user != nil {
			logger.LogMutation(user.ID.Hex(), string(itemType), itemID.Hex(), "remove", "")
		}
		basehdl.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleWatchItem bật/tắt theo dõi một thẻ cho người đang đăng nhập
func (h *ItemHandler) HandleWatchItem(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		user := middleware.GetUserFromContext(c)

		itemType, err := parseItemType(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		itemID, err := parseItemID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		var input boarddto.ItemWatchInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		item, err := h.itemService.WatchItem(c.Context(), user, itemType, itemID, input.IsAdd)
		basehdl.HandleResponse(c, item, err)
		return nil
	})
}

// HandleGetItem đọc một thẻ theo ID
func (h *ItemHandler) HandleGetItem(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		itemID, err := parseItemID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		item, err := h.itemService.GetItem(c.Context(), itemID)
		basehdl.HandleResponse(c, item, err)
		return nil
	})
}

package dto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/munkhjinod/erxes-api/internal/api/board/models"
)

// ItemAddInput dữ liệu tạo một thẻ công việc mới
type ItemAddInput struct {
	Type            models.ItemType      `json:"type" validate:"required"`
	Name            string               `json:"name" validate:"required,no_xss"`
	StageID         primitive.ObjectID   `json:"stageId" validate:"required"`
	Description     string               `json:"description"`
	AssignedUserIDs []primitive.ObjectID `json:"assignedUserIds"`
	LabelIDs        []primitive.ObjectID `json:"labelIds"`
	ProductsData    []models.ProductData `json:"productsData"`
	CompanyIDs      []primitive.ObjectID `json:"companyIds"`
	CustomerIDs     []primitive.ObjectID `json:"customerIds"`
}

// ItemEditInput dữ liệu sửa một thẻ, trường nil giữ nguyên giá trị cũ
type ItemEditInput struct {
	Name            *string               `json:"name,omitempty"`
	Description     *string               `json:"description,omitempty"`
	AssignedUserIDs *[]primitive.ObjectID `json:"assignedUserIds,omitempty"`
	LabelIDs        *[]primitive.ObjectID `json:"labelIds,omitempty"`
	ProductsData    *[]models.ProductData `json:"productsData,omitempty"`
}

// ItemChangeInput dữ liệu chuyển thẻ sang stage khác
type ItemChangeInput struct {
	DestinationStageID primitive.ObjectID `json:"destinationStageId" validate:"required"`
}

// ItemsOrderInput dữ liệu sắp xếp lại các thẻ trong một stage
type ItemsOrderInput struct {
	StageID primitive.ObjectID  `json:"stageId" validate:"required"`
	Orders  []models.OrderEntry `json:"orders" validate:"required,dive"`
}

// ItemWatchInput bật/tắt theo dõi một thẻ
type ItemWatchInput struct {
	IsAdd bool `json:"isAdd"`
}

package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductData là một dòng sản phẩm gắn trên thẻ deal
type ProductData struct {
	ProductID primitive.ObjectID `json:"productId" bson:"productId"`
	Quantity  int64              `json:"quantity,omitempty" bson:"quantity,omitempty"`
	UnitPrice float64            `json:"unitPrice,omitempty" bson:"unitPrice,omitempty"`
	Amount    float64            `json:"amount,omitempty" bson:"amount,omitempty"`
}

// Item là một thẻ công việc (deal, ticket, task, growthHack) trên bảng Kanban.
// InitialStageID là stage lúc tạo, không bao giờ đổi sau đó
type Item struct {
	ID              primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Type            ItemType             `json:"type" bson:"type" validate:"required"`
	Name            string               `json:"name" bson:"name" validate:"required,no_xss"`
	StageID         primitive.ObjectID   `json:"stageId" bson:"stageId" validate:"required"`
	InitialStageID  primitive.ObjectID   `json:"initialStageId,omitempty" bson:"initialStageId,omitempty"`
	Order           float64              `json:"order,omitempty" bson:"order,omitempty"`
	Description     string               `json:"description,omitempty" bson:"description,omitempty"`
	AssignedUserIDs []primitive.ObjectID `json:"assignedUserIds,omitempty" bson:"assignedUserIds,omitempty"`
	WatchedUserIDs  []primitive.ObjectID `json:"watchedUserIds,omitempty" bson:"watchedUserIds,omitempty"`
	LabelIDs        []primitive.ObjectID `json:"labelIds,omitempty" bson:"labelIds,omitempty"`
	ProductsData    []ProductData        `json:"productsData,omitempty" bson:"productsData,omitempty"`
	CreatedBy       primitive.ObjectID   `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	ModifiedBy      primitive.ObjectID   `json:"modifiedBy,omitempty" bson:"modifiedBy,omitempty"`
	ModifiedAt      int64                `json:"modifiedAt,omitempty" bson:"modifiedAt,omitempty"`
	CreatedAt       int64                `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt       int64                `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// OrderEntry là một cặp (thẻ, thứ tự mới) khi sắp xếp lại trong một stage
type OrderEntry struct {
	ID    primitive.ObjectID `json:"_id" bson:"_id" validate:"required"`
	Order float64            `json:"order" bson:"order"`
}

// MovementResult là kết quả theo dõi di chuyển của một thẻ giữa các stage
type MovementResult struct {
	Action  string
	Content string
	Moved   bool
}

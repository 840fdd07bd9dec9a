package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Board là vùng chứa cấp cao nhất của hệ thống bảng Kanban
type Board struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name" validate:"required,no_xss"`
	CreatedBy primitive.ObjectID `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	CreatedAt int64              `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt int64              `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// Pipeline thuộc về đúng một Board. WatchedUserIDs là những người theo dõi
// cấp pipeline, nhận mọi thông báo của các thẻ bên trong
type Pipeline struct {
	ID             primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Name           string               `json:"name" bson:"name" validate:"required,no_xss"`
	BoardID        primitive.ObjectID   `json:"boardId" bson:"boardId" validate:"required"`
	WatchedUserIDs []primitive.ObjectID `json:"watchedUserIds,omitempty" bson:"watchedUserIds,omitempty"`
	CreatedBy      primitive.ObjectID   `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	CreatedAt      int64                `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt      int64                `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// Stage thuộc về đúng một Pipeline
type Stage struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name       string             `json:"name" bson:"name" validate:"required,no_xss"`
	PipelineID primitive.ObjectID `json:"pipelineId" bson:"pipelineId" validate:"required"`
	Order      float64            `json:"order,omitempty" bson:"order,omitempty"`
	CreatedAt  int64              `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt  int64              `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// Hierarchy là kết quả phân giải chuỗi Stage -> Pipeline -> Board của một thẻ
type Hierarchy struct {
	Stage    Stage
	Pipeline Pipeline
	Board    Board
}

package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PipelineLabel là nhãn màu gắn lên thẻ, phạm vi theo từng pipeline
type PipelineLabel struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name       string             `json:"name" bson:"name" validate:"required,no_xss"`
	ColorCode  string             `json:"colorCode" bson:"colorCode"`
	PipelineID primitive.ObjectID `json:"pipelineId" bson:"pipelineId" validate:"required"`
	CreatedBy  primitive.ObjectID `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	CreatedAt  int64              `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt  int64              `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

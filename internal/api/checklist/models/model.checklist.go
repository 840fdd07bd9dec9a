// Package models - Checklist thuộc domain checklist.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChecklistItem một dòng trong checklist
type ChecklistItem struct {
	Content   string `json:"content" bson:"content"`
	IsChecked bool   `json:"isChecked" bson:"isChecked"`
}

// Checklist danh sách việc cần làm gắn với một board item.
// ContentType là loại item (deal/ticket/task/growthHack), ContentTypeID là ID item.
type Checklist struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ContentType   string             `json:"contentType" bson:"contentType"`
	ContentTypeID primitive.ObjectID `json:"contentTypeId" bson:"contentTypeId"`
	Title         string             `json:"title" bson:"title"`
	Items         []ChecklistItem    `json:"items" bson:"items"`
	CreatedBy     primitive.ObjectID `json:"createdBy" bson:"createdBy"`
	CreatedAt     int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64              `json:"updatedAt" bson:"updatedAt"`
}

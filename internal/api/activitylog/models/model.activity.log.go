// Package models - ActivityLog, AuditLog thuộc domain activitylog.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các action của activity log
const (
	ActivityActionMoved  = "moved"
	ActivityActionCreate = "create"
)

// MovementContent nội dung của một sự kiện di chuyển item giữa các stage
type MovementContent struct {
	OldStageID         primitive.ObjectID `json:"oldStageId" bson:"oldStageId"`
	DestinationStageID primitive.ObjectID `json:"destinationStageId" bson:"destinationStageId"`
	Text               string             `json:"text" bson:"text"`
}

// ActivityLog dòng lịch sử hoạt động trên một item.
// ContentType là loại item, ContentID là ID item.
type ActivityLog struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ContentType string             `json:"contentType" bson:"contentType"`
	ContentID   primitive.ObjectID `json:"contentId" bson:"contentId"`
	Action      string             `json:"action" bson:"action"`
	Content     MovementContent    `json:"content" bson:"content"`
	CreatedBy   primitive.ObjectID `json:"createdBy" bson:"createdBy"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}

package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationPayload là nội dung thông báo cần phát cho một nhóm người nhận
type NotificationPayload struct {
	CreatedUserID primitive.ObjectID   `json:"createdUserId" bson:"createdUserId"`
	Title         string               `json:"title" bson:"title"`
	ContentType   string               `json:"contentType" bson:"contentType"`
	ContentTypeID primitive.ObjectID   `json:"contentTypeId" bson:"contentTypeId"`
	NotifType     string               `json:"notifType" bson:"notifType"`
	Action        string               `json:"action" bson:"action"`
	Content       string               `json:"content" bson:"content"`
	Link          string               `json:"link" bson:"link"`
	Receivers     []primitive.ObjectID `json:"receivers" bson:"receivers"`
}

// Notification là một dòng thông báo đã lưu cho một người nhận cụ thể
type Notification struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	NotifType     string             `json:"notifType" bson:"notifType"`
	Title         string             `json:"title" bson:"title"`
	Content       string             `json:"content" bson:"content"`
	Link          string             `json:"link" bson:"link"`
	Action        string             `json:"action" bson:"action"`
	ContentType   string             `json:"contentType" bson:"contentType"`
	ContentTypeID primitive.ObjectID `json:"contentTypeId" bson:"contentTypeId"`
	CreatedUserID primitive.ObjectID `json:"createdUserId" bson:"createdUserId"`
	ReceiverID    primitive.ObjectID `json:"receiverId" bson:"receiverId"`
	IsRead        bool               `json:"isRead" bson:"isRead"`
	CreatedAt     int64              `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt     int64              `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

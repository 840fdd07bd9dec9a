// Package models - DeliveryQueueItem thuộc domain delivery.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các trạng thái của delivery queue item
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusSent       = "sent"
	StatusFailed     = "failed"
)

// Các kênh gửi được hỗ trợ
const (
	ChannelEmail = "email"
)

// DeliveryQueueItem một message chờ gửi ra kênh ngoài (email).
// Worker poll theo (status, nextAttemptAt) và retry với backoff.
type DeliveryQueueItem struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	NotificationID primitive.ObjectID `json:"notificationId" bson:"notificationId"`
	ReceiverID     primitive.ObjectID `json:"receiverId" bson:"receiverId"`
	ChannelType    string             `json:"channelType" bson:"channelType"`
	Subject        string             `json:"subject" bson:"subject"`
	Body           string             `json:"body" bson:"body"`
	Link           string             `json:"link" bson:"link"`
	Status         string             `json:"status" bson:"status"`
	RetryCount     int                `json:"retryCount" bson:"retryCount"`
	MaxRetries     int                `json:"maxRetries" bson:"maxRetries"`
	NextAttemptAt  int64              `json:"nextAttemptAt" bson:"nextAttemptAt"`
	LastError      string             `json:"lastError,omitempty" bson:"lastError,omitempty"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}

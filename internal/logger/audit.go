package logger

import (
	"github.com/sirupsen/logrus"
)

// LogAction ghi một hành động nghiệp vụ vào audit trail.
// action là tên hành động (vd: "deals.change"), fields là chi tiết kèm theo.
func LogAction(userID string, action string, fields map[string]interface{}) {
	entry := GetAuditLogger().WithFields(logrus.Fields{
		"user_id": userID,
		"action":  action,
	})
	if len(fields) > 0 {
		entry = entry.WithFields(logrus.Fields(fields))
	}
	entry.Info("audit")
}

// LogMutation ghi một mutation trên item (create/update/delete) kèm mô tả thay đổi
func LogMutation(userID string, itemType string, itemID string, mutation string, desc interface{}) {
	GetAuditLogger().WithFields(logrus.Fields{
		"user_id":   userID,
		"item_type": itemType,
		"item_id":   itemID,
		"mutation":  mutation,
		"changes":   desc,
	}).Info("mutation")
}

// LogError ghi lỗi hệ thống kèm ngữ cảnh
func LogError(err error, context string, fields map[string]interface{}) {
	entry := GetErrorLogger().WithFields(logrus.Fields{
		"context": context,
	})
	if len(fields) > 0 {
		entry = entry.WithFields(logrus.Fields(fields))
	}
	entry.WithError(err).Error("system error")
}

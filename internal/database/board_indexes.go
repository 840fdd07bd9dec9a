// Package database - Index bổ sung cho hệ thống board (compound, unique) không thể định nghĩa qua model tags.
package database

import (
	"context"
	"strings"

	"github.com/munkhjinod/erxes-api/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateBoardIndexes tạo các index cho hệ thống board.
// Gọi một lần khi khởi động server, sau khi kết nối MongoDB thành công.
func CreateBoardIndexes(ctx context.Context, db *mongo.Database) error {
	// board_items: (stageId, order) — truy vấn item theo stage, sắp theo thứ tự hiển thị
	boardItems := db.Collection(global.MongoDB_ColNames.BoardItems)
	if _, err := boardItems.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "stageId", Value: 1},
			{Key: "order", Value: 1},
		},
		Options: options.Index().SetName("board_item_stage_order"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// board_items: assignedUserIds multikey — tìm item theo người được giao
	if _, err := boardItems.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "assignedUserIds", Value: 1},
		},
		Options: options.Index().SetName("board_item_assigned_users"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// stages: pipelineId — resolve phân cấp stage -> pipeline
	stages := db.Collection(global.MongoDB_ColNames.Stages)
	if _, err := stages.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "pipelineId", Value: 1},
		},
		Options: options.Index().SetName("stage_pipeline"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// pipelines: boardId — resolve phân cấp pipeline -> board
	pipelines := db.Collection(global.MongoDB_ColNames.Pipelines)
	if _, err := pipelines.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "boardId", Value: 1},
		},
		Options: options.Index().SetName("pipeline_board"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// conformities: unique compound — đảm bảo upsert idempotent trên cạnh quan hệ
	conformities := db.Collection(global.MongoDB_ColNames.Conformities)
	if _, err := conformities.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "mainType", Value: 1},
			{Key: "mainTypeId", Value: 1},
			{Key: "relType", Value: 1},
			{Key: "relTypeId", Value: 1},
		},
		Options: options.Index().SetName("conformity_edge_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// notifications: (receiverId, isRead, createdAt) — đếm và liệt kê thông báo chưa đọc
	notifications := db.Collection(global.MongoDB_ColNames.Notifications)
	if _, err := notifications.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "receiverId", Value: 1},
			{Key: "isRead", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("notification_receiver_unread"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// delivery_queue: (status, nextAttemptAt) — worker lấy message cần gửi
	deliveryQueue := db.Collection(global.MongoDB_ColNames.DeliveryQueue)
	if _, err := deliveryQueue.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "nextAttemptAt", Value: 1},
		},
		Options: options.Index().SetName("delivery_queue_status_next"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// activity_logs: (contentType, contentId) — truy vấn log theo item, xoá cascade
	activityLogs := db.Collection(global.MongoDB_ColNames.ActivityLogs)
	if _, err := activityLogs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "contentType", Value: 1},
			{Key: "contentId", Value: 1},
		},
		Options: options.Index().SetName("activity_log_content"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// checklists: (contentType, contentTypeId) — xoá cascade theo item
	checklists := db.Collection(global.MongoDB_ColNames.Checklists)
	if _, err := checklists.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "contentType", Value: 1},
			{Key: "contentTypeId", Value: 1},
		},
		Options: options.Index().SetName("checklist_content"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}

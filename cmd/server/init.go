package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/munkhjinod/erxes-api/config"
	"github.com/munkhjinod/erxes-api/internal/database"
	"github.com/munkhjinod/erxes-api/internal/global"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	// Auth Collections
	global.MongoDB_ColNames.Users = "auth_users"
	global.MongoDB_ColNames.Permissions = "auth_permissions"
	global.MongoDB_ColNames.Roles = "auth_roles"
	global.MongoDB_ColNames.RolePermissions = "auth_role_permissions"
	global.MongoDB_ColNames.UserRoles = "auth_user_roles"

	// Board Collections (phân cấp board -> pipeline -> stage -> item)
	global.MongoDB_ColNames.Boards = "boards"
	global.MongoDB_ColNames.Pipelines = "pipelines"
	global.MongoDB_ColNames.Stages = "stages"
	global.MongoDB_ColNames.BoardItems = "board_items"
	global.MongoDB_ColNames.PipelineLabels = "pipeline_labels"

	// Relation Collections
	global.MongoDB_ColNames.Conformities = "conformities"
	global.MongoDB_ColNames.Checklists = "checklists"

	// Log Collections
	global.MongoDB_ColNames.ActivityLogs = "activity_logs"
	global.MongoDB_ColNames.AuditLogs = "audit_logs"

	// Notification System Collections
	global.MongoDB_ColNames.Notifications = "notifications"
	global.MongoDB_ColNames.DeliveryQueue = "delivery_queue"

	// Product Collections
	global.MongoDB_ColNames.Products = "products"

	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, strong_password, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo các index cho các collection
	db := global.MongoDB_Session.Database(global.MongoDB_ServerConfig.MongoDB_DBName)
	if err := database.CreateBoardIndexes(context.TODO(), db); err != nil {
		logrus.Fatalf("Failed to create indexes: %v", err)
	}
	logrus.Info("Ensured collection indexes")
}

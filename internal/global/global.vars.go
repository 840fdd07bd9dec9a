package global

import (
	"github.com/munkhjinod/erxes-api/config"
	"github.com/munkhjinod/erxes-api/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	// Auth Collections
	Users           string // Tên collection cho người dùng
	Permissions     string // Tên collection cho quyền
	Roles           string // Tên collection cho vai trò
	RolePermissions string // Tên collection cho vai trò và quyền
	UserRoles       string // Tên collection cho người dùng và vai trò

	// Board Collections (phân cấp board -> pipeline -> stage -> item)
	Boards         string // Tên collection cho boards
	Pipelines      string // Tên collection cho pipelines
	Stages         string // Tên collection cho stages
	BoardItems     string // Tên collection cho các item trên board (deal/ticket/task/growthHack)
	PipelineLabels string // Tên collection cho nhãn của pipeline

	// Relation Collections
	Conformities string // Tên collection cho quan hệ giữa item và entity khác (customer/company)
	Checklists   string // Tên collection cho checklist gắn với item

	// Log Collections
	ActivityLogs string // Tên collection cho activity log (lịch sử di chuyển, tạo mới)
	AuditLogs    string // Tên collection cho audit log (mô tả thay đổi của mutation)

	// Notification System Collections
	Notifications string // Tên collection cho thông báo tới người dùng
	DeliveryQueue string // Tên collection cho hàng đợi gửi thông báo ra ngoài (email)

	// Product Collections
	Products string // Tên collection cho sản phẩm (dùng cho deal productsData)
}

// Các biến toàn cục
var Validate *validator.Validate               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName = *new(MongoDB_CollectionName) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases

package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các action của audit log
const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"
)

// ChangeDesc mô tả một trường đã được resolve tên hiển thị.
// Danh sách ChangeDesc giữ nguyên thứ tự, chỉ serialize ở tầng ghi log.
type ChangeDesc struct {
	Field string `json:"field" bson:"field"`
	ID    string `json:"id" bson:"id"`
	Name  string `json:"name" bson:"name"`
}

// AuditEntry dữ liệu đầu vào để ghi một dòng audit
type AuditEntry struct {
	Action      string                 // create/update/delete
	Type        string                 // loại đối tượng (deal/ticket/task/growthHack)
	ObjectID    primitive.ObjectID     // ID đối tượng
	Object      map[string]interface{} // snapshot đối tượng trước mutation
	NewData     map[string]interface{} // dữ liệu mới (với update)
	Description string                 // mô tả ngắn
	ExtraDesc   []ChangeDesc           // các trường đã resolve tên, giữ thứ tự
	UserID      primitive.ObjectID     // người thực hiện
}

// AuditLog dòng audit được persist trong collection audit_logs
type AuditLog struct {
	ID          primitive.ObjectID     `json:"id,omitempty" bson:"_id,omitempty"`
	Action      string                 `json:"action" bson:"action"`
	Type        string                 `json:"type" bson:"type"`
	ObjectID    primitive.ObjectID     `json:"objectId" bson:"objectId"`
	Object      map[string]interface{} `json:"object,omitempty" bson:"object,omitempty"`
	NewData     map[string]interface{} `json:"newData,omitempty" bson:"newData,omitempty"`
	Description string                 `json:"description" bson:"description"`
	ExtraDesc   []ChangeDesc           `json:"extraDesc,omitempty" bson:"extraDesc,omitempty"`
	UserID      primitive.ObjectID     `json:"userId" bson:"userId"`
	CreatedAt   int64                  `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64                  `json:"updatedAt" bson:"updatedAt"`
}

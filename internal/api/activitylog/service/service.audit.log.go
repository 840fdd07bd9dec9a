// Package activitysvc - service ghi audit log (mô tả thay đổi của mutation).
package activitysvc

import (
	"context"
	"fmt"

	models "github.com/munkhjinod/erxes-api/internal/api/activitylog/models"
	basesvc "github.com/munkhjinod/erxes-api/internal/api/base/service"
	"github.com/munkhjinod/erxes-api/internal/common"
	"github.com/munkhjinod/erxes-api/internal/global"
	"github.com/munkhjinod/erxes-api/internal/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuditLogService là cấu trúc chứa các phương thức ghi audit log
type AuditLogService struct {
	*basesvc.BaseServiceMongoImpl[models.AuditLog]
}

// NewAuditLogService tạo mới AuditLogService
func NewAuditLogService() (*AuditLogService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.AuditLogs)
	if !exist {
		return nil, fmt.Errorf("failed to get audit_logs collection: %v", common.ErrNotFound)
	}

	return &AuditLogService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.AuditLog](collection),
	}, nil
}

// PutCreateLog ghi audit cho mutation create
func (s *AuditLogService) PutCreateLog(ctx context.Context, entry models.AuditEntry) error {
	entry.Action = models.AuditActionCreate
	return s.put(ctx, entry)
}

// PutUpdateLog ghi audit cho mutation update
func (s *AuditLogService) PutUpdateLog(ctx context.Context, entry models.AuditEntry) error {
	entry.Action = models.AuditActionUpdate
	return s.put(ctx, entry)
}

// PutDeleteLog ghi audit cho mutation delete
func (s *AuditLogService) PutDeleteLog(ctx context.Context, entry models.AuditEntry) error {
	entry.Action = models.AuditActionDelete
	return s.put(ctx, entry)
}

// put persist dòng audit và ghi song song vào audit logger
func (s *AuditLogService) put(ctx context.Context, entry models.AuditEntry) error {
	row := models.AuditLog{
		ID:          primitive.NewObjectID(),
		Action:      entry.Action,
		Type:        entry.Type,
		ObjectID:    entry.ObjectID,
		Object:      entry.Object,
		NewData:     entry.NewData,
		Description: entry.Description,
		ExtraDesc:   entry.ExtraDesc,
		UserID:      entry.UserID,
	}

	if _, err := s.BaseServiceMongoImpl.InsertOne(ctx, row); err != nil {
		return err
	}

	logger.LogMutation(entry.UserID.Hex(), entry.Type, entry.ObjectID.Hex(), entry.Action, entry.ExtraDesc)
	return nil
}

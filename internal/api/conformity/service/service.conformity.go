// Package conformitysvc - service quản lý quan hệ conformity giữa item và company/customer.
package conformitysvc

import (
	"context"
	"fmt"

	basesvc "github.com/munkhjinod/erxes-api/internal/api/base/service"
	models "github.com/munkhjinod/erxes-api/internal/api/conformity/models"
	"github.com/munkhjinod/erxes-api/internal/common"
	"github.com/munkhjinod/erxes-api/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// edgeStore là phần kho lưu cạnh mà service cần, do BaseServiceMongoImpl đáp ứng
type edgeStore interface {
	Upsert(ctx context.Context, filter interface{}, data interface{}) (models.ConformityEdge, error)
	DeleteMany(ctx context.Context, filter interface{}) (int64, error)
	Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]models.ConformityEdge, error)
}

// ConformityService là cấu trúc chứa các phương thức quản lý cạnh quan hệ
type ConformityService struct {
	*basesvc.BaseServiceMongoImpl[models.ConformityEdge]
	store edgeStore
}

// NewConformityService tạo mới ConformityService
func NewConformityService() (*ConformityService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Conformities)
	if !exist {
		return nil, fmt.Errorf("failed to get conformities collection: %v", common.ErrNotFound)
	}

	base := basesvc.NewBaseServiceMongo[models.ConformityEdge](collection)
	return &ConformityService{
		BaseServiceMongoImpl: base,
		store:                base,
	}, nil
}

// AddConformity thêm một cạnh quan hệ, idempotent.
// Gọi hai lần với cùng tham số vẫn chỉ để lại đúng một cạnh (upsert trên khóa đầy đủ
// kết hợp unique index conformity_edge_unique).
func (s *ConformityService) AddConformity(ctx context.Context, mainType string, mainTypeID primitive.ObjectID, relType string, relTypeID primitive.ObjectID) (*models.ConformityEdge, error) {
	filter := bson.M{
		"mainType":   mainType,
		"mainTypeId": mainTypeID,
		"relType":    relType,
		"relTypeId":  relTypeID,
	}
	data := map[string]interface{}{
		"mainType":   mainType,
		"mainTypeId": mainTypeID,
		"relType":    relType,
		"relTypeId":  relTypeID,
	}

	edge, err := s.store.Upsert(ctx, filter, data)
	if err != nil {
		return nil, err
	}
	return &edge, nil
}

// RemoveConformity xóa tất cả cạnh có phía main khớp.
// Gọi trên entity không có cạnh nào là no-op, không phải lỗi.
func (s *ConformityService) RemoveConformity(ctx context.Context, mainType string, mainTypeID primitive.ObjectID) error {
	filter := bson.M{
		"mainType":   mainType,
		"mainTypeId": mainTypeID,
	}
	_, err := s.store.DeleteMany(ctx, filter)
	return err
}

// CreateConformity tạo một cạnh cho mỗi ID trong danh sách company và customer.
// Danh sách rỗng tạo ra 0 cạnh, không phải lỗi.
func (s *ConformityService) CreateConformity(ctx context.Context, mainType string, mainTypeID primitive.ObjectID, companyIDs []primitive.ObjectID, customerIDs []primitive.ObjectID) error {
	for _, companyID := range companyIDs {
		if _, err := s.AddConformity(ctx, mainType, mainTypeID, models.RelTypeCompany, companyID); err != nil {
			return err
		}
	}
	for _, customerID := range customerIDs {
		if _, err := s.AddConformity(ctx, mainType, mainTypeID, models.RelTypeCustomer, customerID); err != nil {
			return err
		}
	}
	return nil
}

// RelatedIDs trả về danh sách ID của entity liên quan theo relType
func (s *ConformityService) RelatedIDs(ctx context.Context, mainType string, mainTypeID primitive.ObjectID, relType string) ([]primitive.ObjectID, error) {
	filter := bson.M{
		"mainType":   mainType,
		"mainTypeId": mainTypeID,
		"relType":    relType,
	}
	edges, err := s.store.Find(ctx, filter, nil)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(edges))
	for _, edge := range edges {
		ids = append(ids, edge.RelTypeID)
	}
	return ids, nil
}

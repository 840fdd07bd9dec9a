// Package productsvc - service sản phẩm (Product).
package productsvc

import (
	"context"
	"fmt"

	models "github.com/munkhjinod/erxes-api/internal/api/product/models"
	basesvc "github.com/munkhjinod/erxes-api/internal/api/base/service"
	"github.com/munkhjinod/erxes-api/internal/common"
	"github.com/munkhjinod/erxes-api/internal/global"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductService là cấu trúc chứa các phương thức liên quan đến sản phẩm
type ProductService struct {
	*basesvc.BaseServiceMongoImpl[models.Product]
}

// NewProductService tạo mới ProductService
func NewProductService() (*ProductService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("failed to get products collection: %v", common.ErrNotFound)
	}

	return &ProductService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Product](collection),
	}, nil
}

// NameMap trả về map ID -> tên sản phẩm, bỏ qua ID không tồn tại
func (s *ProductService) NameMap(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	names := make(map[primitive.ObjectID]string)
	if len(ids) == 0 {
		return names, nil
	}

	products, err := s.BaseServiceMongoImpl.FindManyByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, product := range products {
		names[product.ID] = product.Name
	}
	return names, nil
}

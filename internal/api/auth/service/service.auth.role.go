// Package authsvc - service vai trò (Role).
package authsvc

import (
	"context"
	"fmt"

	authdto "github.com/munkhjinod/erxes-api/internal/api/auth/dto"
	models "github.com/munkhjinod/erxes-api/internal/api/auth/models"
	basesvc "github.com/munkhjinod/erxes-api/internal/api/base/service"
	"github.com/munkhjinod/erxes-api/internal/common"
	"github.com/munkhjinod/erxes-api/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoleService là cấu trúc chứa các phương thức liên quan đến vai trò
type RoleService struct {
	*basesvc.BaseServiceMongoImpl[models.Role]
}

// NewRoleService tạo mới RoleService
func NewRoleService() (*RoleService, error) {
	roleCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Roles)
	if !exist {
		return nil, fmt.Errorf("failed to get roles collection: %v", common.ErrNotFound)
	}

	return &RoleService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Role](roleCollection),
	}, nil
}

// Create tạo mới một vai trò
func (s *RoleService) Create(ctx context.Context, input *authdto.RoleCreateInput) (*models.Role, error) {
	exists, err := s.BaseServiceMongoImpl.DocumentExists(ctx, bson.M{"name": input.Name})
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.ErrDuplicate
	}

	role := models.Role{
		ID:       primitive.NewObjectID(),
		Name:     input.Name,
		Describe: input.Describe,
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, role)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

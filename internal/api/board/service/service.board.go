// Package boardsvc chứa nghiệp vụ bảng Kanban: phân giải cấp chứa,
// theo dõi di chuyển, phát thông báo, kiểm tra quyền và các orchestrator của thẻ.
package boardsvc

import (
	"context"
	"fmt"

	basesvc "github.com/munkhjinod/erxes-api/internal/api/base/service"
	"github.com/munkhjinod/erxes-api/internal/api/board/models"
	"github.com/munkhjinod/erxes-api/internal/common"
	"github.com/munkhjinod/erxes-api/internal/global"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BoardService quản lý các bảng Kanban
type BoardService struct {
	basesvc.BaseServiceMongo[models.Board]
}

// NewBoardService tạo service quản lý board mới
func NewBoardService() (*BoardService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Boards)
	if !exist {
		return nil, fmt.Errorf("failed to get boards collection: %v", common.ErrNotFound)
	}

	return &BoardService{
		BaseServiceMongo: basesvc.NewBaseServiceMongo[models.Board](collection),
	}, nil
}

// Create tạo một board mới
func (s *BoardService) Create(ctx context.Context, name string, createdBy primitive.ObjectID) (models.Board, error) {
	return s.InsertOne(ctx, models.Board{
		Name:      name,
		CreatedBy: createdBy,
	})
}

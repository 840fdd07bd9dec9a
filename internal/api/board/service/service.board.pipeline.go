package boardsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/munkhjinod/erxes-api/internal/api/base/service"
	"github.com/munkhjinod/erxes-api/internal/api/board/models"
	"github.com/munkhjinod/erxes-api/internal/common"
	"github.com/munkhjinod/erxes-api/internal/global"
)

// PipelineService quản lý các pipeline trong board
type PipelineService struct {
	basesvc.BaseServiceMongo[models.Pipeline]
}

// NewPipelineService tạo service quản lý pipeline mới
func NewPipelineService() (*PipelineService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Pipelines)
	if !exist {
		return nil, fmt.Errorf("failed to get pipelines collection: %v", common.ErrNotFound)
	}

	return &PipelineService{
		BaseServiceMongo: basesvc.NewBaseServiceMongo[models.Pipeline](collection),
	}, nil
}

// Create tạo một pipeline mới thuộc về một board
func (s *PipelineService) Create(ctx context.Context, name string, boardID primitive.ObjectID, createdBy primitive.ObjectID) (models.Pipeline, error) {
	return s.InsertOne(ctx, models.Pipeline{
		Name:      name,
		BoardID:   boardID,
		CreatedBy: createdBy,
	})
}

// Watch bật/tắt theo dõi pipeline cho một người dùng.
// Người theo dõi pipeline nhận mọi thông báo của các thẻ bên trong
func (s *PipelineService) Watch(ctx context.Context, pipelineID primitive.ObjectID, userID primitive.ObjectID, isAdd bool) error {
	var update bson.M
	if isAdd {
		update = bson.M{"$addToSet": bson.M{"watchedUserIds": userID}}
	} else {
		update = bson.M{"$pull": bson.M{"watchedUserIds": userID}}
	}

	_, err := s.UpdateOne(ctx, bson.M{"_id": pipelineID}, update, nil)
	return err
}

// FindByBoard lấy các pipeline của một board
func (s *PipelineService) FindByBoard(ctx context.Context, boardID primitive.ObjectID) ([]models.Pipeline, error) {
	return s.Find(ctx, bson.M{"boardId": boardID}, nil)
}

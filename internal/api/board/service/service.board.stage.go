package boardsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/munkhjinod/erxes-api/internal/api/base/service"
	"github.com/munkhjinod/erxes-api/internal/api/board/models"
	"github.com/munkhjinod/erxes-api/internal/common"
	"github.com/munkhjinod/erxes-api/internal/global"
)

// StageService quản lý các stage trong pipeline
type StageService struct {
	basesvc.BaseServiceMongo[models.Stage]
}

// NewStageService tạo service quản lý stage mới
func NewStageService() (*StageService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Stages)
	if !exist {
		return nil, fmt.Errorf("failed to get stages collection: %v", common.ErrNotFound)
	}

	return &StageService{
		BaseServiceMongo: basesvc.NewBaseServiceMongo[models.Stage](collection),
	}, nil
}

// Create tạo một stage mới thuộc về một pipeline
func (s *StageService) Create(ctx context.Context, name string, pipelineID primitive.ObjectID, order float64) (models.Stage, error) {
	return s.InsertOne(ctx, models.Stage{
		Name:       name,
		PipelineID: pipelineID,
		Order:      order,
	})
}

// FindByPipeline lấy các stage của một pipeline theo thứ tự
func (s *StageService) FindByPipeline(ctx context.Context, pipelineID primitive.ObjectID) ([]models.Stage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	return s.Find(ctx, bson.M{"pipelineId": pipelineID}, opts)
}

// NameMap phân giải tên hiển thị cho một tập stage, bỏ qua ID không tồn tại
func (s *StageService) NameMap(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	if len(ids) == 0 {
		return map[primitive.ObjectID]string{}, nil
	}

	stages, err := s.FindManyByIds(ctx, ids)
	if err != nil {
		return nil, err
	}

	names := make(map[primitive.ObjectID]string, len(stages))
	for _, stage := range stages {
		names[stage.ID] = stage.Name
	}
	return names, nil
}

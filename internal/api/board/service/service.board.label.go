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

// LabelService quản lý nhãn màu gắn trên thẻ
type LabelService struct {
	basesvc.BaseServiceMongo[models.PipelineLabel]
}

// NewLabelService tạo service quản lý nhãn mới
func NewLabelService() (*LabelService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.PipelineLabels)
	if !exist {
		return nil, fmt.Errorf("failed to get pipeline_labels collection: %v", common.ErrNotFound)
	}

	return &LabelService{
		BaseServiceMongo: basesvc.NewBaseServiceMongo[models.PipelineLabel](collection),
	}, nil
}

// Create tạo một nhãn mới trong pipeline
func (s *LabelService) Create(ctx context.Context, name string, colorCode string, pipelineID primitive.ObjectID, createdBy primitive.ObjectID) (models.PipelineLabel, error) {
	return s.InsertOne(ctx, models.PipelineLabel{
		Name:       name,
		ColorCode:  colorCode,
		PipelineID: pipelineID,
		CreatedBy:  createdBy,
	})
}

// FindByPipeline lấy các nhãn của một pipeline
func (s *LabelService) FindByPipeline(ctx context.Context, pipelineID primitive.ObjectID) ([]models.PipelineLabel, error) {
	return s.Find(ctx, bson.M{"pipelineId": pipelineID}, nil)
}

// NameMap phân giải tên hiển thị cho một tập nhãn, bỏ qua ID không tồn tại
func (s *LabelService) NameMap(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	if len(ids) == 0 {
		return map[primitive.ObjectID]string{}, nil
	}

	labels, err := s.FindManyByIds(ctx, ids)
	if err != nil {
		return nil, err
	}

	names := make(map[primitive.ObjectID]string, len(labels))
	for _, label := range labels {
		names[label.ID] = label.Name
	}
	return names, nil
}

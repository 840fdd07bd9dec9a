package boardsvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/munkhjinod/erxes-api/internal/api/board/models"
)

// HierarchyResolver phân giải chuỗi chứa Stage -> Pipeline -> Board từ một stageId.
// Mắt xích nào thiếu thì trả lỗi NotFound nguyên vẹn, không được nuốt,
// vì việc dựng link và tính người nhận phía sau phụ thuộc kết quả này
type HierarchyResolver struct {
	store HierarchyStore
}

// NewHierarchyResolver tạo resolver trên một kho tra cứu cấp chứa
func NewHierarchyResolver(store HierarchyStore) *HierarchyResolver {
	return &HierarchyResolver{store: store}
}

// ResolveHierarchy tra lần lượt Stage, Pipeline rồi Board theo stageId
func (r *HierarchyResolver) ResolveHierarchy(ctx context.Context, stageID primitive.ObjectID) (models.Hierarchy, error) {
	var hierarchy models.Hierarchy

	stage, err := r.store.GetStage(ctx, stageID)
	if err != nil {
		return hierarchy, err
	}

	pipeline, err := r.store.GetPipeline(ctx, stage.PipelineID)
	if err != nil {
		return hierarchy, err
	}

	board, err := r.store.GetBoard(ctx, pipeline.BoardID)
	if err != nil {
		return hierarchy, err
	}

	hierarchy.Stage = stage
	hierarchy.Pipeline = pipeline
	hierarchy.Board = board
	return hierarchy, nil
}

// ResolveBoard trả về board chứa stage đã cho
func (r *HierarchyResolver) ResolveBoard(ctx context.Context, stageID primitive.ObjectID) (models.Board, error) {
	hierarchy, err := r.ResolveHierarchy(ctx, stageID)
	if err != nil {
		return models.Board{}, err
	}
	return hierarchy.Board, nil
}

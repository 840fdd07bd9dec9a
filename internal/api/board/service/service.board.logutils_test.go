// Test việc gom mô tả tên các trường tham chiếu khi ghi audit.
package boardsvc

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/munkhjinod/erxes-api/internal/api/board/models"
)

func TestGatherItemFieldNames_StageBanDauTrungStageHienTai(t *testing.T) {
	stageID := primitive.NewObjectID()
	names := &fakeNameResolver{names: map[primitive.ObjectID]string{
		stageID: "Mới tạo",
	}}

	item := models.Item{
		ID:             primitive.NewObjectID(),
		Name:           "Deal 1",
		StageID:        stageID,
		InitialStageID: stageID,
	}

	descs, err := gatherItemFieldNames(context.Background(), names, item, nil)
	if err != nil {
		t.Fatalf("gatherItemFieldNames trả về lỗi: %v", err)
	}

	if len(descs) != 2 {
		t.Fatalf("muốn 2 mô tả stage, có %d: %v", len(descs), descs)
	}
	if descs[0].Field != "initialStageId" || descs[1].Field != "stageId" {
		t.Errorf("thứ tự trường sai: %q rồi %q", descs[0].Field, descs[1].Field)
	}
	for _, desc := range descs {
		if desc.ID != stageID.Hex() {
			t.Errorf("trường %s trỏ sai stage: %s", desc.Field, desc.ID)
		}
		if desc.Name != "Mới tạo" {
			t.Errorf("trường %s phân giải sai tên: %q", desc.Field, desc.Name)
		}
	}
}

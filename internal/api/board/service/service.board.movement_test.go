// Test theo dõi di chuyển thẻ giữa các stage.
package boardsvc

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/munkhjinod/erxes-api/internal/api/board/models"
	"github.com/munkhjinod/erxes-api/internal/common"
)

func TestOnMove_CungStageChiDoiThuTu(t *testing.T) {
	hierarchy := newFakeHierarchyStore()
	stage := hierarchy.addChain("B1", "P1", "A", nil)
	audit := &fakeAuditLog{}
	tracker := NewMovementTracker(NewHierarchyResolver(hierarchy), audit)

	item := models.Item{ID: primitive.NewObjectID(), Name: "Deal 1", StageID: stage.ID}
	actor := primitive.NewObjectID()

	result, err := tracker.OnMove(context.Background(), actor, item, models.ItemTypeDeal, stage.ID)
	if err != nil {
		t.Fatalf("OnMove trả về lỗi: %v", err)
	}

	if result.Moved {
		t.Error("cùng stage nhưng Moved = true")
	}
	if result.Action != "changed order of your deal:" {
		t.Errorf("action sai: %q", result.Action)
	}
	if result.Content != "'Deal 1'" {
		t.Errorf("content sai: %q", result.Content)
	}
	if len(audit.movements) != 0 {
		t.Errorf("cùng stage không được ghi nhật ký di chuyển, có %d bản ghi", len(audit.movements))
	}
}

func TestOnMove_KhacStageGhiNhatKyVaDungChuoi(t *testing.T) {
	hierarchy := newFakeHierarchyStore()
	oldStage := hierarchy.addChain("B1", "P1", "A", nil)
	newStage := hierarchy.addChain("B2", "P2", "C", nil)
	audit := &fakeAuditLog{}
	tracker := NewMovementTracker(NewHierarchyResolver(hierarchy), audit)

	item := models.Item{ID: primitive.NewObjectID(), Name: "Deal 1", StageID: oldStage.ID}
	actor := primitive.NewObjectID()

	result, err := tracker.OnMove(context.Background(), actor, item, models.ItemTypeDeal, newStage.ID)
	if err != nil {
		t.Fatalf("OnMove trả về lỗi: %v", err)
	}

	if !result.Moved {
		t.Error("khác stage nhưng Moved = false")
	}
	if !strings.HasPrefix(result.Action, "moved 'Deal 1' from B1-P1-A to ") {
		t.Errorf("action sai: %q", result.Action)
	}
	if result.Content != "B2-P2-C" {
		t.Errorf("content sai: %q", result.Content)
	}

	if len(audit.movements) != 1 {
		t.Fatalf("muốn 1 bản ghi di chuyển, có %d", len(audit.movements))
	}
	movement := audit.movements[0]
	if movement.content.OldStageID != oldStage.ID || movement.content.DestinationStageID != newStage.ID {
		t.Error("bản ghi di chuyển sai stage nguồn/đích")
	}
	if movement.content.Text != "A to C" {
		t.Errorf("text di chuyển sai: %q", movement.content.Text)
	}
	if movement.userID != actor {
		t.Error("bản ghi di chuyển không gán đúng người thực hiện")
	}
}

func TestOnMove_StageCuBiXoaPhaiLoi(t *testing.T) {
	hierarchy := newFakeHierarchyStore()
	newStage := hierarchy.addChain("B2", "P2", "C", nil)
	audit := &fakeAuditLog{}
	tracker := NewMovementTracker(NewHierarchyResolver(hierarchy), audit)

	// stage cũ không tồn tại trong kho
	item := models.Item{ID: primitive.NewObjectID(), Name: "Deal 1", StageID: primitive.NewObjectID()}

	_, err := tracker.OnMove(context.Background(), primitive.NewObjectID(), item, models.ItemTypeDeal, newStage.ID)
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("muốn lỗi NotFound khi stage cũ đã bị xóa, có %v", err)
	}
	if len(audit.movements) != 0 {
		t.Error("không được ghi nhật ký khi phân giải stage thất bại")
	}
}

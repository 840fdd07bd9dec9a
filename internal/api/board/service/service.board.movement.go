package boardsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	activitymodels "github.com/munkhjinod/erxes-api/internal/api/activitylog/models"
	"github.com/munkhjinod/erxes-api/internal/api/board/models"
)

// MovementTracker theo dõi việc thẻ đổi stage và ghi nhật ký di chuyển
type MovementTracker struct {
	resolver *HierarchyResolver
	audit    AuditLog
}

// NewMovementTracker tạo tracker trên resolver cấp chứa và cổng ghi nhật ký
func NewMovementTracker(resolver *HierarchyResolver, audit AuditLog) *MovementTracker {
	return &MovementTracker{
		resolver: resolver,
		audit:    audit,
	}
}

// OnMove so sánh stage hiện tại của thẻ với stage đích.
// Cùng stage: chỉ là đổi thứ tự, không ghi nhật ký di chuyển.
// Khác stage: phân giải cả hai cấp chứa, ghi nhật ký đồng bộ rồi trả
// chuỗi hành động/nội dung mô tả đường đi. Stage cũ không còn tồn tại
// là lỗi, không được tự bịa ra một lần di chuyển
func (t *MovementTracker) OnMove(ctx context.Context, actingUserID primitive.ObjectID, item models.Item, itemType models.ItemType, destinationStageID primitive.ObjectID) (models.MovementResult, error) {
	oldStageID := item.StageID

	if oldStageID == destinationStageID {
		return models.MovementResult{
			Action:  fmt.Sprintf("changed order of your %s:", itemType),
			Content: fmt.Sprintf("'%s'", item.Name),
			Moved:   false,
		}, nil
	}

	oldHierarchy, err := t.resolver.ResolveHierarchy(ctx, oldStageID)
	if err != nil {
		return models.MovementResult{}, err
	}

	newHierarchy, err := t.resolver.ResolveHierarchy(ctx, destinationStageID)
	if err != nil {
		return models.MovementResult{}, err
	}

	movement := activitymodels.MovementContent{
		OldStageID:         oldStageID,
		DestinationStageID: destinationStageID,
		Text:               fmt.Sprintf("%s to %s", oldHierarchy.Stage.Name, newHierarchy.Stage.Name),
	}
	if err := t.audit.RecordMovement(ctx, string(itemType), item.ID, actingUserID, movement); err != nil {
		return models.MovementResult{}, err
	}

	return models.MovementResult{
		Action: fmt.Sprintf("moved '%s' from %s-%s-%s to ",
			item.Name, oldHierarchy.Board.Name, oldHierarchy.Pipeline.Name, oldHierarchy.Stage.Name),
		Content: fmt.Sprintf("%s-%s-%s",
			newHierarchy.Board.Name, newHierarchy.Pipeline.Name, newHierarchy.Stage.Name),
		Moved: true,
	}, nil
}

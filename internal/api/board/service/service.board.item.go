package boardsvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	activitymodels "github.com/munkhjinod/erxes-api/internal/api/activitylog/models"
	activitysvc "github.com/munkhjinod/erxes-api/internal/api/activitylog/service"
	authmodels "github.com/munkhjinod/erxes-api/internal/api/auth/models"
	authsvc "github.com/munkhjinod/erxes-api/internal/api/auth/service"
	"github.com/munkhjinod/erxes-api/internal/api/board/dto"
	"github.com/munkhjinod/erxes-api/internal/api/board/models"
	checklistsvc "github.com/munkhjinod/erxes-api/internal/api/checklist/service"
	conformitysvc "github.com/munkhjinod/erxes-api/internal/api/conformity/service"
	notifsvc "github.com/munkhjinod/erxes-api/internal/api/notification/service"
	productsvc "github.com/munkhjinod/erxes-api/internal/api/product/service"
	"github.com/munkhjinod/erxes-api/internal/common"
	"github.com/munkhjinod/erxes-api/internal/utility"
)

// ItemService điều phối vòng đời của thẻ công việc: kiểm tra quyền,
// ghi dữ liệu, tạo quan hệ conformity, phát thông báo và ghi audit.
// Mọi phụ thuộc là interface nên test dựng service với bản giả
type ItemService struct {
	items      ItemStore
	resolver   *HierarchyResolver
	tracker    *MovementTracker
	fanout     *FanoutEngine
	perms      *PermissionResolver
	conformity ConformityStore
	checklists ChecklistStore
	audit      AuditLog
	names      NameResolver
}

// NewItemService lắp ItemService từ các cổng ra đã cho
func NewItemService(items ItemStore, hierarchy HierarchyStore, conformity ConformityStore, authorizer Authorizer, transport NotificationTransport, audit AuditLog, checklists ChecklistStore, names NameResolver) *ItemService {
	resolver := NewHierarchyResolver(hierarchy)
	return &ItemService{
		items:      items,
		resolver:   resolver,
		tracker:    NewMovementTracker(resolver, audit),
		fanout:     NewFanoutEngine(resolver, transport),
		perms:      NewPermissionResolver(authorizer),
		conformity: conformity,
		checklists: checklists,
		audit:      audit,
		names:      names,
	}
}

// NewItemServiceMongo lắp ItemService trên toàn bộ adapter Mongo thật
func NewItemServiceMongo() (*ItemService, error) {
	itemStore, err := NewMongoItemStore()
	if err != nil {
		return nil, err
	}

	stageService, err := NewStageService()
	if err != nil {
		return nil, err
	}
	pipelineService, err := NewPipelineService()
	if err != nil {
		return nil, err
	}
	boardService, err := NewBoardService()
	if err != nil {
		return nil, err
	}
	labelService, err := NewLabelService()
	if err != nil {
		return nil, err
	}

	conformityService, err := conformitysvc.NewConformityService()
	if err != nil {
		return nil, err
	}
	checklistService, err := checklistsvc.NewChecklistService()
	if err != nil {
		return nil, err
	}
	productService, err := productsvc.NewProductService()
	if err != nil {
		return nil, err
	}
	activityService, err := activitysvc.NewActivityLogService()
	if err != nil {
		return nil, err
	}
	auditService, err := activitysvc.NewAuditLogService()
	if err != nil {
		return nil, err
	}
	notificationService, err := notifsvc.NewNotificationService()
	if err != nil {
		return nil, err
	}
	accessService, err := authsvc.NewAccessService()
	if err != nil {
		return nil, err
	}
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, err
	}

	return NewItemService(
		itemStore,
		NewMongoHierarchyStore(stageService, pipelineService, boardService),
		NewMongoConformityStore(conformityService),
		accessService,
		NewMongoNotificationTransport(notificationService),
		NewMongoAuditLog(activityService, auditService),
		NewMongoChecklistStore(checklistService),
		NewMongoNameResolver(stageService, labelService, productService, userService),
	), nil
}

// AddItem tạo một thẻ mới. Người tạo tự động trở thành người theo dõi,
// InitialStageID được chốt bằng stage lúc tạo và không đổi về sau.
// Lỗi thông báo/audit sau khi đã ghi dữ liệu trả về dạng ErrTransport,
// bản ghi đã tạo không bị rollback
func (s *ItemService) AddItem(ctx context.Context, user *authmodels.User, input *dto.ItemAddInput) (models.Item, error) {
	if err := s.perms.CheckPermission(ctx, input.Type, user, models.MutationAdd); err != nil {
		return models.Item{}, err
	}

	now := time.Now().UnixMilli()
	item := models.Item{
		Type:            input.Type,
		Name:            input.Name,
		StageID:         input.StageID,
		InitialStageID:  input.StageID,
		Description:     input.Description,
		AssignedUserIDs: utility.Unique(input.AssignedUserIDs),
		WatchedUserIDs:  []primitive.ObjectID{user.ID},
		LabelIDs:        input.LabelIDs,
		ProductsData:    input.ProductsData,
		CreatedBy:       user.ID,
		ModifiedBy:      user.ID,
		ModifiedAt:      now,
	}

	created, err := s.items.CreateItem(ctx, item)
	if err != nil {
		return models.Item{}, err
	}

	if err := s.conformity.CreateEdges(ctx, string(input.Type), created.ID, input.CompanyIDs, input.CustomerIDs); err != nil {
		return created, err
	}

	kinds := models.NotificationKindsByType[input.Type]
	err = s.fanout.Notify(ctx, NotifyParams{
		Item:        created,
		User:        user,
		NotifType:   kinds.Add,
		ContentType: input.Type,
		Action:      fmt.Sprintf("invited you to the %s", input.Type),
		Content:     fmt.Sprintf("'%s'", created.Name),
	})
	if err != nil {
		return created, common.WrapTransport(err)
	}

	if err := s.putCreateAudit(ctx, user, created); err != nil {
		return created, common.WrapTransport(err)
	}

	return created, nil
}

// EditItem sửa một thẻ. Khi danh sách người được gán thay đổi, tập người
// mới thêm và người bị gỡ được tính bằng hiệu hai danh sách và nhận
// thông báo chuyên biệt thay cho thông báo nền
func (s *ItemService) EditItem(ctx context.Context, user *authmodels.User, itemType models.ItemType, itemID primitive.ObjectID, input *dto.ItemEditInput) (models.Item, error) {
	if err := s.perms.CheckPermission(ctx, itemType, user, models.MutationEdit); err != nil {
		return models.Item{}, err
	}

	prior, err := s.items.GetItem(ctx, itemID)
	if err != nil {
		return models.Item{}, err
	}

	now := time.Now().UnixMilli()
	patch := ItemPatch{
		Name:            input.Name,
		Description:     input.Description,
		AssignedUserIDs: input.AssignedUserIDs,
		LabelIDs:        input.LabelIDs,
		ProductsData:    input.ProductsData,
		ModifiedBy:      &user.ID,
		ModifiedAt:      &now,
	}

	updated, err := s.items.UpdateItem(ctx, itemID, patch)
	if err != nil {
		return models.Item{}, err
	}

	var invited, removed []primitive.ObjectID
	if input.AssignedUserIDs != nil {
		invited = utility.Difference(*input.AssignedUserIDs, prior.AssignedUserIDs)
		removed = utility.Difference(prior.AssignedUserIDs, *input.AssignedUserIDs)
	}

	kinds := models.NotificationKindsByType[itemType]
	err = s.fanout.Notify(ctx, NotifyParams{
		Item:         updated,
		User:         user,
		NotifType:    kinds.Edit,
		ContentType:  itemType,
		Action:       "edited",
		InvitedUsers: invited,
		RemovedUsers: removed,
	})
	if err != nil {
		return updated, common.WrapTransport(err)
	}

	if err := s.putUpdateAudit(ctx, user, prior, updated); err != nil {
		return updated, common.WrapTransport(err)
	}

	return updated, nil
}

// ChangeItem chuyển thẻ sang stage đích rồi phát thông báo với mô tả
// đường đi do MovementTracker dựng. Cùng stage thì chỉ là đổi thứ tự,
// không có bản ghi di chuyển
func (s *ItemService) ChangeItem(ctx context.Context, user *authmodels.User, itemType models.ItemType, itemID primitive.ObjectID, input *dto.ItemChangeInput) (models.Item, error) {
	if err := s.perms.CheckPermission(ctx, itemType, user, models.MutationChange); err != nil {
		return models.Item{}, err
	}

	prior, err := s.items.GetItem(ctx, itemID)
	if err != nil {
		return models.Item{}, err
	}

	now := time.Now().UnixMilli()
	patch := ItemPatch{
		StageID:    &input.DestinationStageID,
		ModifiedBy: &user.ID,
		ModifiedAt: &now,
	}
	updated, err := s.items.UpdateItem(ctx, itemID, patch)
	if err != nil {
		return models.Item{}, err
	}

	movement, err := s.tracker.OnMove(ctx, user.ID, prior, itemType, input.DestinationStageID)
	if err != nil {
		// Stage đích hoặc stage cũ không tồn tại là lỗi dữ liệu,
		// phải nổi lên nguyên trạng chứ không phải partial-failure
		if errors.Is(err, common.ErrNotFound) {
			return updated, err
		}
		return updated, common.WrapTransport(err)
	}

	kinds := models.NotificationKindsByType[itemType]
	err = s.fanout.Notify(ctx, NotifyParams{
		Item:        updated,
		User:        user,
		NotifType:   kinds.Change,
		ContentType: itemType,
		Action:      movement.Action,
		Content:     movement.Content,
	})
	if err != nil {
		return updated, common.WrapTransport(err)
	}

	return updated, nil
}

// UpdateItemsOrder ghi thứ tự mới cho các thẻ trong một stage.
// Thao tác nhẹ: không thông báo, không audit
func (s *ItemService) UpdateItemsOrder(ctx context.Context, user *authmodels.User, itemType models.ItemType, input *dto.ItemsOrderInput) error {
	if err := s.perms.CheckPermission(ctx, itemType, user, models.MutationUpdateOrder); err != nil {
		return err
	}

	return s.items.UpdateOrder(ctx, input.StageID, input.Orders)
}

// RemoveItem xóa một thẻ. Thông báo được phát trước khi xóa để người nhận
// còn xem được thẻ; sau đó dọn conformity, checklist và nhật ký hoạt động
// rồi mới xóa bản ghi
func (s *ItemService) RemoveItem(ctx context.Context, user *authmodels.User, itemType models.ItemType, itemID primitive.ObjectID) error {
	if err := s.perms.CheckPermission(ctx, itemType, user, models.MutationRemove); err != nil {
		return err
	}

	item, err := s.items.GetItem(ctx, itemID)
	if err != nil {
		return err
	}

	kinds := models.NotificationKindsByType[itemType]
	err = s.fanout.Notify(ctx, NotifyParams{
		Item:        item,
		User:        user,
		NotifType:   kinds.Delete,
		ContentType: itemType,
		Action:      "deleted",
		Content:     fmt.Sprintf("'%s'", item.Name),
	})
	if err != nil {
		// Chưa xóa gì nên đây là lỗi thường, không phải partial-failure
		return err
	}

	if err := s.conformity.RemoveEdgesForMain(ctx, string(itemType), itemID); err != nil {
		return err
	}
	if err := s.checklists.RemoveChecklists(ctx, string(itemType), itemID); err != nil {
		return err
	}
	if err := s.audit.RemoveActivityLogs(ctx, string(itemType), itemID); err != nil {
		return err
	}

	if err := s.items.DeleteItem(ctx, itemID); err != nil {
		return err
	}

	if err := s.putDeleteAudit(ctx, user, item); err != nil {
		return common.WrapTransport(err)
	}

	return nil
}

// WatchItem bật/tắt việc người dùng theo dõi một thẻ
func (s *ItemService) WatchItem(ctx context.Context, user *authmodels.User, itemType models.ItemType, itemID primitive.ObjectID, isAdd bool) (models.Item, error) {
	if err := s.perms.CheckPermission(ctx, itemType, user, models.MutationWatch); err != nil {
		return models.Item{}, err
	}

	item, err := s.items.GetItem(ctx, itemID)
	if err != nil {
		return models.Item{}, err
	}

	var watchers []primitive.ObjectID
	if isAdd {
		watchers = utility.Unique(append(item.WatchedUserIDs, user.ID))
	} else {
		watchers = utility.Difference(item.WatchedUserIDs, []primitive.ObjectID{user.ID})
	}

	patch := ItemPatch{WatchedUserIDs: &watchers}
	return s.items.UpdateItem(ctx, itemID, patch)
}

// GetItem đọc một thẻ theo ID
func (s *ItemService) GetItem(ctx context.Context, itemID primitive.ObjectID) (models.Item, error) {
	return s.items.GetItem(ctx, itemID)
}

// putCreateAudit ghi bản ghi audit tạo thẻ kèm tên đã phân giải
// cho stage, người liên quan, nhãn và sản phẩm
func (s *ItemService) putCreateAudit(ctx context.Context, user *authmodels.User, item models.Item) error {
	object, err := utility.ToMap(item)
	if err != nil {
		return err
	}

	userIDs := append([]primitive.ObjectID{user.ID, item.ModifiedBy}, item.WatchedUserIDs...)
	extraDesc, err := gatherItemFieldNames(ctx, s.names, item, utility.Unique(userIDs))
	if err != nil {
		return err
	}

	return s.audit.PutCreateLog(ctx, activitymodels.AuditEntry{
		Action:      activitymodels.AuditActionCreate,
		Type:        string(item.Type),
		ObjectID:    item.ID,
		Object:      object,
		Description: fmt.Sprintf("created %s '%s'", item.Type, item.Name),
		ExtraDesc:   extraDesc,
		UserID:      user.ID,
	})
}

// putUpdateAudit ghi bản ghi audit sửa thẻ: snapshot trước, dữ liệu mới
// và tên đã phân giải của trạng thái trước đó
func (s *ItemService) putUpdateAudit(ctx context.Context, user *authmodels.User, prior models.Item, updated models.Item) error {
	object, err := utility.ToMap(prior)
	if err != nil {
		return err
	}
	newData, err := utility.ToMap(updated)
	if err != nil {
		return err
	}

	userIDs := utility.Unique(append([]primitive.ObjectID{user.ID}, prior.AssignedUserIDs...))
	extraDesc, err := gatherItemFieldNames(ctx, s.names, prior, userIDs)
	if err != nil {
		return err
	}

	return s.audit.PutUpdateLog(ctx, activitymodels.AuditEntry{
		Action:      activitymodels.AuditActionUpdate,
		Type:        string(prior.Type),
		ObjectID:    prior.ID,
		Object:      object,
		NewData:     newData,
		Description: fmt.Sprintf("edited %s '%s'", prior.Type, prior.Name),
		ExtraDesc:   extraDesc,
		UserID:      user.ID,
	})
}

// putDeleteAudit ghi bản ghi audit xóa thẻ từ snapshot cuối cùng
func (s *ItemService) putDeleteAudit(ctx context.Context, user *authmodels.User, item models.Item) error {
	object, err := utility.ToMap(item)
	if err != nil {
		return err
	}

	userIDs := utility.Unique(append([]primitive.ObjectID{user.ID}, item.AssignedUserIDs...))
	extraDesc, err := gatherItemFieldNames(ctx, s.names, item, userIDs)
	if err != nil {
		return err
	}

	return s.audit.PutDeleteLog(ctx, activitymodels.AuditEntry{
		Action:      activitymodels.AuditActionDelete,
		Type:        string(item.Type),
		ObjectID:    item.ID,
		Object:      object,
		Description: fmt.Sprintf("deleted %s '%s'", item.Type, item.Name),
		ExtraDesc:   extraDesc,
		UserID:      user.ID,
	})
}

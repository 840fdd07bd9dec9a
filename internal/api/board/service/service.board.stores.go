package boardsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	activitymodels "github.com/munkhjinod/erxes-api/internal/api/activitylog/models"
	activitysvc "github.com/munkhjinod/erxes-api/internal/api/activitylog/service"
	authmodels "github.com/munkhjinod/erxes-api/internal/api/auth/models"
	basesvc "github.com/munkhjinod/erxes-api/internal/api/base/service"
	"github.com/munkhjinod/erxes-api/internal/api/board/models"
	checklistsvc "github.com/munkhjinod/erxes-api/internal/api/checklist/service"
	conformitysvc "github.com/munkhjinod/erxes-api/internal/api/conformity/service"
	notifmodels "github.com/munkhjinod/erxes-api/internal/api/notification/models"
	notifsvc "github.com/munkhjinod/erxes-api/internal/api/notification/service"
	productsvc "github.com/munkhjinod/erxes-api/internal/api/product/service"
	"github.com/munkhjinod/erxes-api/internal/common"
	"github.com/munkhjinod/erxes-api/internal/global"
)

// Các interface bên dưới là cổng ra của nghiệp vụ bảng Kanban.
// ItemService chỉ phụ thuộc interface, còn adapter Mongo ở cuối file
// nối chúng vào các service domain thật. Test dùng bản giả.

// ItemPatch mô tả phần thay đổi của một thẻ khi cập nhật,
// trường nil nghĩa là giữ nguyên
type ItemPatch struct {
	Name            *string
	StageID         *primitive.ObjectID
	Description     *string
	AssignedUserIDs *[]primitive.ObjectID
	WatchedUserIDs  *[]primitive.ObjectID
	LabelIDs        *[]primitive.ObjectID
	ProductsData    *[]models.ProductData
	ModifiedBy      *primitive.ObjectID
	ModifiedAt      *int64
}

// ItemStore là kho lưu trữ thẻ công việc
type ItemStore interface {
	GetItem(ctx context.Context, id primitive.ObjectID) (models.Item, error)
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)
	UpdateItem(ctx context.Context, id primitive.ObjectID, patch ItemPatch) (models.Item, error)
	DeleteItem(ctx context.Context, id primitive.ObjectID) error
	UpdateOrder(ctx context.Context, stageID primitive.ObjectID, orders []models.OrderEntry) error
}

// HierarchyStore tra cứu chuỗi chứa Stage -> Pipeline -> Board
type HierarchyStore interface {
	GetStage(ctx context.Context, id primitive.ObjectID) (models.Stage, error)
	GetPipeline(ctx context.Context, id primitive.ObjectID) (models.Pipeline, error)
	GetBoard(ctx context.Context, id primitive.ObjectID) (models.Board, error)
}

// ConformityStore quản lý cạnh quan hệ giữa thẻ và company/customer
type ConformityStore interface {
	CreateEdges(ctx context.Context, mainType string, mainTypeID primitive.ObjectID, companyIDs []primitive.ObjectID, customerIDs []primitive.ObjectID) error
	RemoveEdgesForMain(ctx context.Context, mainType string, mainTypeID primitive.ObjectID) error
}

// Authorizer trả lời người dùng có giữ một quyền hay không
type Authorizer interface {
	Can(ctx context.Context, action string, user *authmodels.User) (bool, error)
}

// NotificationTransport phát một payload thông báo ra ngoài
type NotificationTransport interface {
	Send(ctx context.Context, payload notifmodels.NotificationPayload) error
}

// AuditLog ghi nhật ký di chuyển và các bản ghi audit có cấu trúc
type AuditLog interface {
	RecordMovement(ctx context.Context, contentType string, contentID primitive.ObjectID, userID primitive.ObjectID, content activitymodels.MovementContent) error
	PutCreateLog(ctx context.Context, entry activitymodels.AuditEntry) error
	PutUpdateLog(ctx context.Context, entry activitymodels.AuditEntry) error
	PutDeleteLog(ctx context.Context, entry activitymodels.AuditEntry) error
	RemoveActivityLogs(ctx context.Context, contentType string, contentID primitive.ObjectID) error
}

// ChecklistStore dọn các checklist phụ thuộc khi xóa thẻ
type ChecklistStore interface {
	RemoveChecklists(ctx context.Context, contentType string, contentTypeID primitive.ObjectID) error
}

// NameResolver phân giải ID sang tên hiển thị để dựng mô tả audit.
// ID không tồn tại bị bỏ qua, không phải lỗi
type NameResolver interface {
	StageNames(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error)
	UserNames(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error)
	LabelNames(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error)
	ProductNames(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error)
}

// ====================================
// ADAPTER MONGO
// ====================================

// MongoItemStore lưu thẻ trong collection board_items
type MongoItemStore struct {
	base *basesvc.BaseServiceMongoImpl[models.Item]
}

// NewMongoItemStore tạo kho thẻ trên collection board_items
func NewMongoItemStore() (*MongoItemStore, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.BoardItems)
	if !exist {
		return nil, fmt.Errorf("failed to get board_items collection: %v", common.ErrNotFound)
	}

	return &MongoItemStore{
		base: basesvc.NewBaseServiceMongo[models.Item](collection),
	}, nil
}

func (s *MongoItemStore) GetItem(ctx context.Context, id primitive.ObjectID) (models.Item, error) {
	return s.base.FindOneById(ctx, id)
}

func (s *MongoItemStore) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	return s.base.InsertOne(ctx, item)
}

func (s *MongoItemStore) UpdateItem(ctx context.Context, id primitive.ObjectID, patch ItemPatch) (models.Item, error) {
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.StageID != nil {
		set["stageId"] = *patch.StageID
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.AssignedUserIDs != nil {
		set["assignedUserIds"] = *patch.AssignedUserIDs
	}
	if patch.WatchedUserIDs != nil {
		set["watchedUserIds"] = *patch.WatchedUserIDs
	}
	if patch.LabelIDs != nil {
		set["labelIds"] = *patch.LabelIDs
	}
	if patch.ProductsData != nil {
		set["productsData"] = *patch.ProductsData
	}
	if patch.ModifiedBy != nil {
		set["modifiedBy"] = *patch.ModifiedBy
	}
	if patch.ModifiedAt != nil {
		set["modifiedAt"] = *patch.ModifiedAt
	}

	if len(set) == 0 {
		return s.base.FindOneById(ctx, id)
	}

	return s.base.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set}, nil)
}

func (s *MongoItemStore) DeleteItem(ctx context.Context, id primitive.ObjectID) error {
	return s.base.DeleteById(ctx, id)
}

// UpdateOrder ghi thứ tự mới cho từng thẻ trong một stage
func (s *MongoItemStore) UpdateOrder(ctx context.Context, stageID primitive.ObjectID, orders []models.OrderEntry) error {
	for _, entry := range orders {
		filter := bson.M{"_id": entry.ID, "stageId": stageID}
		update := bson.M{"$set": bson.M{"order": entry.Order}}
		if _, err := s.base.UpdateOne(ctx, filter, update, nil); err != nil {
			return err
		}
	}
	return nil
}

// MongoHierarchyStore tra cứu stage/pipeline/board qua các service domain
type MongoHierarchyStore struct {
	stageService    *StageService
	pipelineService *PipelineService
	boardService    *BoardService
}

// NewMongoHierarchyStore tạo kho tra cứu cấp chứa
func NewMongoHierarchyStore(stageService *StageService, pipelineService *PipelineService, boardService *BoardService) *MongoHierarchyStore {
	return &MongoHierarchyStore{
		stageService:    stageService,
		pipelineService: pipelineService,
		boardService:    boardService,
	}
}

func (s *MongoHierarchyStore) GetStage(ctx context.Context, id primitive.ObjectID) (models.Stage, error) {
	return s.stageService.FindOneById(ctx, id)
}

func (s *MongoHierarchyStore) GetPipeline(ctx context.Context, id primitive.ObjectID) (models.Pipeline, error) {
	return s.pipelineService.FindOneById(ctx, id)
}

func (s *MongoHierarchyStore) GetBoard(ctx context.Context, id primitive.ObjectID) (models.Board, error) {
	return s.boardService.FindOneById(ctx, id)
}

// MongoConformityStore nối ConformityStore vào ConformityService
type MongoConformityStore struct {
	conformityService *conformitysvc.ConformityService
}

func NewMongoConformityStore(conformityService *conformitysvc.ConformityService) *MongoConformityStore {
	return &MongoConformityStore{conformityService: conformityService}
}

func (s *MongoConformityStore) CreateEdges(ctx context.Context, mainType string, mainTypeID primitive.ObjectID, companyIDs []primitive.ObjectID, customerIDs []primitive.ObjectID) error {
	return s.conformityService.CreateConformity(ctx, mainType, mainTypeID, companyIDs, customerIDs)
}

func (s *MongoConformityStore) RemoveEdgesForMain(ctx context.Context, mainType string, mainTypeID primitive.ObjectID) error {
	return s.conformityService.RemoveConformity(ctx, mainType, mainTypeID)
}

// MongoNotificationTransport lưu và xếp hàng gửi thông báo qua NotificationService
type MongoNotificationTransport struct {
	notificationService *notifsvc.NotificationService
}

func NewMongoNotificationTransport(notificationService *notifsvc.NotificationService) *MongoNotificationTransport {
	return &MongoNotificationTransport{notificationService: notificationService}
}

func (s *MongoNotificationTransport) Send(ctx context.Context, payload notifmodels.NotificationPayload) error {
	_, err := s.notificationService.Send(ctx, payload)
	return err
}

// MongoAuditLog gộp nhật ký hoạt động và audit thành một cổng ghi
type MongoAuditLog struct {
	activityService *activitysvc.ActivityLogService
	auditService    *activitysvc.AuditLogService
}

func NewMongoAuditLog(activityService *activitysvc.ActivityLogService, auditService *activitysvc.AuditLogService) *MongoAuditLog {
	return &MongoAuditLog{
		activityService: activityService,
		auditService:    auditService,
	}
}

func (s *MongoAuditLog) RecordMovement(ctx context.Context, contentType string, contentID primitive.ObjectID, userID primitive.ObjectID, content activitymodels.MovementContent) error {
	return s.activityService.RecordMovement(ctx, contentType, contentID, userID, content)
}

func (s *MongoAuditLog) PutCreateLog(ctx context.Context, entry activitymodels.AuditEntry) error {
	return s.auditService.PutCreateLog(ctx, entry)
}

func (s *MongoAuditLog) PutUpdateLog(ctx context.Context, entry activitymodels.AuditEntry) error {
	return s.auditService.PutUpdateLog(ctx, entry)
}

func (s *MongoAuditLog) PutDeleteLog(ctx context.Context, entry activitymodels.AuditEntry) error {
	return s.auditService.PutDeleteLog(ctx, entry)
}

func (s *MongoAuditLog) RemoveActivityLogs(ctx context.Context, contentType string, contentID primitive.ObjectID) error {
	return s.activityService.RemoveActivityLogs(ctx, contentType, contentID)
}

// MongoChecklistStore nối ChecklistStore vào ChecklistService
type MongoChecklistStore struct {
	checklistService *checklistsvc.ChecklistService
}

func NewMongoChecklistStore(checklistService *checklistsvc.ChecklistService) *MongoChecklistStore {
	return &MongoChecklistStore{checklistService: checklistService}
}

func (s *MongoChecklistStore) RemoveChecklists(ctx context.Context, contentType string, contentTypeID primitive.ObjectID) error {
	return s.checklistService.RemoveChecklists(ctx, contentType, contentTypeID)
}

// MongoNameResolver phân giải tên từ các service domain liên quan
type MongoNameResolver struct {
	stageService   *StageService
	labelService   *LabelService
	productService *productsvc.ProductService
	userService    userFinder
}

// userFinder là phần của UserService mà resolver cần
type userFinder interface {
	FindManyByIds(ctx context.Context, ids []primitive.ObjectID) ([]authmodels.User, error)
}

func NewMongoNameResolver(stageService *StageService, labelService *LabelService, productService *productsvc.ProductService, userService userFinder) *MongoNameResolver {
	return &MongoNameResolver{
		stageService:   stageService,
		labelService:   labelService,
		productService: productService,
		userService:    userService,
	}
}

func (s *MongoNameResolver) StageNames(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	return s.stageService.NameMap(ctx, ids)
}

func (s *MongoNameResolver) LabelNames(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	return s.labelService.NameMap(ctx, ids)
}

func (s *MongoNameResolver) ProductNames(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	return s.productService.NameMap(ctx, ids)
}

func (s *MongoNameResolver) UserNames(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	if len(ids) == 0 {
		return map[primitive.ObjectID]string{}, nil
	}

	users, err := s.userService.FindManyByIds(ctx, ids)
	if err != nil {
		return nil, err
	}

	names := make(map[primitive.ObjectID]string, len(users))
	for _, user := range users {
		names[user.ID] = user.Name
	}
	return names, nil
}

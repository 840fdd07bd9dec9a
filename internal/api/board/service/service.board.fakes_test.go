package boardsvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	activitymodels "github.com/munkhjinod/erxes-api/internal/api/activitylog/models"
	authmodels "github.com/munkhjinod/erxes-api/internal/api/auth/models"
	"github.com/munkhjinod/erxes-api/internal/api/board/models"
	notifmodels "github.com/munkhjinod/erxes-api/internal/api/notification/models"
	"github.com/munkhjinod/erxes-api/internal/common"
)

// Các bản giả in-memory cho test nghiệp vụ bảng, không cần MongoDB.

type fakeItemStore struct {
	items   map[primitive.ObjectID]models.Item
	deleted []primitive.ObjectID
	orders  map[primitive.ObjectID][]models.OrderEntry
}

func newFakeItemStore() *fakeItemStore {
	return &fakeItemStore{
		items:  map[primitive.ObjectID]models.Item{},
		orders: map[primitive.ObjectID][]models.OrderEntry{},
	}
}

func (s *fakeItemStore) GetItem(ctx context.Context, id primitive.ObjectID) (models.Item, error) {
	item, ok := s.items[id]
	if !ok {
		return models.Item{}, common.ErrNotFound
	}
	return item, nil
}

func (s *fakeItemStore) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	item.ID = primitive.NewObjectID()
	s.items[item.ID] = item
	return item, nil
}

func (s *fakeItemStore) UpdateItem(ctx context.Context, id primitive.ObjectID, patch ItemPatch) (models.Item, error) {
	item, ok := s.items[id]
	if !ok {
		return models.Item{}, common.ErrNotFound
	}
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.StageID != nil {
		item.StageID = *patch.StageID
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.AssignedUserIDs != nil {
		item.AssignedUserIDs = *patch.AssignedUserIDs
	}
	if patch.WatchedUserIDs != nil {
		item.WatchedUserIDs = *patch.WatchedUserIDs
	}
	if patch.LabelIDs != nil {
		item.LabelIDs = *patch.LabelIDs
	}
	if patch.ProductsData != nil {
		item.ProductsData = *patch.ProductsData
	}
	if patch.ModifiedBy != nil {
		item.ModifiedBy = *patch.ModifiedBy
	}
	if patch.ModifiedAt != nil {
		item.ModifiedAt = *patch.ModifiedAt
	}
	s.items[id] = item
	return item, nil
}

func (s *fakeItemStore) DeleteItem(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := s.items[id]; !ok {
		return common.ErrNotFound
	}
	delete(s.items, id)
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *fakeItemStore) UpdateOrder(ctx context.Context, stageID primitive.ObjectID, orders []models.OrderEntry) error {
	s.orders[stageID] = orders
	for _, entry := range orders {
		if item, ok := s.items[entry.ID]; ok {
			item.Order = entry.Order
			s.items[entry.ID] = item
		}
	}
	return nil
}

type fakeHierarchyStore struct {
	stages    map[primitive.ObjectID]models.Stage
	pipelines map[primitive.ObjectID]models.Pipeline
	boards    map[primitive.ObjectID]models.Board
}

func newFakeHierarchyStore() *fakeHierarchyStore {
	return &fakeHierarchyStore{
		stages:    map[primitive.ObjectID]models.Stage{},
		pipelines: map[primitive.ObjectID]models.Pipeline{},
		boards:    map[primitive.ObjectID]models.Board{},
	}
}

// addChain tạo nhanh một chuỗi board/pipeline/stage với tên cho trước
func (s *fakeHierarchyStore) addChain(boardName, pipelineName, stageName string, pipelineWatchers []primitive.ObjectID) models.Stage {
	board := models.Board{ID: primitive.NewObjectID(), Name: boardName}
	pipeline := models.Pipeline{ID: primitive.NewObjectID(), Name: pipelineName, BoardID: board.ID, WatchedUserIDs: pipelineWatchers}
	stage := models.Stage{ID: primitive.NewObjectID(), Name: stageName, PipelineID: pipeline.ID}
	s.boards[board.ID] = board
	s.pipelines[pipeline.ID] = pipeline
	s.stages[stage.ID] = stage
	return stage
}

func (s *fakeHierarchyStore) GetStage(ctx context.Context, id primitive.ObjectID) (models.Stage, error) {
	stage, ok := s.stages[id]
	if !ok {
		return models.Stage{}, common.ErrNotFound
	}
	return stage, nil
}

func (s *fakeHierarchyStore) GetPipeline(ctx context.Context, id primitive.ObjectID) (models.Pipeline, error) {
	pipeline, ok := s.pipelines[id]
	if !ok {
		return models.Pipeline{}, common.ErrNotFound
	}
	return pipeline, nil
}

func (s *fakeHierarchyStore) GetBoard(ctx context.Context, id primitive.ObjectID) (models.Board, error) {
	board, ok := s.boards[id]
	if !ok {
		return models.Board{}, common.ErrNotFound
	}
	return board, nil
}

type conformityCall struct {
	mainType    string
	mainTypeID  primitive.ObjectID
	companyIDs  []primitive.ObjectID
	customerIDs []primitive.ObjectID
}

type fakeConformityStore struct {
	created []conformityCall
	removed []conformityCall
}

func (s *fakeConformityStore) CreateEdges(ctx context.Context, mainType string, mainTypeID primitive.ObjectID, companyIDs []primitive.ObjectID, customerIDs []primitive.ObjectID) error {
	s.created = append(s.created, conformityCall{mainType: mainType, mainTypeID: mainTypeID, companyIDs: companyIDs, customerIDs: customerIDs})
	return nil
}

func (s *fakeConformityStore) RemoveEdgesForMain(ctx context.Context, mainType string, mainTypeID primitive.ObjectID) error {
	s.removed = append(s.removed, conformityCall{mainType: mainType, mainTypeID: mainTypeID})
	return nil
}

type fakeAuthorizer struct {
	granted map[string]bool
	err     error
}

func (a *fakeAuthorizer) Can(ctx context.Context, action string, user *authmodels.User) (bool, error) {
	if a.err != nil {
		return false, a.err
	}
	return a.granted[action], nil
}

type fakeTransport struct {
	payloads []notifmodels.NotificationPayload
	err      error
}

func (t *fakeTransport) Send(ctx context.Context, payload notifmodels.NotificationPayload) error {
	if t.err != nil {
		return t.err
	}
	t.payloads = append(t.payloads, payload)
	return nil
}

type movementRecord struct {
	contentType string
	contentID   primitive.ObjectID
	userID      primitive.ObjectID
	content     activitymodels.MovementContent
}

type fakeAuditLog struct {
	movements       []movementRecord
	createEntries   []activitymodels.AuditEntry
	updateEntries   []activitymodels.AuditEntry
	deleteEntries   []activitymodels.AuditEntry
	removedActivity []primitive.ObjectID
}

func (a *fakeAuditLog) RecordMovement(ctx context.Context, contentType string, contentID primitive.ObjectID, userID primitive.ObjectID, content activitymodels.MovementContent) error {
	a.movements = append(a.movements, movementRecord{contentType: contentType, contentID: contentID, userID: userID, content: content})
	return nil
}

func (a *fakeAuditLog) PutCreateLog(ctx context.Context, entry activitymodels.AuditEntry) error {
	a.createEntries = append(a.createEntries, entry)
	return nil
}

func (a *fakeAuditLog) PutUpdateLog(ctx context.Context, entry activitymodels.AuditEntry) error {
	a.updateEntries = append(a.updateEntries, entry)
	return nil
}

func (a *fakeAuditLog) PutDeleteLog(ctx context.Context, entry activitymodels.AuditEntry) error {
	a.deleteEntries = append(a.deleteEntries, entry)
	return nil
}

func (a *fakeAuditLog) RemoveActivityLogs(ctx context.Context, contentType string, contentID primitive.ObjectID) error {
	a.removedActivity = append(a.removedActivity, contentID)
	return nil
}

type fakeChecklistStore struct {
	removed []primitive.ObjectID
}

func (s *fakeChecklistStore) RemoveChecklists(ctx context.Context, contentType string, contentTypeID primitive.ObjectID) error {
	s.removed = append(s.removed, contentTypeID)
	return nil
}

type fakeNameResolver struct {
	names map[primitive.ObjectID]string
}

func (r *fakeNameResolver) resolve(ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	out := map[primitive.ObjectID]string{}
	for _, id := range ids {
		if name, ok := r.names[id]; ok {
			out[id] = name
		}
	}
	return out, nil
}

func (r *fakeNameResolver) StageNames(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	return r.resolve(ids)
}

func (r *fakeNameResolver) UserNames(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	return r.resolve(ids)
}

func (r *fakeNameResolver) LabelNames(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	return r.resolve(ids)
}

func (r *fakeNameResolver) ProductNames(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	return r.resolve(ids)
}

// containsID kiểm tra một ID có trong danh sách hay không
func containsID(ids []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}

// idsEqualAsSet so sánh hai danh sách ID không phân biệt thứ tự
func idsEqualAsSet(a, b []primitive.ObjectID) bool {
	if len(a) != len(b) {
		return false
	}
	for _, x := range a {
		if !containsID(b, x) {
			return false
		}
	}
	return true
}

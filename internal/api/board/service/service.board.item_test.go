// Test các luồng điều phối vòng đời thẻ công việc trên bản giả.
package boardsvc

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "github.com/munkhjinod/erxes-api/internal/api/auth/models"
	"github.com/munkhjinod/erxes-api/internal/api/board/dto"
	"github.com/munkhjinod/erxes-api/internal/api/board/models"
	"github.com/munkhjinod/erxes-api/internal/common"
)

type itemFixture struct {
	service    *ItemService
	items      *fakeItemStore
	hierarchy  *fakeHierarchyStore
	conformity *fakeConformityStore
	transport  *fakeTransport
	audit      *fakeAuditLog
	checklists *fakeChecklistStore
}

func newItemFixture() *itemFixture {
	items := newFakeItemStore()
	hierarchy := newFakeHierarchyStore()
	conformity := &fakeConformityStore{}
	transport := &fakeTransport{}
	audit := &fakeAuditLog{}
	checklists := &fakeChecklistStore{}
	names := &fakeNameResolver{names: map[primitive.ObjectID]string{}}
	authorizer := &fakeAuthorizer{granted: map[string]bool{}}

	svc := NewItemService(items, hierarchy, conformity, authorizer, transport, audit, checklists, names)
	return &itemFixture{
		service:    svc,
		items:      items,
		hierarchy:  hierarchy,
		conformity: conformity,
		transport:  transport,
		audit:      audit,
		checklists: checklists,
	}
}

func ownerUser() *authmodels.User {
	return &authmodels.User{ID: primitive.NewObjectID(), Name: "owner", IsOwner: true}
}

func TestAddItem_TaoTheVaPhatThongBao(t *testing.T) {
	f := newItemFixture()
	stage := f.hierarchy.addChain("B1", "P1", "S1", nil)
	user := ownerUser()

	created, err := f.service.AddItem(context.Background(), user, &dto.ItemAddInput{
		Type:    models.ItemTypeDeal,
		Name:    "Deal 1",
		StageID: stage.ID,
	})
	if err != nil {
		t.Fatalf("AddItem trả về lỗi: %v", err)
	}

	if created.InitialStageID != stage.ID {
		t.Errorf("initialStageId phải là stage lúc tạo, có %s", created.InitialStageID.Hex())
	}
	if !containsID(created.WatchedUserIDs, user.ID) {
		t.Error("người tạo phải tự động theo dõi thẻ")
	}

	addPayloads := 0
	for _, payload := range f.transport.payloads {
		if payload.NotifType == "dealAdd" {
			addPayloads++
			if containsID(payload.Receivers, user.ID) {
				t.Error("người tạo nằm trong danh sách nhận thông báo dealAdd")
			}
		}
	}
	if addPayloads != 1 {
		t.Errorf("muốn đúng 1 thông báo dealAdd, có %d", addPayloads)
	}

	if len(f.audit.createEntries) != 1 {
		t.Fatalf("muốn 1 bản ghi audit create, có %d", len(f.audit.createEntries))
	}
	if f.audit.createEntries[0].ObjectID != created.ID {
		t.Error("bản ghi audit create trỏ sai thẻ")
	}
}

func TestAddItem_TaoCanhConformity(t *testing.T) {
	f := newItemFixture()
	stage := f.hierarchy.addChain("B1", "P1", "S1", nil)
	user := ownerUser()

	companyID := primitive.NewObjectID()
	customerID := primitive.NewObjectID()

	created, err := f.service.AddItem(context.Background(), user, &dto.ItemAddInput{
		Type:        models.ItemTypeDeal,
		Name:        "Deal 1",
		StageID:     stage.ID,
		CompanyIDs:  []primitive.ObjectID{companyID},
		CustomerIDs: []primitive.ObjectID{customerID},
	})
	if err != nil {
		t.Fatalf("AddItem trả về lỗi: %v", err)
	}

	if len(f.conformity.created) != 1 {
		t.Fatalf("muốn 1 lần gọi tạo cạnh conformity, có %d", len(f.conformity.created))
	}
	call := f.conformity.created[0]
	if call.mainType != "deal" || call.mainTypeID != created.ID {
		t.Error("cạnh conformity gắn sai thẻ chính")
	}
	if !containsID(call.companyIDs, companyID) || !containsID(call.customerIDs, customerID) {
		t.Error("cạnh conformity thiếu company/customer")
	}
}

func TestEditItem_TinhTapMoiVaTapBiGo(t *testing.T) {
	f := newItemFixture()
	stage := f.hierarchy.addChain("B1", "P1", "S1", nil)
	user := ownerUser()

	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	c := primitive.NewObjectID()

	created, err := f.service.AddItem(context.Background(), user, &dto.ItemAddInput{
		Type:            models.ItemTypeDeal,
		Name:            "Deal 1",
		StageID:         stage.ID,
		AssignedUserIDs: []primitive.ObjectID{a, b},
	})
	if err != nil {
		t.Fatalf("AddItem trả về lỗi: %v", err)
	}
	f.transport.payloads = nil

	newAssigned := []primitive.ObjectID{b, c}
	_, err = f.service.EditItem(context.Background(), user, models.ItemTypeDeal, created.ID, &dto.ItemEditInput{
		AssignedUserIDs: &newAssigned,
	})
	if err != nil {
		t.Fatalf("EditItem trả về lỗi: %v", err)
	}

	if len(f.transport.payloads) != 3 {
		t.Fatalf("muốn 3 payload (removeAssign, add, nền), có %d", len(f.transport.payloads))
	}

	removePayload := f.transport.payloads[0]
	if removePayload.NotifType != "dealRemoveAssign" {
		t.Errorf("payload đầu phải là dealRemoveAssign, có %s", removePayload.NotifType)
	}
	if !idsEqualAsSet(removePayload.Receivers, []primitive.ObjectID{a}) {
		t.Errorf("tập người bị gỡ sai: %v, muốn [a]", removePayload.Receivers)
	}

	addPayload := f.transport.payloads[1]
	if addPayload.NotifType != "dealAdd" {
		t.Errorf("payload thứ hai phải là dealAdd, có %s", addPayload.NotifType)
	}
	if !idsEqualAsSet(addPayload.Receivers, []primitive.ObjectID{c}) {
		t.Errorf("tập người được mời sai: %v, muốn [c]", addPayload.Receivers)
	}

	basePayload := f.transport.payloads[2]
	if basePayload.NotifType != "dealEdit" {
		t.Errorf("payload cuối phải là dealEdit, có %s", basePayload.NotifType)
	}
	for _, excluded := range []primitive.ObjectID{a, c, user.ID} {
		if containsID(basePayload.Receivers, excluded) {
			t.Errorf("payload nền không được chứa %s", excluded.Hex())
		}
	}

	if len(f.audit.updateEntries) != 1 {
		t.Errorf("muốn 1 bản ghi audit update, có %d", len(f.audit.updateEntries))
	}
}

func TestChangeItem_DoiStageVaThongBaoDuongDi(t *testing.T) {
	f := newItemFixture()
	oldStage := f.hierarchy.addChain("B1", "P1", "A", nil)
	newStage := f.hierarchy.addChain("B1", "P1", "C", nil)
	user := ownerUser()

	created, err := f.service.AddItem(context.Background(), user, &dto.ItemAddInput{
		Type:    models.ItemTypeDeal,
		Name:    "Deal 1",
		StageID: oldStage.ID,
	})
	if err != nil {
		t.Fatalf("AddItem trả về lỗi: %v", err)
	}
	f.transport.payloads = nil

	updated, err := f.service.ChangeItem(context.Background(), user, models.ItemTypeDeal, created.ID, &dto.ItemChangeInput{
		DestinationStageID: newStage.ID,
	})
	if err != nil {
		t.Fatalf("ChangeItem trả về lỗi: %v", err)
	}

	if updated.StageID != newStage.ID {
		t.Error("stageId chưa được cập nhật sang stage đích")
	}
	if len(f.audit.movements) != 1 {
		t.Fatalf("muốn 1 bản ghi di chuyển, có %d", len(f.audit.movements))
	}
	if f.audit.movements[0].content.Text != "A to C" {
		t.Errorf("text di chuyển sai: %q", f.audit.movements[0].content.Text)
	}

	if len(f.transport.payloads) != 1 {
		t.Fatalf("muốn 1 payload dealChange, có %d", len(f.transport.payloads))
	}
	if f.transport.payloads[0].NotifType != "dealChange" {
		t.Errorf("notifType sai: %s", f.transport.payloads[0].NotifType)
	}
}

func TestChangeItem_StageDichKhongTonTaiTraNotFound(t *testing.T) {
	f := newItemFixture()
	stage := f.hierarchy.addChain("B1", "P1", "A", nil)
	user := ownerUser()

	created, err := f.service.AddItem(context.Background(), user, &dto.ItemAddInput{
		Type:    models.ItemTypeDeal,
		Name:    "Deal 1",
		StageID: stage.ID,
	})
	if err != nil {
		t.Fatalf("AddItem trả về lỗi: %v", err)
	}

	_, err = f.service.ChangeItem(context.Background(), user, models.ItemTypeDeal, created.ID, &dto.ItemChangeInput{
		DestinationStageID: primitive.NewObjectID(),
	})
	if err == nil {
		t.Fatal("chuyển sang stage không tồn tại phải trả lỗi")
	}
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("muốn lỗi NotFound nguyên vẹn, có %v", err)
	}
	if errors.Is(err, common.ErrTransport) {
		t.Error("lỗi dữ liệu không được đội lốt lỗi phát thông báo")
	}
}

func TestUpdateItemsOrder_KhongThongBaoKhongAudit(t *testing.T) {
	f := newItemFixture()
	stage := f.hierarchy.addChain("B1", "P1", "S1", nil)
	user := ownerUser()

	created, err := f.service.AddItem(context.Background(), user, &dto.ItemAddInput{
		Type:    models.ItemTypeDeal,
		Name:    "Deal 1",
		StageID: stage.ID,
	})
	if err != nil {
		t.Fatalf("AddItem trả về lỗi: %v", err)
	}
	f.transport.payloads = nil
	f.audit.createEntries = nil

	err = f.service.UpdateItemsOrder(context.Background(), user, models.ItemTypeDeal, &dto.ItemsOrderInput{
		StageID: stage.ID,
		Orders:  []models.OrderEntry{{ID: created.ID, Order: 5}},
	})
	if err != nil {
		t.Fatalf("UpdateItemsOrder trả về lỗi: %v", err)
	}

	if f.items.items[created.ID].Order != 5 {
		t.Error("thứ tự mới chưa được ghi")
	}
	if len(f.transport.payloads) != 0 {
		t.Error("updateOrder không được phát thông báo")
	}
	if len(f.audit.createEntries)+len(f.audit.updateEntries) != 0 {
		t.Error("updateOrder không được ghi audit")
	}
}

func TestRemoveItem_ThongBaoTruocKhiXoaVaDonDep(t *testing.T) {
	f := newItemFixture()
	stage := f.hierarchy.addChain("B1", "P1", "S1", nil)
	user := ownerUser()

	created, err := f.service.AddItem(context.Background(), user, &dto.ItemAddInput{
		Type:    models.ItemTypeDeal,
		Name:    "Deal 1",
		StageID: stage.ID,
	})
	if err != nil {
		t.Fatalf("AddItem trả về lỗi: %v", err)
	}
	f.transport.payloads = nil

	if err := f.service.RemoveItem(context.Background(), user, models.ItemTypeDeal, created.ID); err != nil {
		t.Fatalf("RemoveItem trả về lỗi: %v", err)
	}

	if len(f.transport.payloads) != 1 || f.transport.payloads[0].NotifType != "dealDelete" {
		t.Error("phải phát đúng 1 thông báo dealDelete trước khi xóa")
	}
	if _, ok := f.items.items[created.ID]; ok {
		t.Error("thẻ vẫn còn sau khi xóa")
	}
	if len(f.conformity.removed) != 1 {
		t.Error("cạnh conformity của thẻ chưa được dọn")
	}
	if !containsID(f.checklists.removed, created.ID) {
		t.Error("checklist của thẻ chưa được dọn")
	}
	if !containsID(f.audit.removedActivity, created.ID) {
		t.Error("nhật ký hoạt động của thẻ chưa được dọn")
	}
	if len(f.audit.deleteEntries) != 1 {
		t.Errorf("muốn 1 bản ghi audit delete, có %d", len(f.audit.deleteEntries))
	}
}

func TestWatchItem_BatTatTheoDoi(t *testing.T) {
	f := newItemFixture()
	stage := f.hierarchy.addChain("B1", "P1", "S1", nil)
	creator := ownerUser()
	watcher := &authmodels.User{ID: primitive.NewObjectID(), Name: "watcher", IsOwner: true}

	created, err := f.service.AddItem(context.Background(), creator, &dto.ItemAddInput{
		Type:    models.ItemTypeDeal,
		Name:    "Deal 1",
		StageID: stage.ID,
	})
	if err != nil {
		t.Fatalf("AddItem trả về lỗi: %v", err)
	}

	updated, err := f.service.WatchItem(context.Background(), watcher, models.ItemTypeDeal, created.ID, true)
	if err != nil {
		t.Fatalf("WatchItem(add) trả về lỗi: %v", err)
	}
	if !containsID(updated.WatchedUserIDs, watcher.ID) {
		t.Error("người dùng chưa được thêm vào danh sách theo dõi")
	}

	updated, err = f.service.WatchItem(context.Background(), watcher, models.ItemTypeDeal, created.ID, false)
	if err != nil {
		t.Fatalf("WatchItem(remove) trả về lỗi: %v", err)
	}
	if containsID(updated.WatchedUserIDs, watcher.ID) {
		t.Error("người dùng vẫn còn trong danh sách theo dõi sau khi bỏ")
	}
}

func TestAddItem_ThieuQuyenKhongGhiGi(t *testing.T) {
	f := newItemFixture()
	stage := f.hierarchy.addChain("B1", "P1", "S1", nil)
	user := &authmodels.User{ID: primitive.NewObjectID(), Name: "member"}

	_, err := f.service.AddItem(context.Background(), user, &dto.ItemAddInput{
		Type:    models.ItemTypeDeal,
		Name:    "Deal 1",
		StageID: stage.ID,
	})
	if !errors.Is(err, common.ErrPermissionDenied) {
		t.Fatalf("muốn lỗi PermissionDenied, có %v", err)
	}

	if len(f.items.items) != 0 {
		t.Error("bị từ chối quyền nhưng thẻ vẫn được tạo")
	}
	if len(f.transport.payloads) != 0 {
		t.Error("bị từ chối quyền nhưng vẫn phát thông báo")
	}
}

func TestEditItem_LoiTransportSauKhiDaGhi(t *testing.T) {
	f := newItemFixture()
	stage := f.hierarchy.addChain("B1", "P1", "S1", nil)
	user := ownerUser()

	created, err := f.service.AddItem(context.Background(), user, &dto.ItemAddInput{
		Type:    models.ItemTypeDeal,
		Name:    "Deal 1",
		StageID: stage.ID,
	})
	if err != nil {
		t.Fatalf("AddItem trả về lỗi: %v", err)
	}

	f.transport.err = errors.New("smtp down")
	newName := "Deal 1 updated"
	updated, err := f.service.EditItem(context.Background(), user, models.ItemTypeDeal, created.ID, &dto.ItemEditInput{
		Name: &newName,
	})

	if !errors.Is(err, common.ErrTransport) {
		t.Fatalf("muốn lỗi dạng ErrTransport (partial-failure), có %v", err)
	}
	// mutation đã ghi xong, không rollback
	if updated.Name != newName {
		t.Error("kết quả trả về chưa mang tên mới")
	}
	if f.items.items[created.ID].Name != newName {
		t.Error("lỗi transport không được rollback mutation đã ghi")
	}
}

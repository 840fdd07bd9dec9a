// Test tính người nhận và thứ tự phát thông báo của FanoutEngine.
package boardsvc

import (
	"context"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "github.com/munkhjinod/erxes-api/internal/api/auth/models"
	"github.com/munkhjinod/erxes-api/internal/api/board/models"
)

func newFanoutFixture(pipelineWatchers []primitive.ObjectID) (*FanoutEngine, *fakeTransport, models.Stage) {
	hierarchy := newFakeHierarchyStore()
	stage := hierarchy.addChain("B1", "P1", "A", pipelineWatchers)
	transport := &fakeTransport{}
	engine := NewFanoutEngine(NewHierarchyResolver(hierarchy), transport)
	return engine, transport, stage
}

func TestNotifiedUserIDs_HopGopVaKhuTrungLap(t *testing.T) {
	assigned := primitive.NewObjectID()
	watcher := primitive.NewObjectID()
	pipelineWatcher := primitive.NewObjectID()

	engine, _, stage := newFanoutFixture([]primitive.ObjectID{pipelineWatcher, assigned})

	item := models.Item{
		ID:              primitive.NewObjectID(),
		Name:            "Deal 1",
		StageID:         stage.ID,
		AssignedUserIDs: []primitive.ObjectID{assigned, assigned},
		WatchedUserIDs:  []primitive.ObjectID{watcher},
	}

	ids, err := engine.NotifiedUserIDs(context.Background(), item)
	if err != nil {
		t.Fatalf("NotifiedUserIDs trả về lỗi: %v", err)
	}

	expected := []primitive.ObjectID{assigned, watcher, pipelineWatcher}
	if !idsEqualAsSet(ids, expected) {
		t.Errorf("tập người nhận sai: có %v, muốn %v", ids, expected)
	}
}

func TestNotify_LoaiTruNguoiThucHien(t *testing.T) {
	actor := primitive.NewObjectID()
	other := primitive.NewObjectID()

	engine, transport, stage := newFanoutFixture([]primitive.ObjectID{actor, other})

	item := models.Item{
		ID:              primitive.NewObjectID(),
		Name:            "Deal 1",
		StageID:         stage.ID,
		AssignedUserIDs: []primitive.ObjectID{actor},
	}
	user := &authmodels.User{ID: actor}

	err := engine.Notify(context.Background(), NotifyParams{
		Item:         item,
		User:         user,
		NotifType:    "dealEdit",
		ContentType:  models.ItemTypeDeal,
		Action:       "edited",
		InvitedUsers: []primitive.ObjectID{actor},
		RemovedUsers: []primitive.ObjectID{actor},
	})
	if err != nil {
		t.Fatalf("Notify trả về lỗi: %v", err)
	}

	for i, payload := range transport.payloads {
		if containsID(payload.Receivers, actor) {
			t.Errorf("payload %d (%s) chứa người thực hiện trong danh sách nhận", i, payload.NotifType)
		}
	}
}

func TestNotify_RemoveAssignNhanDungTapNguoiBiGo(t *testing.T) {
	actor := primitive.NewObjectID()
	u1 := primitive.NewObjectID()
	u2 := primitive.NewObjectID()

	engine, transport, stage := newFanoutFixture(nil)

	item := models.Item{ID: primitive.NewObjectID(), Name: "Deal 1", StageID: stage.ID}
	user := &authmodels.User{ID: actor}

	err := engine.Notify(context.Background(), NotifyParams{
		Item:         item,
		User:         user,
		NotifType:    "dealEdit",
		ContentType:  models.ItemTypeDeal,
		Action:       "edited",
		RemovedUsers: []primitive.ObjectID{u1, u2, actor},
	})
	if err != nil {
		t.Fatalf("Notify trả về lỗi: %v", err)
	}

	if len(transport.payloads) < 1 {
		t.Fatal("không có payload nào được phát")
	}
	first := transport.payloads[0]
	if first.NotifType != "dealRemoveAssign" {
		t.Errorf("payload đầu tiên phải là dealRemoveAssign, có %s", first.NotifType)
	}
	if !idsEqualAsSet(first.Receivers, []primitive.ObjectID{u1, u2}) {
		t.Errorf("người nhận REMOVE_ASSIGN sai: có %v, muốn đúng {u1,u2}", first.Receivers)
	}
}

func TestNotify_NguoiDuocMoiKhongNhanPayloadNen(t *testing.T) {
	actor := primitive.NewObjectID()
	invited := primitive.NewObjectID()

	// invited đồng thời là người theo dõi pipeline
	engine, transport, stage := newFanoutFixture([]primitive.ObjectID{invited})

	item := models.Item{ID: primitive.NewObjectID(), Name: "Deal 1", StageID: stage.ID}
	user := &authmodels.User{ID: actor}

	err := engine.Notify(context.Background(), NotifyParams{
		Item:         item,
		User:         user,
		NotifType:    "dealEdit",
		ContentType:  models.ItemTypeDeal,
		Action:       "edited",
		InvitedUsers: []primitive.ObjectID{invited},
	})
	if err != nil {
		t.Fatalf("Notify trả về lỗi: %v", err)
	}

	base := transport.payloads[len(transport.payloads)-1]
	if base.NotifType != "dealEdit" {
		t.Fatalf("payload cuối phải là payload nền dealEdit, có %s", base.NotifType)
	}
	if containsID(base.Receivers, invited) {
		t.Error("người được mời vẫn nằm trong danh sách nhận của payload nền")
	}
}

func TestNotify_ThuTuPhat(t *testing.T) {
	actor := primitive.NewObjectID()
	removed := primitive.NewObjectID()
	invited := primitive.NewObjectID()
	watcher := primitive.NewObjectID()

	engine, transport, stage := newFanoutFixture([]primitive.ObjectID{watcher})

	item := models.Item{ID: primitive.NewObjectID(), Name: "Deal 1", StageID: stage.ID}
	user := &authmodels.User{ID: actor}

	err := engine.Notify(context.Background(), NotifyParams{
		Item:         item,
		User:         user,
		NotifType:    "dealEdit",
		ContentType:  models.ItemTypeDeal,
		Action:       "edited",
		InvitedUsers: []primitive.ObjectID{invited},
		RemovedUsers: []primitive.ObjectID{removed},
	})
	if err != nil {
		t.Fatalf("Notify trả về lỗi: %v", err)
	}

	if len(transport.payloads) != 3 {
		t.Fatalf("muốn 3 payload, có %d", len(transport.payloads))
	}
	order := []string{transport.payloads[0].NotifType, transport.payloads[1].NotifType, transport.payloads[2].NotifType}
	want := []string{"dealRemoveAssign", "dealAdd", "dealEdit"}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("thứ tự phát sai tại vị trí %d: có %s, muốn %s", i, order[i], want[i])
		}
	}
}

func TestNotify_NoiDungVaTieuDeMacDinh(t *testing.T) {
	actor := primitive.NewObjectID()
	watcher := primitive.NewObjectID()

	engine, transport, stage := newFanoutFixture([]primitive.ObjectID{watcher})

	item := models.Item{ID: primitive.NewObjectID(), Name: "Deal 1", StageID: stage.ID}
	user := &authmodels.User{ID: actor}

	err := engine.Notify(context.Background(), NotifyParams{
		Item:        item,
		User:        user,
		NotifType:   "dealEdit",
		ContentType: models.ItemTypeDeal,
		Action:      "edited",
	})
	if err != nil {
		t.Fatalf("Notify trả về lỗi: %v", err)
	}

	base := transport.payloads[0]
	if base.Content != "deal 'Deal 1'" {
		t.Errorf("nội dung mặc định sai: %q", base.Content)
	}
	if base.Title != "deal updated" {
		t.Errorf("tiêu đề mặc định sai: %q", base.Title)
	}
}

func TestNotify_HanhDongMacDinhKhiBoTrong(t *testing.T) {
	actor := primitive.NewObjectID()
	watcher := primitive.NewObjectID()

	engine, transport, stage := newFanoutFixture([]primitive.ObjectID{watcher})

	item := models.Item{ID: primitive.NewObjectID(), Name: "Deal 1", StageID: stage.ID}
	user := &authmodels.User{ID: actor}

	err := engine.Notify(context.Background(), NotifyParams{
		Item:        item,
		User:        user,
		NotifType:   "dealEdit",
		ContentType: models.ItemTypeDeal,
	})
	if err != nil {
		t.Fatalf("Notify trả về lỗi: %v", err)
	}

	base := transport.payloads[0]
	if base.Action != "has updated deal" {
		t.Errorf("hành động mặc định sai: %q", base.Action)
	}
}

func TestNotify_LinkTicketDiQuaInbox(t *testing.T) {
	actor := primitive.NewObjectID()
	watcher := primitive.NewObjectID()

	engine, transport, stage := newFanoutFixture([]primitive.ObjectID{watcher})

	item := models.Item{ID: primitive.NewObjectID(), Name: "Ticket 1", StageID: stage.ID}
	user := &authmodels.User{ID: actor}

	err := engine.Notify(context.Background(), NotifyParams{
		Item:        item,
		User:        user,
		NotifType:   "ticketEdit",
		ContentType: models.ItemTypeTicket,
		Action:      "edited",
	})
	if err != nil {
		t.Fatalf("Notify trả về lỗi: %v", err)
	}

	link := transport.payloads[0].Link
	if !strings.HasPrefix(link, "/inbox/ticket/board?") {
		t.Errorf("link ticket phải đi qua /inbox, có %q", link)
	}
	if !strings.Contains(link, "itemId="+item.ID.Hex()) {
		t.Errorf("link thiếu itemId: %q", link)
	}
}

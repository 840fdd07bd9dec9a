// Test tính idempotent và no-op của service quản lý cạnh conformity trên kho giả.
package conformitysvc

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	models "github.com/munkhjinod/erxes-api/internal/api/conformity/models"
)

// fakeEdgeStore mô phỏng ngữ nghĩa upsert của Mongo trên unique index
// (mainType, mainTypeId, relType, relTypeId): trùng khóa thì không thêm bản ghi mới
type fakeEdgeStore struct {
	edges []models.ConformityEdge
}

func matchEdge(edge models.ConformityEdge, filter bson.M) bool {
	for key, value := range filter {
		switch key {
		case "mainType":
			if edge.MainType != value.(string) {
				return false
			}
		case "mainTypeId":
			if edge.MainTypeID != value.(primitive.ObjectID) {
				return false
			}
		case "relType":
			if edge.RelType != value.(string) {
				return false
			}
		case "relTypeId":
			if edge.RelTypeID != value.(primitive.ObjectID) {
				return false
			}
		}
	}
	return true
}

func (s *fakeEdgeStore) Upsert(ctx context.Context, filter interface{}, data interface{}) (models.ConformityEdge, error) {
	f := filter.(bson.M)
	for _, edge := range s.edges {
		if matchEdge(edge, f) {
			return edge, nil
		}
	}

	d := data.(map[string]interface{})
	edge := models.ConformityEdge{
		ID:         primitive.NewObjectID(),
		MainType:   d["mainType"].(string),
		MainTypeID: d["mainTypeId"].(primitive.ObjectID),
		RelType:    d["relType"].(string),
		RelTypeID:  d["relTypeId"].(primitive.ObjectID),
	}
	s.edges = append(s.edges, edge)
	return edge, nil
}

func (s *fakeEdgeStore) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	f := filter.(bson.M)
	var kept []models.ConformityEdge
	var deleted int64
	for _, edge := range s.edges {
		if matchEdge(edge, f) {
			deleted++
			continue
		}
		kept = append(kept, edge)
	}
	s.edges = kept
	return deleted, nil
}

func (s *fakeEdgeStore) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]models.ConformityEdge, error) {
	f := filter.(bson.M)
	var found []models.ConformityEdge
	for _, edge := range s.edges {
		if matchEdge(edge, f) {
			found = append(found, edge)
		}
	}
	return found, nil
}

func newConformityFixture() (*ConformityService, *fakeEdgeStore) {
	store := &fakeEdgeStore{}
	return &ConformityService{store: store}, store
}

func TestAddConformity_GoiHaiLanChiMotCanh(t *testing.T) {
	svc, store := newConformityFixture()
	dealID := primitive.NewObjectID()
	companyID := primitive.NewObjectID()

	first, err := svc.AddConformity(context.Background(), "deal", dealID, models.RelTypeCompany, companyID)
	if err != nil {
		t.Fatalf("AddConformity lần 1 trả về lỗi: %v", err)
	}
	second, err := svc.AddConformity(context.Background(), "deal", dealID, models.RelTypeCompany, companyID)
	if err != nil {
		t.Fatalf("AddConformity lần 2 trả về lỗi: %v", err)
	}

	if len(store.edges) != 1 {
		t.Fatalf("muốn đúng 1 cạnh sau hai lần thêm, có %d", len(store.edges))
	}
	if first.ID != second.ID {
		t.Error("hai lần thêm cùng tham số phải trả về cùng một cạnh")
	}
}

func TestRemoveConformity_KhongCoCanhNaoLaNoOp(t *testing.T) {
	svc, store := newConformityFixture()

	err := svc.RemoveConformity(context.Background(), "deal", primitive.NewObjectID())
	if err != nil {
		t.Fatalf("xóa trên entity không có cạnh phải là no-op, có lỗi: %v", err)
	}
	if len(store.edges) != 0 {
		t.Errorf("kho phải vẫn rỗng, có %d cạnh", len(store.edges))
	}
}

func TestCreateConformity_MotCanhChoMoiID(t *testing.T) {
	svc, store := newConformityFixture()
	dealID := primitive.NewObjectID()
	companyID := primitive.NewObjectID()
	customer1 := primitive.NewObjectID()
	customer2 := primitive.NewObjectID()

	err := svc.CreateConformity(context.Background(), "deal", dealID,
		[]primitive.ObjectID{companyID}, []primitive.ObjectID{customer1, customer2})
	if err != nil {
		t.Fatalf("CreateConformity trả về lỗi: %v", err)
	}

	if len(store.edges) != 3 {
		t.Fatalf("muốn 3 cạnh, có %d", len(store.edges))
	}

	customerIDs, err := svc.RelatedIDs(context.Background(), "deal", dealID, models.RelTypeCustomer)
	if err != nil {
		t.Fatalf("RelatedIDs trả về lỗi: %v", err)
	}
	if len(customerIDs) != 2 {
		t.Errorf("muốn 2 customer liên quan, có %d", len(customerIDs))
	}
}

func TestRemoveConformity_XoaMoiCanhCuaMain(t *testing.T) {
	svc, store := newConformityFixture()
	dealID := primitive.NewObjectID()
	otherDealID := primitive.NewObjectID()

	err := svc.CreateConformity(context.Background(), "deal", dealID,
		[]primitive.ObjectID{primitive.NewObjectID()}, []primitive.ObjectID{primitive.NewObjectID()})
	if err != nil {
		t.Fatalf("CreateConformity trả về lỗi: %v", err)
	}
	err = svc.CreateConformity(context.Background(), "deal", otherDealID,
		nil, []primitive.ObjectID{primitive.NewObjectID()})
	if err != nil {
		t.Fatalf("CreateConformity trả về lỗi: %v", err)
	}

	if err := svc.RemoveConformity(context.Background(), "deal", dealID); err != nil {
		t.Fatalf("RemoveConformity trả về lỗi: %v", err)
	}

	if len(store.edges) != 1 {
		t.Fatalf("chỉ cạnh của thẻ khác được giữ lại, có %d cạnh", len(store.edges))
	}
	if store.edges[0].MainTypeID != otherDealID {
		t.Error("cạnh còn lại trỏ sai thẻ chính")
	}
}

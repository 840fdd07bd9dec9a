package boardsvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	activitymodels "github.com/munkhjinod/erxes-api/internal/api/activitylog/models"
	"github.com/munkhjinod/erxes-api/internal/api/board/models"
	"github.com/munkhjinod/erxes-api/internal/utility"
)

// nameLookup là một hàm phân giải tên của NameResolver
type nameLookup func(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error)

// gatherNames phân giải một danh sách ID thành các ChangeDesc cho một trường,
// giữ nguyên thứ tự đầu vào và lặng lẽ bỏ qua ID không phân giải được
func gatherNames(ctx context.Context, lookup nameLookup, field string, ids []primitive.ObjectID) ([]activitymodels.ChangeDesc, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	names, err := lookup(ctx, utility.Unique(ids))
	if err != nil {
		return nil, err
	}

	var descs []activitymodels.ChangeDesc
	for _, id := range ids {
		name, ok := names[id]
		if !ok {
			continue
		}
		descs = append(descs, activitymodels.ChangeDesc{
			Field: field,
			ID:    id.Hex(),
			Name:  name,
		})
	}
	return descs, nil
}

// gatherItemFieldNames gom các ChangeDesc cho mọi trường tham chiếu của một thẻ:
// stage hiện tại và stage ban đầu, người liên quan, nhãn và sản phẩm
func gatherItemFieldNames(ctx context.Context, resolver NameResolver, item models.Item, userIDs []primitive.ObjectID) ([]activitymodels.ChangeDesc, error) {
	var all []activitymodels.ChangeDesc

	// Stage ban đầu ghi dưới khóa riêng, kể cả khi trùng stage hiện tại
	if !item.InitialStageID.IsZero() {
		descs, err := gatherNames(ctx, resolver.StageNames, "initialStageId", []primitive.ObjectID{item.InitialStageID})
		if err != nil {
			return nil, err
		}
		all = append(all, descs...)
	}

	descs, err := gatherNames(ctx, resolver.StageNames, "stageId", []primitive.ObjectID{item.StageID})
	if err != nil {
		return nil, err
	}
	all = append(all, descs...)

	descs, err = gatherNames(ctx, resolver.UserNames, "userId", userIDs)
	if err != nil {
		return nil, err
	}
	all = append(all, descs...)

	descs, err = gatherNames(ctx, resolver.LabelNames, "labelIds", item.LabelIDs)
	if err != nil {
		return nil, err
	}
	all = append(all, descs...)

	productIDs := make([]primitive.ObjectID, 0, len(item.ProductsData))
	for _, pd := range item.ProductsData {
		productIDs = append(productIDs, pd.ProductID)
	}
	descs, err = gatherNames(ctx, resolver.ProductNames, "productsData", productIDs)
	if err != nil {
		return nil, err
	}
	all = append(all, descs...)

	return all, nil
}

package boardsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "github.com/munkhjinod/erxes-api/internal/api/auth/models"
	"github.com/munkhjinod/erxes-api/internal/api/board/models"
	notifmodels "github.com/munkhjinod/erxes-api/internal/api/notification/models"
	"github.com/munkhjinod/erxes-api/internal/utility"
)

// NotifyParams là tham số của một lần phát thông báo quanh một thẻ
type NotifyParams struct {
	Item         models.Item
	User         *authmodels.User
	NotifType    string
	ContentType  models.ItemType
	Action       string
	Content      string
	InvitedUsers []primitive.ObjectID
	RemovedUsers []primitive.ObjectID
}

// FanoutEngine tính người nhận và phát lần lượt các payload thông báo
// quanh một thay đổi trên thẻ. Engine không retry, lỗi transport trả
// thẳng cho bên gọi
type FanoutEngine struct {
	resolver  *HierarchyResolver
	transport NotificationTransport
}

// NewFanoutEngine tạo engine phát thông báo
func NewFanoutEngine(resolver *HierarchyResolver, transport NotificationTransport) *FanoutEngine {
	return &FanoutEngine{
		resolver:  resolver,
		transport: transport,
	}
}

// NotifiedUserIDs trả về tập người nhận nền của một thẻ:
// người được gán, người theo dõi thẻ và người theo dõi pipeline, đã khử trùng lặp
func (e *FanoutEngine) NotifiedUserIDs(ctx context.Context, item models.Item) ([]primitive.ObjectID, error) {
	hierarchy, err := e.resolver.ResolveHierarchy(ctx, item.StageID)
	if err != nil {
		return nil, err
	}

	var ids []primitive.ObjectID
	ids = append(ids, item.AssignedUserIDs...)
	ids = append(ids, item.WatchedUserIDs...)
	ids = append(ids, hierarchy.Pipeline.WatchedUserIDs...)
	return utility.Unique(ids), nil
}

// Notify phát các payload theo thứ tự cố định: REMOVE_ASSIGN cho người bị gỡ,
// ADD cho người mới được mời, rồi payload nền cho những người còn lại.
// Người thực hiện không bao giờ nằm trong danh sách nhận
func (e *FanoutEngine) Notify(ctx context.Context, params NotifyParams) error {
	item := params.Item
	actorID := params.User.ID
	kinds := models.NotificationKindsByType[params.ContentType]

	hierarchy, err := e.resolver.ResolveHierarchy(ctx, item.StageID)
	if err != nil {
		return err
	}

	content := params.Content
	if content == "" {
		content = fmt.Sprintf("%s '%s'", params.ContentType, item.Name)
	}
	action := params.Action
	if action == "" {
		action = fmt.Sprintf("has updated %s", params.ContentType)
	}
	title := fmt.Sprintf("%s updated", params.ContentType)
	link := e.buildLink(params.ContentType, hierarchy, item.ID)

	base := notifmodels.NotificationPayload{
		CreatedUserID: actorID,
		Title:         title,
		ContentType:   string(params.ContentType),
		ContentTypeID: item.ID,
		Link:          link,
	}

	if len(params.RemovedUsers) > 0 {
		payload := base
		payload.NotifType = kinds.RemoveAssign
		payload.Action = fmt.Sprintf("removed you from %s", params.ContentType)
		payload.Content = fmt.Sprintf("'%s'", item.Name)
		payload.Receivers = utility.Difference(utility.Unique(params.RemovedUsers), []primitive.ObjectID{actorID})
		if err := e.transport.Send(ctx, payload); err != nil {
			return err
		}
	}

	if len(params.InvitedUsers) > 0 {
		payload := base
		payload.NotifType = kinds.Add
		payload.Action = fmt.Sprintf("invited you to the %s: ", params.ContentType)
		payload.Content = fmt.Sprintf("'%s'", item.Name)
		payload.Receivers = utility.Difference(utility.Unique(params.InvitedUsers), []primitive.ObjectID{actorID})
		if err := e.transport.Send(ctx, payload); err != nil {
			return err
		}
	}

	notified, err := e.NotifiedUserIDs(ctx, item)
	if err != nil {
		return err
	}

	excluded := append([]primitive.ObjectID{actorID}, params.RemovedUsers...)
	excluded = append(excluded, params.InvitedUsers...)

	payload := base
	payload.NotifType = params.NotifType
	payload.Action = action
	payload.Content = content
	payload.Receivers = utility.Difference(notified, excluded)
	return e.transport.Send(ctx, payload)
}

// buildLink dựng đường dẫn tới thẻ trên giao diện.
// Ticket đi qua khu vực inbox, các loại khác dùng đường dẫn board mặc định
func (e *FanoutEngine) buildLink(contentType models.ItemType, hierarchy models.Hierarchy, itemID primitive.ObjectID) string {
	route := ""
	if contentType == models.ItemTypeTicket {
		route = "/inbox"
	}
	return fmt.Sprintf("%s/%s/board?id=%s&pipelineId=%s&itemId=%s",
		route, contentType, hierarchy.Board.ID.Hex(), hierarchy.Pipeline.ID.Hex(), itemID.Hex())
}

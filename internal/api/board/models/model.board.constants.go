package models

// ItemType là loại thẻ công việc di chuyển trên bảng Kanban
type ItemType string

const (
	ItemTypeDeal       ItemType = "deal"
	ItemTypeTicket     ItemType = "ticket"
	ItemTypeTask       ItemType = "task"
	ItemTypeGrowthHack ItemType = "growthHack"
)

// AllItemTypes liệt kê các loại thẻ được hỗ trợ
var AllItemTypes = []ItemType{ItemTypeDeal, ItemTypeTicket, ItemTypeTask, ItemTypeGrowthHack}

// ItemMutation là tên logic của một thao tác thay đổi thẻ
type ItemMutation string

const (
	MutationAdd         ItemMutation = "add"
	MutationEdit        ItemMutation = "edit"
	MutationChange      ItemMutation = "change"
	MutationUpdateOrder ItemMutation = "updateOrder"
	MutationRemove      ItemMutation = "remove"
	MutationWatch       ItemMutation = "watch"
)

// NotificationKinds gom các loại thông báo của một loại thẻ,
// tránh ghép chuỗi lúc chạy để tra loại thông báo
type NotificationKinds struct {
	Add          string
	Edit         string
	Change       string
	Delete       string
	RemoveAssign string
}

// NotificationKindsByType ánh xạ từng loại thẻ sang bộ loại thông báo của nó
var NotificationKindsByType = map[ItemType]NotificationKinds{
	ItemTypeDeal: {
		Add:          "dealAdd",
		Edit:         "dealEdit",
		Change:       "dealChange",
		Delete:       "dealDelete",
		RemoveAssign: "dealRemoveAssign",
	},
	ItemTypeTicket: {
		Add:          "ticketAdd",
		Edit:         "ticketEdit",
		Change:       "ticketChange",
		Delete:       "ticketDelete",
		RemoveAssign: "ticketRemoveAssign",
	},
	ItemTypeTask: {
		Add:          "taskAdd",
		Edit:         "taskEdit",
		Change:       "taskChange",
		Delete:       "taskDelete",
		RemoveAssign: "taskRemoveAssign",
	},
	ItemTypeGrowthHack: {
		Add:          "growthHackAdd",
		Edit:         "growthHackEdit",
		Change:       "growthHackChange",
		Delete:       "growthHackDelete",
		RemoveAssign: "growthHackRemoveAssign",
	},
}

// PermissionMap ánh xạ (loại thẻ, thao tác) sang tên quyền cần kiểm tra.
// Bảng này là hằng số toàn tiến trình, nạp một lần lúc khởi động
var PermissionMap = map[ItemType]map[ItemMutation]string{
	ItemTypeDeal: {
		MutationAdd:         "dealsAdd",
		MutationEdit:        "dealsEdit",
		MutationChange:      "dealsChange",
		MutationUpdateOrder: "dealsUpdateOrder",
		MutationRemove:      "dealsRemove",
		MutationWatch:       "dealsWatch",
	},
	ItemTypeTicket: {
		MutationAdd:         "ticketsAdd",
		MutationEdit:        "ticketsEdit",
		MutationChange:      "ticketsChange",
		MutationUpdateOrder: "ticketsUpdateOrder",
		MutationRemove:      "ticketsRemove",
		MutationWatch:       "ticketsWatch",
	},
	ItemTypeTask: {
		MutationAdd:         "tasksAdd",
		MutationEdit:        "tasksEdit",
		MutationChange:      "tasksChange",
		MutationUpdateOrder: "tasksUpdateOrder",
		MutationRemove:      "tasksRemove",
		MutationWatch:       "tasksWatch",
	},
	ItemTypeGrowthHack: {
		MutationAdd:         "growthHacksAdd",
		MutationEdit:        "growthHacksEdit",
		MutationChange:      "growthHacksChange",
		MutationUpdateOrder: "growthHacksUpdateOrder",
		MutationRemove:      "growthHacksRemove",
		MutationWatch:       "growthHacksWatch",
	},
}

// AllPermissionActions trả về danh sách phẳng mọi tên quyền trong PermissionMap,
// dùng để seed bảng permissions lúc khởi tạo dữ liệu
func AllPermissionActions() []string {
	var actions []string
	for _, byMutation := range PermissionMap {
		for _, action := range byMutation {
			actions = append(actions, action)
		}
	}
	return actions
}

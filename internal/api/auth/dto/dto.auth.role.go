package authdto

// RoleCreateInput đầu vào tạo vai trò.
type RoleCreateInput struct {
	Name     string `json:"name" validate:"required"`
	Describe string `json:"describe"`
}

// RoleUpdateInput đầu vào cập nhật vai trò.
type RoleUpdateInput struct {
	Name     string `json:"name"`
	Describe string `json:"describe"`
}

// RolePermissionCreateInput đầu vào gán quyền cho vai trò.
type RolePermissionCreateInput struct {
	RoleID       string `json:"roleId" validate:"required"`
	PermissionID string `json:"permissionId" validate:"required"`
	Allowed      bool   `json:"allowed"`
}

// UserRoleCreateInput đầu vào gán vai trò cho người dùng.
type UserRoleCreateInput struct {
	UserID string `json:"userId" validate:"required"`
	RoleID string `json:"roleId" validate:"required"`
}

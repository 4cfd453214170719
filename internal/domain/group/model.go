package group

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleMember  Role = "member"
)

// Group is shared across users through the user_groups join table; neither
// side owns the other. Role and RoleID are stored independently and both are
// surfaced in API output as-is.
type Group struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
	RoleID int    `json:"role_id"`
}

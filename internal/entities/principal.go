package entities

// Principal is the authenticated actor as forwarded by the edge gateway.
type Principal struct {
	UserID int64
	Role   RoleType
}

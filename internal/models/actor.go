package models

// Actor is the authenticated identity performing an operation, resolved
// by the web layer from the session token. The core never authenticates;
// it only authorizes against these two fields.
type Actor struct {
	UserID uint
	Role   UserRole
}

func (a Actor) IsStudent() bool {
	return a.Role == UserRoleStudent
}

func (a Actor) IsRecruiter() bool {
	return a.Role == UserRoleRecruiter
}

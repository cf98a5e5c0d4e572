package authorization

// CanAccessResourceByOwnerID is the ownership predicate applied uniformly to
// owned resources: admins see everything, users only what they own.
func CanAccessResourceByOwnerID(userID uint, userRole UserRole, resourceOwnerID uint) bool {
	if userRole.IsAdmin() {
		return true
	}
	return userID == resourceOwnerID
}

// Actor identifies the authenticated caller of an operation. It is passed
// explicitly into use cases instead of being read from ambient request state.
type Actor struct {
	UserID uint
	Role   UserRole
}

func (a Actor) IsAdmin() bool {
	return a.Role.IsAdmin()
}

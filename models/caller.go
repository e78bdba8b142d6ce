package models

// Caller is the verified identity on whose behalf an owner-scoped
// operation runs. It is produced by token verification and passed
// explicitly into every owner-scoped service call.
type Caller struct {
	UserID string
	Name   string
	Tier   Tier
}

// NewCaller builds a Caller from a user loaded from the identity store.
func NewCaller(user User) Caller {
	return Caller{
		UserID: user.UserID,
		Name:   user.Name,
		Tier:   user.Tier,
	}
}

// IsZero reports whether c carries no identity.
func (c Caller) IsZero() bool {
	return c.UserID == ""
}

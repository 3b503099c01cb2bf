package shared

// AdminIdentity is all the core learns about an authenticated caller.
type AdminIdentity struct {
	Username string
}

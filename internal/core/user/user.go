package user

// User is the authenticated caller attached to a request context after
// token verification. Role here comes from the credential, never from an
// employee profile.
type User struct {
	ID    int64
	Email string
	Role  string
}

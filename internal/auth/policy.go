package auth

// CanManage is the write-access threshold for department and employee data:
// admin and HR may mutate, plain employees may only read.
func CanManage(role string) bool {
	return role == RoleAdmin || role == RoleHR
}

// CanCreateElevatedUser gates the create-user endpoint. Only an admin may
// mint HR or admin credentials; HR callers are rejected like anyone else.
func CanCreateElevatedUser(role string) bool {
	return role == RoleAdmin
}

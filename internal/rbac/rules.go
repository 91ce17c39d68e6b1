package rbac

// Simple default policy. Expand as needed.
var RolePermissions = map[string][]string{
	"instructor": {
		"requirement:view",
		"student:view",
		"student:edit",
		"assessment:create",
		"assessment:view",
		"assessment:score",
		"assessment:complete",
		"assessment:cancel",
	},
	"admin": {
		"*", // everything
	},
}

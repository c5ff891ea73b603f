package circulation

import "strings"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Actor is the authenticated caller on whose behalf an operation runs.
type Actor struct {
	Email string
	Role  Role
}

func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

// Is reports whether the actor is the user recorded under name.
func (a Actor) Is(name string) bool {
	email := strings.TrimSpace(a.Email)
	return email != "" && strings.EqualFold(email, strings.TrimSpace(name))
}

// scopeOwner returns the owner a non-admin's listing is limited to. Admins
// get "" and see everything.
func scopeOwner(a Actor) (string, error) {
	if a.IsAdmin() {
		return "", nil
	}
	email := strings.TrimSpace(a.Email)
	if email == "" {
		return "", newError(CodeUnauthorizedActor, "listing records needs an identified actor")
	}
	return email, nil
}

func requireAdmin(a Actor, action string) error {
	if !a.IsAdmin() {
		return newError(CodeUnauthorizedActor, "only an admin may %s", action)
	}
	return nil
}

func requireSelf(a Actor, owner, action string) error {
	if !a.Is(owner) {
		return newError(CodeUnauthorizedActor, "only %s may %s", owner, action)
	}
	return nil
}

// Package role ranks what a caller is allowed to do.
package role

import (
	"math"

	"github.com/matt-dz/foodgram/internal/database"
)

// Role is ordered: a higher role may do everything a lower one may.
type Role int

const (
	RoleAdmin     Role = 200
	RoleUser      Role = 100
	RoleAnonymous Role = 0
	RoleUnknown   Role = math.MinInt
)

var names = map[Role]string{
	RoleAdmin:     "admin",
	RoleUser:      "user",
	RoleAnonymous: "anonymous",
}

func (r Role) String() string {
	if name, ok := names[r]; ok {
		return name
	}
	return "unknown"
}

// Satisfies reports whether r grants at least required.
func (r Role) Satisfies(required Role) bool {
	return r != RoleUnknown && r >= required
}

// DBToRole folds the stored role and the staff flag into one role.
// Staff members are administrators.
func DBToRole(role database.Role, isStaff bool) Role {
	if isStaff {
		return RoleAdmin
	}
	switch role {
	case database.RoleAdmin:
		return RoleAdmin
	case database.RoleUser:
		return RoleUser
	default:
		return RoleUnknown
	}
}

// ToRole parses the role claim of an access token. Tokens are only issued
// to accounts, so "anonymous" is not accepted.
func ToRole(role string) Role {
	switch role {
	case names[RoleAdmin]:
		return RoleAdmin
	case names[RoleUser]:
		return RoleUser
	default:
		return RoleUnknown
	}
}

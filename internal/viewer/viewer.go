// Package viewer carries the identity of whoever is making a request.
package viewer

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/matt-dz/foodgram/internal/role"
)

// Viewer is the caller of an operation. The zero value is an anonymous viewer.
type Viewer struct {
	UserID int64
	Role   role.Role
}

func Anonymous() Viewer {
	return Viewer{}
}

func User(id int64, r role.Role) Viewer {
	return Viewer{UserID: id, Role: r}
}

func (v Viewer) Authenticated() bool {
	return v.UserID != 0
}

func (v Viewer) IsAdmin() bool {
	return v.Authenticated() && v.Role.Satisfies(role.RoleAdmin)
}

// CanModify reports whether the viewer may change something owned by authorID.
func (v Viewer) CanModify(authorID int64) bool {
	return v.Authenticated() && (v.UserID == authorID || v.IsAdmin())
}

// NullableID is the viewer id as a query parameter; NULL when anonymous.
func (v Viewer) NullableID() pgtype.Int8 {
	return pgtype.Int8{Int64: v.UserID, Valid: v.Authenticated()}
}

type viewerKeyType struct{}

var viewerKey viewerKeyType

func WithCtx(ctx context.Context, v Viewer) context.Context {
	return context.WithValue(ctx, viewerKey, v)
}

// FromCtx returns the viewer stored in ctx, or an anonymous viewer.
func FromCtx(ctx context.Context) Viewer {
	if v, ok := ctx.Value(viewerKey).(Viewer); ok {
		return v
	}
	return Anonymous()
}

package viewer

import (
	"context"
	"testing"

	"github.com/matt-dz/foodgram/internal/role"
)

func TestViewer(t *testing.T) {
	tests := []struct {
		name          string
		viewer        Viewer
		authenticated bool
		admin         bool
		canModify5    bool
	}{
		{"anonymous", Anonymous(), false, false, false},
		{"author", User(5, role.RoleUser), true, false, true},
		{"other user", User(6, role.RoleUser), true, false, false},
		{"admin", User(7, role.RoleAdmin), true, true, true},
		{"admin role without id", Viewer{Role: role.RoleAdmin}, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.viewer.Authenticated(); got != tt.authenticated {
				t.Errorf("Authenticated() = %v, want %v", got, tt.authenticated)
			}
			if got := tt.viewer.IsAdmin(); got != tt.admin {
				t.Errorf("IsAdmin() = %v, want %v", got, tt.admin)
			}
			if got := tt.viewer.CanModify(5); got != tt.canModify5 {
				t.Errorf("CanModify(5) = %v, want %v", got, tt.canModify5)
			}
			id := tt.viewer.NullableID()
			if id.Valid != tt.authenticated {
				t.Errorf("NullableID().Valid = %v, want %v", id.Valid, tt.authenticated)
			}
		})
	}
}

func TestContext(t *testing.T) {
	if FromCtx(context.Background()).Authenticated() {
		t.Error("empty context should yield an anonymous viewer")
	}

	ctx := WithCtx(context.Background(), User(3, role.RoleUser))
	if got := FromCtx(ctx); got.UserID != 3 {
		t.Errorf("FromCtx() = %+v, want user 3", got)
	}
}

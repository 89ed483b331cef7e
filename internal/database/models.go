package database

import (
	"database/sql/driver"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (e *Role) Scan(src interface{}) error {
	switch s := src.(type) {
	case []byte:
		*e = Role(s)
	case string:
		*e = Role(s)
	default:
		return fmt.Errorf("unsupported scan type for Role: %T", src)
	}
	return nil
}

func (e Role) Value() (driver.Value, error) {
	return string(e), nil
}

type Cart struct {
	ID       int64
	UserID   int64
	RecipeID int64
}

type Favorite struct {
	ID       int64
	UserID   int64
	RecipeID int64
}

type Follow struct {
	ID        int64
	UserID    int64
	AuthorID  int64
	CreatedAt pgtype.Timestamptz
}

type Ingredient struct {
	ID              int64
	Name            string
	MeasurementUnit string
}

type Recipe struct {
	ID          int64
	AuthorID    int64
	Name        string
	ImageKey    pgtype.Text
	Text        string
	CookingTime int32
	PubDate     pgtype.Timestamptz
}

type RecipeIngredient struct {
	ID           int64
	RecipeID     int64
	IngredientID int64
	Amount       int32
}

type Tag struct {
	ID    int64
	Name  string
	Color string
	Slug  string
}

type User struct {
	ID           int64
	Email        string
	Username     string
	FirstName    string
	LastName     string
	PasswordHash string
	Role         Role
	IsStaff      bool
	CreatedAt    pgtype.Timestamptz
}

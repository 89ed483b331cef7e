// Package recipe creates, updates, deletes and lists recipes together with
// their ingredient lines and tags.
package recipe

import (
	"time"

	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/filestore"
	"github.com/matt-dz/foodgram/internal/form"
	"github.com/matt-dz/foodgram/internal/user"
)

// Line is one (ingredient, amount) pair of a recipe.
type Line struct {
	ID     int64 `json:"id"`
	Amount int64 `json:"amount"`
}

// Input is the full state of a recipe as submitted by a client. Updates
// replace ingredients and tags wholesale.
type Input struct {
	Name        string
	Text        string
	CookingTime int64
	Image       *form.File
	Ingredients []Line
	Tags        []int64
}

type Tag struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Slug  string `json:"slug"`
}

type Ingredient struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int32  `json:"amount"`
}

// Detail is the full read representation of a recipe for a viewer.
type Detail struct {
	ID               int64        `json:"id"`
	Author           user.Profile `json:"author"`
	Name             string       `json:"name"`
	Image            string       `json:"image"`
	Text             string       `json:"text"`
	CookingTime      int32        `json:"cooking_time"`
	PubDate          time.Time    `json:"pub_date"`
	Tags             []Tag        `json:"tags"`
	Ingredients      []Ingredient `json:"ingredients"`
	IsFavorited      bool         `json:"is_favorited"`
	IsInShoppingCart bool         `json:"is_in_shopping_cart"`
}

// Summary is the short projection returned by relation endpoints and
// subscription listings.
type Summary struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int32  `json:"cooking_time"`
}

func ToSummary(r database.Recipe, files filestore.Store) Summary {
	return Summary{
		ID:          r.ID,
		Name:        r.Name,
		Image:       files.FileURL(r.ImageKey.String),
		CookingTime: r.CookingTime,
	}
}

func toDetail(row database.RecipeDetailRow, files filestore.Store) Detail {
	return Detail{
		ID: row.ID,
		Author: user.Profile{
			ID:           row.AuthorID,
			Email:        row.AuthorEmail,
			Username:     row.AuthorUsername,
			FirstName:    row.AuthorFirstName,
			LastName:     row.AuthorLastName,
			IsSubscribed: row.AuthorIsSubscribed,
		},
		Name:             row.Name,
		Image:            files.FileURL(row.ImageKey.String),
		Text:             row.Text,
		CookingTime:      row.CookingTime,
		PubDate:          row.PubDate.Time,
		Tags:             []Tag{},
		Ingredients:      []Ingredient{},
		IsFavorited:      row.IsFavorited,
		IsInShoppingCart: row.IsInShoppingCart,
	}
}

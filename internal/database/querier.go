package database

import (
	"context"
)

type Querier interface {
	AddRecipeTags(ctx context.Context, arg AddRecipeTagsParams) error
	CheckUsersTableExists(ctx context.Context) (bool, error)
	CountAuthorRecipes(ctx context.Context, authorID int64) (int64, error)
	CountFollowedAuthors(ctx context.Context, userID int64) (int64, error)
	CountRecipes(ctx context.Context, arg CountRecipesParams) (int64, error)
	CountUsers(ctx context.Context) (int64, error)
	CreateCartItem(ctx context.Context, arg CreateCartItemParams) error
	CreateFavorite(ctx context.Context, arg CreateFavoriteParams) error
	CreateFollow(ctx context.Context, arg CreateFollowParams) (Follow, error)
	CreateIngredients(ctx context.Context, arg []CreateIngredientsParams) (int64, error)
	CreateRecipe(ctx context.Context, arg CreateRecipeParams) (Recipe, error)
	CreateRecipeIngredients(ctx context.Context, arg []CreateRecipeIngredientsParams) (int64, error)
	CreateTag(ctx context.Context, arg CreateTagParams) (Tag, error)
	CreateUser(ctx context.Context, arg CreateUserParams) (int64, error)
	DeleteCartItem(ctx context.Context, arg DeleteCartItemParams) (int64, error)
	DeleteFavorite(ctx context.Context, arg DeleteFavoriteParams) (int64, error)
	DeleteFollow(ctx context.Context, arg DeleteFollowParams) (int64, error)
	DeleteRecipe(ctx context.Context, id int64) (int64, error)
	DeleteRecipeIngredients(ctx context.Context, recipeID int64) error
	DeleteRecipeTags(ctx context.Context, recipeID int64) error
	DeleteTag(ctx context.Context, id int64) (int64, error)
	GetAdminCount(ctx context.Context) (int64, error)
	GetCartIngredients(ctx context.Context, userID int64) ([]GetRecipeIngredientsRow, error)
	GetIngredient(ctx context.Context, id int64) (Ingredient, error)
	GetIngredientsByIDs(ctx context.Context, ids []int64) ([]Ingredient, error)
	GetRecipe(ctx context.Context, id int64) (Recipe, error)
	GetRecipeDetail(ctx context.Context, arg GetRecipeDetailParams) (RecipeDetailRow, error)
	GetRecipeIngredients(ctx context.Context, recipeIDs []int64) ([]GetRecipeIngredientsRow, error)
	GetRecipeTags(ctx context.Context, recipeIDs []int64) ([]GetRecipeTagsRow, error)
	GetTag(ctx context.Context, id int64) (Tag, error)
	GetTagsByIDs(ctx context.Context, ids []int64) ([]Tag, error)
	GetUser(ctx context.Context, id int64) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	GetUserProfile(ctx context.Context, arg GetUserProfileParams) (UserProfileRow, error)
	ListFollowedAuthors(ctx context.Context, arg ListFollowedAuthorsParams) ([]ListFollowedAuthorsRow, error)
	ListRecipes(ctx context.Context, arg ListRecipesParams) ([]RecipeDetailRow, error)
	ListRecipesByAuthors(ctx context.Context, arg ListRecipesByAuthorsParams) ([]Recipe, error)
	ListTags(ctx context.Context) ([]Tag, error)
	ListUserProfiles(ctx context.Context, arg ListUserProfilesParams) ([]UserProfileRow, error)
	SearchIngredients(ctx context.Context, prefix string) ([]Ingredient, error)
	UpdateRecipe(ctx context.Context, arg UpdateRecipeParams) (Recipe, error)
	UpdateTag(ctx context.Context, arg UpdateTagParams) (Tag, error)
	UpdateUserPassword(ctx context.Context, arg UpdateUserPasswordParams) error
}

var _ Querier = (*Queries)(nil)


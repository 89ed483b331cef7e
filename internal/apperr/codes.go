package apperr

// Stable error codes surfaced to API clients.
const (
	CodeBadRequest              = "bad_request"
	CodeAuthenticationRequired  = "authentication_required"
	CodeInsufficientPermissions = "insufficient_permissions"

	CodeRecipeNotFound = "recipe_not_found"
	CodeRecipeNotOwned = "recipe_not_owned"
	CodeInvalidRecipe  = "invalid_recipe"
	CodeInvalidImage   = "invalid_image"

	CodeDuplicateIngredient = "duplicate_ingredient"
	CodeDuplicateTag        = "duplicate_tag"

	CodeIngredientNotFound = "ingredient_not_found"
	CodeInvalidIngredients = "invalid_ingredients"
	CodeInvalidCSV         = "invalid_csv"

	CodeTagNotFound     = "tag_not_found"
	CodeInvalidTag      = "invalid_tag"
	CodeTagSlugConflict = "tag_slug_conflict"

	CodeUserNotFound       = "user_not_found"
	CodeInvalidUser        = "invalid_user"
	CodeEmailConflict      = "email_conflict"
	CodeUsernameConflict   = "username_conflict"
	CodeWeakPassword       = "weak_password"
	CodeInvalidPassword    = "invalid_password"
	CodeInvalidCredentials = "invalid_credentials"

	CodeAlreadyFavorited = "already_favorited"
	CodeAlreadyInCart    = "already_in_cart"
	CodeNotFavorited     = "not_favorited"
	CodeNotInCart        = "not_in_cart"

	CodeSelfFollow        = "self_follow"
	CodeAlreadySubscribed = "already_subscribed"
	CodeNotSubscribed     = "not_subscribed"

	CodeInvalidPage = "invalid_page"
)

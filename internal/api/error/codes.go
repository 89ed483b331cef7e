package error

import (
	"net/http"

	"github.com/matt-dz/foodgram/internal/apperr"
)

type ErrorCode string

const (
	UnknownError            ErrorCode = "unknown_error"
	InternalServerError     ErrorCode = "internal_server_error"
	BadRequest              ErrorCode = apperr.CodeBadRequest
	RequestTooLarge         ErrorCode = "request_too_large"
	NotFound                ErrorCode = "not_found"
	MethodNotAllowed        ErrorCode = "method_not_allowed"
	TooManyRequests         ErrorCode = "too_many_requests"
	AuthenticationRequired  ErrorCode = apperr.CodeAuthenticationRequired
	InvalidCredentials      ErrorCode = apperr.CodeInvalidCredentials
	InvalidAccessToken      ErrorCode = "invalid_access_token"
	ExpiredAccessToken      ErrorCode = "expired_access_token"
	InsufficientPermissions ErrorCode = apperr.CodeInsufficientPermissions
	WeakPassword            ErrorCode = apperr.CodeWeakPassword
	InvalidPassword         ErrorCode = apperr.CodeInvalidPassword
	EmailConflict           ErrorCode = apperr.CodeEmailConflict
	UsernameConflict        ErrorCode = apperr.CodeUsernameConflict
	InvalidUser             ErrorCode = apperr.CodeInvalidUser
	UserNotFound            ErrorCode = apperr.CodeUserNotFound
	RecipeNotFound          ErrorCode = apperr.CodeRecipeNotFound
	RecipeNotOwned          ErrorCode = apperr.CodeRecipeNotOwned
	InvalidRecipe           ErrorCode = apperr.CodeInvalidRecipe
	InvalidImage            ErrorCode = apperr.CodeInvalidImage
	ImageNotFound           ErrorCode = "image_not_found"
	DuplicateIngredient     ErrorCode = apperr.CodeDuplicateIngredient
	DuplicateTag            ErrorCode = apperr.CodeDuplicateTag
	IngredientNotFound      ErrorCode = apperr.CodeIngredientNotFound
	InvalidIngredients      ErrorCode = apperr.CodeInvalidIngredients
	InvalidCSV              ErrorCode = apperr.CodeInvalidCSV
	TagNotFound             ErrorCode = apperr.CodeTagNotFound
	InvalidTag              ErrorCode = apperr.CodeInvalidTag
	TagSlugConflict         ErrorCode = apperr.CodeTagSlugConflict
	AlreadyFavorited        ErrorCode = apperr.CodeAlreadyFavorited
	AlreadyInCart           ErrorCode = apperr.CodeAlreadyInCart
	NotFavorited            ErrorCode = apperr.CodeNotFavorited
	NotInCart               ErrorCode = apperr.CodeNotInCart
	SelfFollow              ErrorCode = apperr.CodeSelfFollow
	AlreadySubscribed       ErrorCode = apperr.CodeAlreadySubscribed
	NotSubscribed           ErrorCode = apperr.CodeNotSubscribed
	InvalidPage             ErrorCode = apperr.CodeInvalidPage
)

var errorCodeToStatusCode = map[ErrorCode]int{
	UnknownError:            0, // No error code - unknown
	InternalServerError:     http.StatusInternalServerError,
	BadRequest:              http.StatusBadRequest,
	RequestTooLarge:         http.StatusRequestEntityTooLarge,
	NotFound:                http.StatusNotFound,
	MethodNotAllowed:        http.StatusMethodNotAllowed,
	TooManyRequests:         http.StatusTooManyRequests,
	AuthenticationRequired:  http.StatusUnauthorized,
	InvalidCredentials:      http.StatusBadRequest,
	InvalidAccessToken:      http.StatusUnauthorized,
	ExpiredAccessToken:      http.StatusUnauthorized,
	InsufficientPermissions: http.StatusForbidden,
	WeakPassword:            http.StatusBadRequest,
	InvalidPassword:         http.StatusBadRequest,
	EmailConflict:           http.StatusConflict,
	UsernameConflict:        http.StatusConflict,
	InvalidUser:             http.StatusBadRequest,
	UserNotFound:            http.StatusNotFound,
	RecipeNotFound:          http.StatusNotFound,
	RecipeNotOwned:          http.StatusForbidden,
	InvalidRecipe:           http.StatusBadRequest,
	InvalidImage:            http.StatusBadRequest,
	ImageNotFound:           http.StatusNotFound,
	DuplicateIngredient:     http.StatusConflict,
	DuplicateTag:            http.StatusConflict,
	IngredientNotFound:      http.StatusNotFound,
	InvalidIngredients:      http.StatusBadRequest,
	InvalidCSV:              http.StatusBadRequest,
	TagNotFound:             http.StatusNotFound,
	InvalidTag:              http.StatusBadRequest,
	TagSlugConflict:         http.StatusConflict,
	AlreadyFavorited:        http.StatusConflict,
	AlreadyInCart:           http.StatusConflict,
	NotFavorited:            http.StatusNotFound,
	NotInCart:               http.StatusNotFound,
	SelfFollow:              http.StatusBadRequest,
	AlreadySubscribed:       http.StatusConflict,
	NotSubscribed:           http.StatusNotFound,
	InvalidPage:             http.StatusBadRequest,
}

func (ec ErrorCode) StatusCode() int {
	return errorCodeToStatusCode[ec]
}

func (ec ErrorCode) String() string {
	return string(ec)
}

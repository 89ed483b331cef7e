// Package user registers accounts, checks credentials and projects users
// as seen by a viewer.
package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/matt-dz/foodgram/internal/apperr"
	"github.com/matt-dz/foodgram/internal/argon2id"
	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/pagination"
	"github.com/matt-dz/foodgram/internal/password"
	"github.com/matt-dz/foodgram/internal/role"
	"github.com/matt-dz/foodgram/internal/viewer"
)

// Profile is a user as shown to a viewer.
type Profile struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"`
}

func ProfileFromRow(row database.UserProfileRow) Profile {
	return Profile(row)
}

type Registration struct {
	Email     string `json:"email" validate:"required,email,max=254"`
	Username  string `json:"username" validate:"required,max=150,username"`
	FirstName string `json:"first_name" validate:"required,max=150"`
	LastName  string `json:"last_name" validate:"required,max=150"`
	Password  string `json:"password" validate:"required,max=150"`
}

// Identity is what a successful login yields.
type Identity struct {
	ID   int64
	Role role.Role
}

type Service struct {
	store    database.Store
	params   argon2id.ArgonParams
	validate *validator.Validate
}

func NewService(store database.Store) *Service {
	return &Service{
		store:    store,
		params:   argon2id.DefaultParams,
		validate: newValidator(),
	}
}

// WithHashParams overrides the argon2id parameters used for new hashes.
func (s *Service) WithHashParams(p argon2id.ArgonParams) *Service {
	s.params = p
	return s
}

func (s *Service) Register(ctx context.Context, reg Registration) (Profile, error) {
	reg.Email = strings.TrimSpace(reg.Email)
	reg.Username = strings.TrimSpace(reg.Username)

	if err := s.validate.Struct(reg); err != nil {
		return Profile{}, validationError(apperr.CodeInvalidUser, err)
	}
	if err := password.ValidatePassword(reg.Password, reg.Username, reg.Email, reg.FirstName, reg.LastName); err != nil {
		return Profile{}, apperr.Invalid(apperr.CodeWeakPassword, "password", "%s", firstLine(err))
	}

	hash, err := argon2id.EncodeHash(reg.Password, s.params)
	if err != nil {
		return Profile{}, fmt.Errorf("hashing password: %w", err)
	}

	id, err := s.store.CreateUser(ctx, database.CreateUserParams{
		Email:        reg.Email,
		Username:     reg.Username,
		FirstName:    reg.FirstName,
		LastName:     reg.LastName,
		PasswordHash: hash,
		Role:         database.RoleUser,
	})
	switch {
	case database.IsUniqueViolation(err, database.ConstraintUsersUniqueEmail):
		return Profile{}, apperr.Conflict(apperr.CodeEmailConflict, "a user with that email already exists")
	case database.IsUniqueViolation(err, database.ConstraintUsersUniqueUsername):
		return Profile{}, apperr.Conflict(apperr.CodeUsernameConflict, "a user with that username already exists")
	case err != nil:
		return Profile{}, fmt.Errorf("creating user: %w", err)
	}

	return Profile{
		ID:        id,
		Email:     reg.Email,
		Username:  reg.Username,
		FirstName: reg.FirstName,
		LastName:  reg.LastName,
	}, nil
}

// Authenticate checks an email and password pair. Unknown emails and wrong
// passwords produce the same error.
func (s *Service) Authenticate(ctx context.Context, email, pass string) (Identity, error) {
	invalid := apperr.Unauthenticated(apperr.CodeInvalidCredentials, "unable to log in with provided credentials")

	u, err := s.store.GetUserByEmail(ctx, strings.TrimSpace(email))
	if database.IsNotFound(err) {
		return Identity{}, invalid
	} else if err != nil {
		return Identity{}, fmt.Errorf("getting user: %w", err)
	}

	ok, err := argon2id.Verify(pass, u.PasswordHash)
	if err != nil {
		return Identity{}, fmt.Errorf("verifying password: %w", err)
	}
	if !ok {
		return Identity{}, invalid
	}

	if argon2id.NeedsRehash(u.PasswordHash, s.params) {
		if err := s.rehash(ctx, u.ID, pass); err != nil {
			return Identity{}, err
		}
	}

	return Identity{ID: u.ID, Role: role.DBToRole(u.Role, u.IsStaff)}, nil
}

// rehash stores pass again under the service's current hash parameters.
func (s *Service) rehash(ctx context.Context, userID int64, pass string) error {
	hash, err := argon2id.EncodeHash(pass, s.params)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	if err := s.store.UpdateUserPassword(ctx, database.UpdateUserPasswordParams{
		ID:           userID,
		PasswordHash: hash,
	}); err != nil {
		return fmt.Errorf("upgrading password hash: %w", err)
	}
	return nil
}

func (s *Service) Get(ctx context.Context, v viewer.Viewer, id int64) (Profile, error) {
	row, err := s.store.GetUserProfile(ctx, database.GetUserProfileParams{
		ID:       id,
		ViewerID: v.NullableID(),
	})
	if database.IsNotFound(err) {
		return Profile{}, apperr.NotFound(apperr.CodeUserNotFound, "user %d not found", id)
	} else if err != nil {
		return Profile{}, fmt.Errorf("getting user profile: %w", err)
	}
	return ProfileFromRow(row), nil
}

// Me returns the viewer's own profile.
func (s *Service) Me(ctx context.Context, v viewer.Viewer) (Profile, error) {
	if !v.Authenticated() {
		return Profile{}, apperr.Unauthenticated(apperr.CodeAuthenticationRequired, "authentication credentials were not provided")
	}
	return s.Get(ctx, v, v.UserID)
}

func (s *Service) List(ctx context.Context, v viewer.Viewer, page pagination.Page) (pagination.Result[Profile], error) {
	count, err := s.store.CountUsers(ctx)
	if err != nil {
		return pagination.Result[Profile]{}, fmt.Errorf("counting users: %w", err)
	}

	rows, err := s.store.ListUserProfiles(ctx, database.ListUserProfilesParams{
		ViewerID: v.NullableID(),
		Limit:    page.SQLLimit(),
		Offset:   page.Offset(),
	})
	if err != nil {
		return pagination.Result[Profile]{}, fmt.Errorf("listing users: %w", err)
	}

	profiles := make([]Profile, 0, len(rows))
	for _, row := range rows {
		profiles = append(profiles, ProfileFromRow(row))
	}
	return pagination.NewResult(count, profiles), nil
}

func (s *Service) SetPassword(ctx context.Context, v viewer.Viewer, current, next string) error {
	if !v.Authenticated() {
		return apperr.Unauthenticated(apperr.CodeAuthenticationRequired, "authentication credentials were not provided")
	}

	u, err := s.store.GetUser(ctx, v.UserID)
	if database.IsNotFound(err) {
		return apperr.NotFound(apperr.CodeUserNotFound, "user %d not found", v.UserID)
	} else if err != nil {
		return fmt.Errorf("getting user: %w", err)
	}

	ok, err := argon2id.Verify(current, u.PasswordHash)
	if err != nil {
		return fmt.Errorf("verifying password: %w", err)
	}
	if !ok {
		return apperr.Invalid(apperr.CodeInvalidPassword, "current_password", "current password is incorrect")
	}
	if err := password.ValidatePassword(next, u.Username, u.Email); err != nil {
		return apperr.Invalid(apperr.CodeWeakPassword, "new_password", "%s", firstLine(err))
	}

	hash, err := argon2id.EncodeHash(next, s.params)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	if err := s.store.UpdateUserPassword(ctx, database.UpdateUserPasswordParams{
		ID:           u.ID,
		PasswordHash: hash,
	}); err != nil {
		return fmt.Errorf("updating password: %w", err)
	}
	return nil
}

func firstLine(err error) string {
	msg, _, _ := strings.Cut(err.Error(), "\n")
	return msg
}

func validationError(code string, err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperr.Invalid(code, "non_field_errors", "%s", err.Error())
	}
	verr := apperr.NewValidationError(code)
	for _, fe := range fieldErrs {
		verr.Add(fe.Field(), "%s", describe(fe))
	}
	return verr
}

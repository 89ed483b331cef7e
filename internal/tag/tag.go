// Package tag manages the tag catalog recipes are labelled with.
package tag

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/matt-dz/foodgram/internal/apperr"
	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/viewer"
)

var slugRe = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

type Tag struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Slug  string `json:"slug"`
}

func fromRow(t database.Tag) Tag {
	return Tag(t)
}

type Input struct {
	Name  string `json:"name" validate:"required,max=200"`
	Color string `json:"color" validate:"required,max=16"`
	Slug  string `json:"slug" validate:"required,max=50,slug"`
}

type Service struct {
	store    database.Querier
	validate *validator.Validate
}

func NewService(store database.Querier) *Service {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		return name
	})
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugRe.MatchString(fl.Field().String())
	})
	return &Service{store: store, validate: v}
}

func (s *Service) List(ctx context.Context) ([]Tag, error) {
	rows, err := s.store.ListTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	tags := make([]Tag, 0, len(rows))
	for _, row := range rows {
		tags = append(tags, fromRow(row))
	}
	return tags, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Tag, error) {
	row, err := s.store.GetTag(ctx, id)
	if database.IsNotFound(err) {
		return Tag{}, errTagNotFound(id)
	} else if err != nil {
		return Tag{}, fmt.Errorf("getting tag: %w", err)
	}
	return fromRow(row), nil
}

func (s *Service) Create(ctx context.Context, v viewer.Viewer, in Input) (Tag, error) {
	if err := requireAdmin(v); err != nil {
		return Tag{}, err
	}
	in, err := s.clean(in)
	if err != nil {
		return Tag{}, err
	}

	row, err := s.store.CreateTag(ctx, database.CreateTagParams(in))
	if err != nil {
		return Tag{}, translate(err, 0)
	}
	return fromRow(row), nil
}

func (s *Service) Update(ctx context.Context, v viewer.Viewer, id int64, in Input) (Tag, error) {
	if err := requireAdmin(v); err != nil {
		return Tag{}, err
	}
	in, err := s.clean(in)
	if err != nil {
		return Tag{}, err
	}

	row, err := s.store.UpdateTag(ctx, database.UpdateTagParams{
		ID:    id,
		Name:  in.Name,
		Color: in.Color,
		Slug:  in.Slug,
	})
	if err != nil {
		return Tag{}, translate(err, id)
	}
	return fromRow(row), nil
}

// Delete removes the tag. Recipes lose the label but are kept.
func (s *Service) Delete(ctx context.Context, v viewer.Viewer, id int64) error {
	if err := requireAdmin(v); err != nil {
		return err
	}
	n, err := s.store.DeleteTag(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting tag: %w", err)
	}
	if n == 0 {
		return errTagNotFound(id)
	}
	return nil
}

func (s *Service) clean(in Input) (Input, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Slug = strings.TrimSpace(in.Slug)

	verr := apperr.NewValidationError(apperr.CodeInvalidTag)
	if err := s.validate.Struct(in); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return Input{}, fmt.Errorf("validating tag: %w", err)
		}
		for _, fe := range fieldErrs {
			verr.Add(fe.Field(), "%s", describe(fe))
		}
	}
	if in.Color != "" {
		if name, ok := NormalizeColor(in.Color); ok {
			in.Color = name
		} else if _, failed := verr.Fields["color"]; !failed {
			verr.Add("color", "no name for this color")
		}
	}
	return in, verr.Err()
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "max":
		return "ensure this field has no more than " + fe.Param() + " characters"
	case "slug":
		return "enter a valid slug of letters, numbers, underscores or hyphens"
	default:
		return "invalid value"
	}
}

func translate(err error, id int64) error {
	switch {
	case database.IsUniqueViolation(err, database.ConstraintTagsUniqueSlug):
		return apperr.Conflict(apperr.CodeTagSlugConflict, "a tag with this slug already exists")
	case database.IsNotFound(err):
		return errTagNotFound(id)
	}
	return fmt.Errorf("saving tag: %w", err)
}

func requireAdmin(v viewer.Viewer) error {
	if !v.Authenticated() {
		return apperr.Unauthenticated(apperr.CodeAuthenticationRequired, "authentication credentials were not provided")
	}
	if !v.IsAdmin() {
		return apperr.Forbidden(apperr.CodeInsufficientPermissions, "only administrators can manage tags")
	}
	return nil
}

func errTagNotFound(id int64) error {
	return apperr.NotFound(apperr.CodeTagNotFound, "tag %d not found", id)
}

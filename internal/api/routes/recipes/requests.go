package recipes

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/matt-dz/foodgram/internal/apperr"
	"github.com/matt-dz/foodgram/internal/form"
	mJson "github.com/matt-dz/foodgram/internal/json"
	"github.com/matt-dz/foodgram/internal/recipe"
)

const (
	maxUploadSize     = 20 << 20 // ~ 20 MB
	multipartFormData = "multipart/form-data"
)

// RecipeRequest is the JSON body of create and update. Image is a data URI;
// leaving it empty on update keeps the current image.
type RecipeRequest struct {
	Ingredients []recipe.Line `json:"ingredients"`
	Tags        []int64       `json:"tags"`
	Image       string        `json:"image"`
	Name        string        `json:"name"`
	Text        string        `json:"text"`
	CookingTime int64         `json:"cooking_time"`
}

func (req RecipeRequest) input() (recipe.Input, error) {
	in := recipe.Input{
		Name:        req.Name,
		Text:        req.Text,
		CookingTime: req.CookingTime,
		Ingredients: req.Ingredients,
		Tags:        req.Tags,
	}
	if strings.TrimSpace(req.Image) == "" {
		return in, nil
	}
	image, err := form.DecodeDataURI(req.Image)
	if err != nil {
		return recipe.Input{}, imageError(err)
	}
	in.Image = image
	return in, nil
}

// readInput decodes a recipe from either a JSON or a multipart body.
func readInput(w http.ResponseWriter, r *http.Request) (recipe.Input, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == multipartFormData {
		return readMultipart(w, r)
	}

	var request RecipeRequest
	defer func() { _ = r.Body.Close() }()
	if err := mJson.DecodeJSON(&request, mJson.NewDecoder(w, r)); err != nil {
		return recipe.Input{}, bodyError(err)
	}
	return request.input()
}

// readMultipart reads name, text, cooking_time, repeated or comma separated
// tags, ingredients as a JSON array and an optional image file.
func readMultipart(w http.ResponseWriter, r *http.Request) (recipe.Input, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return recipe.Input{}, bodyError(err)
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	verr := apperr.NewValidationError(apperr.CodeInvalidRecipe)
	request := RecipeRequest{
		Name: r.FormValue("name"),
		Text: r.FormValue("text"),
	}

	if raw := strings.TrimSpace(r.FormValue("cooking_time")); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			verr.Add("cooking_time", "expected an integer")
		}
		request.CookingTime = n
	}

	for _, value := range r.MultipartForm.Value["tags"] {
		for raw := range strings.SplitSeq(value, ",") {
			if raw = strings.TrimSpace(raw); raw == "" {
				continue
			}
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				verr.Add("tags", "expected an integer id, got %q", raw)
				continue
			}
			request.Tags = append(request.Tags, id)
		}
	}

	if raw := strings.TrimSpace(r.FormValue("ingredients")); raw != "" {
		if err := json.Unmarshal([]byte(raw), &request.Ingredients); err != nil {
			verr.Add("ingredients", "expected a JSON array of {\"id\", \"amount\"} objects")
		}
	}

	if err := verr.Err(); err != nil {
		return recipe.Input{}, err
	}

	in, err := request.input()
	if err != nil {
		return recipe.Input{}, err
	}

	file, _, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return in, nil
	} else if err != nil {
		return recipe.Input{}, fmt.Errorf("reading image part: %w", err)
	}
	image, err := form.ReadFile(file)
	if err != nil {
		return recipe.Input{}, imageError(err)
	}
	in.Image = image
	return in, nil
}

func imageError(err error) error {
	switch {
	case errors.Is(err, form.ErrUnsupportedMimeType):
		return apperr.Invalid(apperr.CodeInvalidImage, "image", "unsupported image type")
	case errors.Is(err, form.ErrNoImageUploaded):
		return apperr.Invalid(apperr.CodeInvalidImage, "image", "the submitted image is empty")
	case errors.Is(err, form.ErrMalformedDataURI):
		return apperr.Invalid(apperr.CodeInvalidImage, "image", "expected data:image/<type>;base64,<payload>")
	default:
		return fmt.Errorf("reading image: %w", err)
	}
}

func bodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return apperr.Invalid(apperr.CodeBadRequest, "non_field_errors", "request body too large")
	}
	return apperr.Invalid(apperr.CodeBadRequest, "non_field_errors", "invalid request body: %s", err.Error())
}

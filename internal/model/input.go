package model

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidID reports an identifier that is not a 24 character hex ObjectID.
var ErrInvalidID = errors.New("invalid id")

// Inputs are the request shapes accepted by the create endpoints.
// Required fields are pointers or slices so that "required" means present:
// an empty string or an empty list is accepted, a missing or null field is not.
// A supplied _id must be a hex ObjectID; an absent or empty one is generated.

// AuthorInput is the body of POST /create/author.
type AuthorInput struct {
	ID   *string `json:"_id,omitempty" validate:"omitempty,objectid" example:"65a1f0c2e4b0a1b2c3d4e5f6"`
	Name *string `json:"name" validate:"required" example:"Diego"`
}

// Entity builds the author, generating an id when none was supplied.
func (in AuthorInput) Entity() (Author, error) {
	id, err := idOrNew(in.ID)
	if err != nil {
		return Author{}, err
	}
	return Author{
		ID:   id,
		Name: deref(in.Name),
	}, nil
}

// PostInput is the body of POST /create/post.
type PostInput struct {
	ID         *string    `json:"_id,omitempty" validate:"omitempty,objectid" example:"65a1f0c2e4b0a1b2c3d4e5f7"`
	Title      *string    `json:"title" validate:"required" example:"Creando Post"`
	AuthorID   *string    `json:"id_author" validate:"required" example:""`
	Images     []string   `json:"images" validate:"required" example:"Murmullo.jpg"`
	Date       *time.Time `json:"date,omitempty"`
	Categories []string   `json:"categories" validate:"required" example:"explicacion,post"`
}

// Entity builds the post. When no date was supplied the post is stamped with now,
// so each post carries its own creation time.
func (in PostInput) Entity(now time.Time) (Post, error) {
	id, err := idOrNew(in.ID)
	if err != nil {
		return Post{}, err
	}
	date := now
	if in.Date != nil {
		date = *in.Date
	}
	return Post{
		ID:         id,
		Title:      deref(in.Title),
		AuthorID:   deref(in.AuthorID),
		Images:     in.Images,
		Date:       date,
		Categories: in.Categories,
	}, nil
}

// ContentInput is the body of POST /create/content.
type ContentInput struct {
	ID      *string  `json:"_id,omitempty" validate:"omitempty,objectid" example:"65a1f0c2e4b0a1b2c3d4e5f8"`
	PostID  *string  `json:"id_post" validate:"required" example:"id_del_post"`
	Content *string  `json:"content" validate:"required" example:"Para crear un post con una estructura que incluya titulo, autor, imagenes, fechas y palabras clave"`
	Images  []string `json:"images" validate:"required" example:"Hola.jpg,Buenas.jpg"`
	Keyword []string `json:"keyword" validate:"required" example:"crear,post"`
}

// Entity builds the content block, generating an id when none was supplied.
func (in ContentInput) Entity() (Content, error) {
	id, err := idOrNew(in.ID)
	if err != nil {
		return Content{}, err
	}
	return Content{
		ID:      id,
		PostID:  deref(in.PostID),
		Content: deref(in.Content),
		Images:  in.Images,
		Keyword: in.Keyword,
	}, nil
}

// ValidationError lists the JSON names of the fields that failed validation.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || primitive.IsValidObjectID(s)
	})
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks an input struct against its validate tags.
// A malformed _id yields ErrInvalidID; otherwise it returns a *ValidationError
// naming the offending fields.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Tag() == "objectid" {
			return fmt.Errorf("%w: %s", ErrInvalidID, fe.Field())
		}
		fields = append(fields, fe.Field())
	}
	return &ValidationError{Fields: fields}
}

// ParseID parses a hex ObjectID, wrapping failures in ErrInvalidID.
func ParseID(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return id, nil
}

func idOrNew(s *string) (primitive.ObjectID, error) {
	if s == nil || *s == "" {
		return primitive.NewObjectID(), nil
	}
	return ParseID(*s)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

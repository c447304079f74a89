// Package form parses and validates submitted field sets. Validation is
// decoupled from rendering: a form is built from raw url.Values and
// returns a field-to-message map the templates display inline.
package form

import (
	"fmt"
	"net/url"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Errors maps a struct field name to a human-readable message.
type Errors map[string]string

func (e Errors) Has(field string) bool   { return e[field] != "" }
func (e Errors) Get(field string) string { return e[field] }

// PostForm is the field set for creating and editing a post.
type PostForm struct {
	Title    string `validate:"required"`
	Subtitle string `validate:"required"`
	Body     string `validate:"required"`
	ImgURL   string `validate:"required,url"`
}

func PostFormFromValues(values url.Values) PostForm {
	return PostForm{
		Title:    values.Get("title"),
		Subtitle: values.Get("subtitle"),
		Body:     values.Get("body"),
		ImgURL:   values.Get("img_url"),
	}
}

func (f PostForm) Validate() Errors { return check(f) }

// RegisterForm is the field set for creating an account.
type RegisterForm struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

func RegisterFormFromValues(values url.Values) RegisterForm {
	return RegisterForm{
		Name:     values.Get("name"),
		Email:    values.Get("email"),
		Password: values.Get("password"),
	}
}

func (f RegisterForm) Validate() Errors { return check(f) }

// LoginForm is the field set for signing in.
type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

func LoginFormFromValues(values url.Values) LoginForm {
	return LoginForm{
		Email:    values.Get("email"),
		Password: values.Get("password"),
	}
}

func (f LoginForm) Validate() Errors { return check(f) }

// check runs struct validation and flattens the result to field messages.
// A nil return means the form is valid.
func check(form interface{}) Errors {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return Errors{"": err.Error()}
	}

	errs := Errors{}
	for _, fe := range verrs {
		errs[fe.Field()] = message(fe)
	}
	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "url":
		return "Must be a valid URL."
	case "email":
		return "Must be a valid email address."
	case "min":
		return fmt.Sprintf("Must be at least %s characters.", fe.Param())
	default:
		return "Invalid value."
	}
}

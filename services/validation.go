package services

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/yeremiapane/neo-dine/models"
)

var (
	personNamePattern = regexp.MustCompile(`^[a-zA-Z\s\-.]+$`)
	phonePattern      = regexp.MustCompile(`^[+]?[(]?[0-9]{3}[)]?[-\s.]?[0-9]{3}[-\s.]?[0-9]{4,6}$`)
	expiryPattern     = regexp.MustCompile(`^(0[1-9]|1[0-2])/([0-9]{2})$`)
	cvcPattern        = regexp.MustCompile(`^[0-9]{3,4}$`)
	cardDigitsPattern = regexp.MustCompile(`^[0-9]{16}$`)
)

var validate = newValidator()

var fieldLabels = map[string]string{
	"name":        "Name",
	"address":     "Address",
	"phone":       "Phone",
	"email":       "Email",
	"method":      "Delivery method",
	"date":        "Date",
	"time":        "Time",
	"guests":      "Guests",
	"card_name":   "Cardholder name",
	"card_number": "Card number",
	"expiry":      "Expiry date",
	"cvc":         "CVC",
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// error per field pakai nama json supaya cocok dengan form di frontend
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	rules := map[string]*regexp.Regexp{
		"personname": personNamePattern,
		"phone":      phonePattern,
		"expiry":     expiryPattern,
		"cvc":        cvcPattern,
	}
	for tag, pattern := range rules {
		pattern := pattern
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return pattern.MatchString(fl.Field().String())
		})
	}
	_ = v.RegisterValidation("cardnumber", func(fl validator.FieldLevel) bool {
		return cardDigitsPattern.MatchString(CardDigits(fl.Field().String()))
	})
	_ = v.RegisterValidation("timeslot", func(fl validator.FieldLevel) bool {
		for _, slot := range models.TimeSlots {
			if fl.Field().String() == slot {
				return true
			}
		}
		return false
	})
	return v
}

func validationMessage(fe validator.FieldError) string {
	label, ok := fieldLabels[fe.Field()]
	if !ok {
		label = fe.Field()
	}

	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "personname":
		return "Invalid characters in name"
	case "phone":
		return "Invalid phone number"
	case "email":
		return "Invalid email address"
	case "datetime":
		return "Invalid date"
	case "timeslot":
		return "Choose one of " + strings.Join(models.TimeSlots, ", ")
	case "cardnumber":
		return "Card number must have 16 digits"
	case "expiry":
		return "Use MM/YY"
	case "cvc":
		return "CVC must be 3 or 4 digits"
	case "oneof":
		return label + " must be one of: " + fe.Param()
	case "min":
		if fe.Kind() == reflect.String {
			return label + " too short"
		}
		return label + " must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return label + " too long"
		}
		return label + " must be at most " + fe.Param()
	}
	return "Invalid " + strings.ToLower(label)
}

// validateStruct runs the struct tags and folds failures into FieldErrors,
// keeping the first message per field.
func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := FieldErrors{}
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; !seen {
			out[fe.Field()] = validationMessage(fe)
		}
	}
	return out
}

// mergeFieldErrors adds extra into err (nil or FieldErrors).
func mergeFieldErrors(err error, extra FieldErrors) error {
	if len(extra) == 0 {
		return err
	}
	out := FieldErrors{}
	if fe, ok := AsFieldErrors(err); ok {
		for k, v := range fe {
			out[k] = v
		}
	} else if err != nil {
		return err
	}
	for k, v := range extra {
		if _, seen := out[k]; !seen {
			out[k] = v
		}
	}
	return out
}

// CardDigits strips the spaces and dashes a card number is typed with.
func CardDigits(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r == ' ' || r == '-' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

package dto

import (
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const passwordSpecials = "!@#$%^&*"

// StrongPassword reports whether pw is 8-16 characters long with at least one
// uppercase letter and one of !@#$%^&*.
func StrongPassword(pw string) bool {
	n := len([]rune(pw))
	if n < 8 || n > 16 {
		return false
	}
	var upper, special bool
	for _, r := range pw {
		if unicode.IsUpper(r) {
			upper = true
		}
		if strings.ContainsRune(passwordSpecials, r) {
			special = true
		}
	}
	return upper && special
}

var registerOnce sync.Once

// RegisterValidators installs the custom binding rules on gin's validator.
// Safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterTagNameFunc(jsonFieldName)
			_ = v.RegisterValidation("strongpassword", func(fl validator.FieldLevel) bool {
				return StrongPassword(fl.Field().String())
			})
		}
	})
}

// jsonFieldName makes validation errors report the wire name of a field.
func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

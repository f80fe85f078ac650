package validator

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// publicIDRegex matches institution-issued identifiers such as student
	// numbers: letters, digits and dashes, 2 to 32 characters.
	publicIDRegex = regexp.MustCompile(`^[A-Za-z0-9-]{2,32}$`)
)

// ValidatePublicID validates a member public identifier.
// Surrounding whitespace is tolerated here because the recorder trims it
// before any lookup.
func ValidatePublicID(fl validator.FieldLevel) bool {
	id := strings.TrimSpace(fl.Field().String())
	return publicIDRegex.MatchString(id)
}

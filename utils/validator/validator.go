package validatorx

import (
	"net/mail"
	"regexp"
	"strings"
	"sync"
	"unicode"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/platewise/account-service/constant"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

var (
	phoneRegex   = regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)
	nameRegex    = regexp.MustCompile(`^[A-Za-z ]+$`)
	addressRegex = regexp.MustCompile(`^[A-Za-z0-9 ]+$`)
)

// Init initializes the validator singleton and registers the account
// predicates as custom validations (idempotent).
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()

	_ = v.RegisterValidation("account_email", func(fl gpvalidator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})
	_ = v.RegisterValidation("us_phone", func(fl gpvalidator.FieldLevel) bool {
		return IsValidPhone(fl.Field().String())
	})
	_ = v.RegisterValidation("person_name", func(fl gpvalidator.FieldLevel) bool {
		return IsValidName(fl.Field().String())
	})
	_ = v.RegisterValidation("adult_age", func(fl gpvalidator.FieldLevel) bool {
		return IsValidAge(int(fl.Field().Int()))
	})
	_ = v.RegisterValidation("sex_enum", func(fl gpvalidator.FieldLevel) bool {
		return IsValidSex(fl.Field().String())
	})
	_ = v.RegisterValidation("street_address", func(fl gpvalidator.FieldLevel) bool {
		return IsValidAddress(fl.Field().String())
	})
	_ = v.RegisterValidation("food_type", func(fl gpvalidator.FieldLevel) bool {
		return constant.IsFoodType(fl.Field().String())
	})
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}

// IsValidEmail reports whether s is a syntactically valid address. The
// parsed address must round-trip to the exact input, which rejects
// display names, comments and trailing garbage.
func IsValidEmail(s string) bool {
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// IsValidPhone accepts only dash-separated north-american numbers,
// e.g. 555-555-5555.
func IsValidPhone(s string) bool {
	return phoneRegex.MatchString(s)
}

// IsValidPassword requires length >= 8 plus at least one uppercase,
// one lowercase, one digit and one non-alphanumeric character.
func IsValidPassword(s string) bool {
	if len(s) < 8 {
		return false
	}
	var upper, lower, digit, special bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}
	return upper && lower && digit && special
}

// IsValidName requires a trimmed length of at least 2, letters and
// spaces only.
func IsValidName(s string) bool {
	s = strings.TrimSpace(s)
	return len(s) >= 2 && nameRegex.MatchString(s)
}

// IsValidSex accepts exactly Male or Female, case-insensitively.
func IsValidSex(s string) bool {
	return strings.EqualFold(s, "Male") || strings.EqualFold(s, "Female")
}

// IsValidAddress requires a trimmed length of at least 5, letters,
// digits and spaces only.
func IsValidAddress(s string) bool {
	s = strings.TrimSpace(s)
	return len(s) >= 5 && addressRegex.MatchString(s)
}

// IsValidAge accepts ages in [18, 99].
func IsValidAge(n int) bool {
	return n >= 18 && n <= 99
}

package model

import "strings"

type IdentityKind int

const (
	IdentityEmail IdentityKind = iota + 1
	IdentityPhone
)

// Identity is the unique email-or-phone value identifying an account,
// tagged with which of the two it is. It is resolved once at the
// boundary so the email/phone choice is never re-derived downstream.
type Identity struct {
	Kind  IdentityKind
	Value string
}

// ParseIdentity classifies a raw identifier. The presence of '@' selects
// email; anything else is treated as a phone number. This is a lookup
// heuristic, not a format validation.
func ParseIdentity(s string) Identity {
	if strings.ContainsRune(s, '@') {
		return Identity{Kind: IdentityEmail, Value: s}
	}
	return Identity{Kind: IdentityPhone, Value: s}
}

// EmailIdentity builds an email-tagged identity.
func EmailIdentity(email string) Identity {
	return Identity{Kind: IdentityEmail, Value: email}
}

// PhoneIdentity builds a phone-tagged identity.
func PhoneIdentity(phone string) Identity {
	return Identity{Kind: IdentityPhone, Value: phone}
}

// Filter converts the identity into an exact-match user lookup filter.
func (i Identity) Filter() *UserFilter {
	if i.Kind == IdentityEmail {
		return &UserFilter{Email: i.Value}
	}
	return &UserFilter{Phone: i.Value}
}

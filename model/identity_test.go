package model

import "testing"

func TestParseIdentity(t *testing.T) {
	tests := []struct {
		input string
		kind  IdentityKind
	}{
		{"user@domain.com", IdentityEmail},
		{"weird@", IdentityEmail}, // heuristic, not validation
		{"123-456-7890", IdentityPhone},
		{"1234567890", IdentityPhone},
		{"", IdentityPhone},
	}
	for _, tt := range tests {
		got := ParseIdentity(tt.input)
		if got.Kind != tt.kind {
			t.Errorf("ParseIdentity(%q).Kind = %v, want %v", tt.input, got.Kind, tt.kind)
		}
		if got.Value != tt.input {
			t.Errorf("ParseIdentity(%q).Value = %q", tt.input, got.Value)
		}
	}
}

func TestIdentity_Filter(t *testing.T) {
	emailFilter := EmailIdentity("user@domain.com").Filter()
	if emailFilter.Email != "user@domain.com" || emailFilter.Phone != "" {
		t.Fatalf("email filter = %+v", emailFilter)
	}

	phoneFilter := PhoneIdentity("123-456-7890").Filter()
	if phoneFilter.Phone != "123-456-7890" || phoneFilter.Email != "" {
		t.Fatalf("phone filter = %+v", phoneFilter)
	}
}

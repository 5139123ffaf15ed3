package model

import (
	"testing"
	"time"
)

func TestPasswordResetToken_Valid(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name  string
		token PasswordResetToken
		want  bool
	}{
		{
			name:  "fresh token",
			token: PasswordResetToken{ExpiresAt: now.Add(time.Hour), Consumed: false},
			want:  true,
		},
		{
			name:  "consumed token",
			token: PasswordResetToken{ExpiresAt: now.Add(time.Hour), Consumed: true},
			want:  false,
		},
		{
			name:  "expired token",
			token: PasswordResetToken{ExpiresAt: now.Add(-time.Minute), Consumed: false},
			want:  false,
		},
		{
			name:  "expired and consumed",
			token: PasswordResetToken{ExpiresAt: now.Add(-time.Minute), Consumed: true},
			want:  false,
		},
		{
			name:  "exactly at expiry",
			token: PasswordResetToken{ExpiresAt: now, Consumed: false},
			want:  false,
		},
	}
	for _, tt := range tests {
		if got := tt.token.Valid(now); got != tt.want {
			t.Errorf("%s: Valid() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

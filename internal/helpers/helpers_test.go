package helpers

import (
	"testing"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := NewAccessToken("64f0c2a9e13a5b0001a1b2c3", "venueOwner", "owner@example.com", "Asha")
	if err != nil {
		t.Fatalf("NewAccessToken failed: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}

	if claims.UserID() != "64f0c2a9e13a5b0001a1b2c3" {
		t.Errorf("user id = %s", claims.UserID())
	}
	if !claims.IsVenueOwner() {
		t.Error("expected venueOwner role")
	}
	if claims.IsAdmin() {
		t.Error("unexpected admin role")
	}
	if claims.Email != "owner@example.com" {
		t.Errorf("email = %s", claims.Email)
	}
}

func TestValidateTokenRejectsTampered(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := NewAccessToken("64f0c2a9e13a5b0001a1b2c3", "user", "u@example.com", "U")
	if err != nil {
		t.Fatalf("NewAccessToken failed: %v", err)
	}

	t.Setenv("JWT_SECRET", "different-secret")
	if _, err := ValidateToken(token); err == nil {
		t.Error("expected validation failure with wrong secret")
	}
}

func TestIsPasswordStrong(t *testing.T) {
	cases := []struct {
		password string
		want     bool
	}{
		{"Password1", true},
		{"short1A", false},
		{"alllowercase1", false},
		{"ALLUPPERCASE1", false},
		{"NoDigitsHere", false},
	}
	for _, tc := range cases {
		if got := IsPasswordStrong(tc.password); got != tc.want {
			t.Errorf("IsPasswordStrong(%q) = %v, want %v", tc.password, got, tc.want)
		}
	}
}

// File: /utils/validators_test.go
package utils

import "testing"

func TestIsValidProfileName(t *testing.T) {
	tests := []struct {
		name        string
		profileName string
		want        bool
	}{
		{name: "letters and digits", profileName: "martha1", want: true},
		{name: "underscore", profileName: "martha_chumo", want: true},
		{name: "hyphen", profileName: "martha-chumo", want: true},
		{name: "empty", profileName: "", want: false},
		{name: "spaces", profileName: "My Profile Name With Spaces", want: false},
		{name: "dot", profileName: "martha.chumo", want: false},
		{name: "at sign", profileName: "martha@chumo", want: false},
		{name: "tab", profileName: "martha\tchumo", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidProfileName(tt.profileName); got != tt.want {
				t.Errorf("IsValidProfileName(%q) = %v, want %v", tt.profileName, got, tt.want)
			}
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"martha@example.com", true},
		{"martha.chumo+tag@example.co.ke", true},
		{"not-an-email", false},
		{"@example.com", false},
	}

	for _, tt := range tests {
		if got := IsValidEmail(tt.email); got != tt.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestIsValidPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{name: "too short", password: "Ab1", want: false},
		{name: "three classes", password: "Abcdef1", want: true},
		{name: "lower only", password: "abcdefgh", want: false},
		{name: "with symbol", password: "abcdef1!", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidPassword(tt.password); got != tt.want {
				t.Errorf("IsValidPassword(%q) = %v, want %v", tt.password, got, tt.want)
			}
		})
	}
}

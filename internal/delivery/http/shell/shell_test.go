package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChromeFor(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		customerAuthed bool
		wantNavbar     bool
	}{
		{"dashboard with session", "/dashboard", true, true},
		{"dashboard without session", "/dashboard", false, false},
		{"home without session", "/", false, false},
		{"partners with session", "/partners", true, true},
		{"merchant area hides navbar even when customer authed", "/merchant/dashboard", true, false},
		{"merchant root", "/merchant", true, false},
		{"merchant login", "/merchant/login", true, false},
		{"admin area hides navbar", "/admin/dashboard", true, false},
		{"admin root", "/admin", true, false},
		{"merchant-like prefix outside the area", "/merchants", true, true},
		{"admin-like prefix outside the area", "/administration", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ChromeFor(tt.path, tt.customerAuthed)
			assert.Equal(t, tt.wantNavbar, got.ShowNavbar)
		})
	}
}

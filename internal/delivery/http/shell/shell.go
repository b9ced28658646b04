// Package shell decides which application chrome a rendered page carries.
package shell

import "strings"

// Chrome describes the surrounding app chrome for a page.
type Chrome struct {
	ShowNavbar bool `json:"showNavbar"`
}

// ChromeFor computes the chrome for a path. The customer navbar never shows
// inside the merchant or admin areas, regardless of any active customer
// session; elsewhere it shows only for an authenticated customer.
func ChromeFor(path string, customerAuthenticated bool) Chrome {
	if isMerchantArea(path) || isAdminArea(path) {
		return Chrome{ShowNavbar: false}
	}

	return Chrome{ShowNavbar: customerAuthenticated}
}

func isMerchantArea(path string) bool {
	return path == "/merchant" || strings.HasPrefix(path, "/merchant/")
}

func isAdminArea(path string) bool {
	return path == "/admin" || strings.HasPrefix(path, "/admin/")
}

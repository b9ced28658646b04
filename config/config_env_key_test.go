package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"session": map[string]any{
			"cookieTtl":      "720h",
			"customerCookie": "nexprev_user",
		},
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"qrcode": map[string]any{
			"baseUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "SESSION_COOKIETTL", want: "session.cookieTtl"},
		{envKey: "SESSION_CUSTOMERCOOKIE", want: "session.customerCookie"},
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "QRCODE_BASEURL", want: "qrcode.baseUrl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.Session.CustomerCookie != "nexprev_user" {
		t.Fatalf("unexpected customer cookie: %q", cfg.Session.CustomerCookie)
	}
	if cfg.Session.MerchantCookie != "nexprev_merchant" {
		t.Fatalf("unexpected merchant cookie: %q", cfg.Session.MerchantCookie)
	}
	if cfg.Session.AdminCookie != "nexprev_admin" {
		t.Fatalf("unexpected admin cookie: %q", cfg.Session.AdminCookie)
	}
	if cfg.Session.CookieTTL == 0 {
		t.Fatal("cookie TTL default not applied")
	}
	if cfg.HTTP.Port != defaultHTTPPort {
		t.Fatalf("unexpected port: %d", cfg.HTTP.Port)
	}
	if cfg.QRCode == nil || cfg.QRCode.Size != defaultQRCodeSize {
		t.Fatal("qrcode defaults not applied")
	}
}

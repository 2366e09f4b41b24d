package api

import "testing"

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name string
		dev  Device
		exp  string
	}{
		{"nickname wins", Device{Nickname: "tv", Hostname: "samsung-tv", MAC: "aa:bb"}, "tv"},
		{"hostname next", Device{Hostname: "samsung-tv", MAC: "aa:bb"}, "samsung-tv"},
		{"mac last", Device{MAC: "aa:bb"}, "aa:bb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dev.DisplayName(); got != tt.exp {
				t.Errorf("expected %q, got %q", tt.exp, got)
			}
		})
	}
}

func TestDisplayIP(t *testing.T) {
	tests := []struct {
		name string
		dev  Device
		exp  string
	}{
		{"ipv4 wins", Device{
			IP:            "192.168.4.10",
			IPv6Addresses: []IPv6Address{{Address: "fe80::1", Scope: "link"}},
		}, "192.168.4.10"},
		{"no addresses", Device{}, "No IP"},
		{"single link-scoped", Device{
			IPv6Addresses: []IPv6Address{{Address: "fe80::1", Scope: "link"}},
		}, "fe80::1"},
		{"global preferred over link", Device{
			IPv6Addresses: []IPv6Address{
				{Address: "fe80::1", Scope: "link"},
				{Address: "2001:db8::5", Scope: "global"},
				{Address: "2001:db8::6", Scope: "global"},
			},
		}, "2001:db8::5"},
		{"all link-scoped falls back to first", Device{
			IPv6Addresses: []IPv6Address{
				{Address: "fe80::1", Scope: "link"},
				{Address: "fe80::2", Scope: "link"},
			},
		}, "fe80::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dev.DisplayIP(); got != tt.exp {
				t.Errorf("expected %q, got %q", tt.exp, got)
			}
		})
	}
}

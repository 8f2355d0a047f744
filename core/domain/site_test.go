// ABOUTME: Tests for the SiteSpec catalog model
// ABOUTME: Covers the enabled-by-default decoding rule and derivation helpers

package domain

import (
	"encoding/json"
	"testing"
)

func TestSiteSpec_UnmarshalJSON_EnabledDefaultsTrue(t *testing.T) {
	tests := []struct {
		name string
		data string
		want bool
	}{
		{"absent enabled", `{"url": "https://example.mv"}`, true},
		{"explicit true", `{"url": "https://example.mv", "enabled": true}`, true},
		{"explicit false", `{"url": "https://example.mv", "enabled": false}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var site SiteSpec
			if err := json.Unmarshal([]byte(tt.data), &site); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if site.Enabled != tt.want {
				t.Errorf("Enabled = %v, want %v", site.Enabled, tt.want)
			}
		})
	}
}

func TestSiteSpec_UnmarshalJSON_AllFields(t *testing.T) {
	data := `{
		"url": "https://example.mv",
		"name": "Example News",
		"category": "news",
		"country": "MV",
		"fallback_logo_url": "https://cdn.example.mv/logo.png"
	}`

	var site SiteSpec
	if err := json.Unmarshal([]byte(data), &site); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if site.URL != "https://example.mv" {
		t.Errorf("URL = %v, want https://example.mv", site.URL)
	}
	if site.Name != "Example News" {
		t.Errorf("Name = %v, want Example News", site.Name)
	}
	if site.Category != "news" {
		t.Errorf("Category = %v, want news", site.Category)
	}
	if site.Country != "MV" {
		t.Errorf("Country = %v, want MV", site.Country)
	}
	if site.FallbackLogoURL != "https://cdn.example.mv/logo.png" {
		t.Errorf("FallbackLogoURL = %v, want the configured override", site.FallbackLogoURL)
	}
}

func TestSiteSpec_Validate(t *testing.T) {
	tests := []struct {
		name    string
		site    SiteSpec
		wantErr bool
	}{
		{"valid", SiteSpec{URL: "https://example.mv"}, false},
		{"empty URL", SiteSpec{}, true},
		{"relative URL", SiteSpec{URL: "/just/a/path"}, true},
		{"missing scheme", SiteSpec{URL: "example.mv"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.site.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSiteSpec_Domain(t *testing.T) {
	site := SiteSpec{URL: "https://www.example.mv/news"}
	if got := site.Domain(); got != "www.example.mv" {
		t.Errorf("Domain() = %v, want www.example.mv", got)
	}
}

func TestSiteSpec_DisplayName(t *testing.T) {
	named := SiteSpec{URL: "https://example.mv", Name: "Example News"}
	if got := named.DisplayName(); got != "Example News" {
		t.Errorf("DisplayName() = %v, want Example News", got)
	}

	unnamed := SiteSpec{URL: "https://example.mv", Name: "  "}
	if got := unnamed.DisplayName(); got != "example.mv" {
		t.Errorf("DisplayName() = %v, want example.mv", got)
	}
}

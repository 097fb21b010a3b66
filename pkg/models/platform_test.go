package models

import "testing"

func TestPlatformCatalog(t *testing.T) {
	want := map[string]struct {
		name  string
		color string
	}{
		"github":         {"GitHub", "#1A1A1A"},
		"youtube":        {"YouTube", "#EE1D52"},
		"linkedin":       {"LinkedIn", "#2D68FF"},
		"facebook":       {"Facebook", "#1877F2"},
		"twitter":        {"Twitter", "#1DA1F2"},
		"devto":          {"Dev.to", "#000000"},
		"codewars":       {"Codewars", "#8A0E57"},
		"freecodecamp":   {"freeCodeCamp", "#2F3942"},
		"gitlab":         {"GitLab", "#FC6D26"},
		"hashnode":       {"Hashnode", "#2962FF"},
		"stackoverflow":  {"Stack Overflow", "#F48024"},
		"twitch":         {"Twitch", "#9146FF"},
		"frontendmentor": {"Frontend Mentor", "#00BB8F"},
	}

	all := Platforms()
	if len(all) != len(want) {
		t.Fatalf("len(Platforms()) = %d, want %d", len(all), len(want))
	}
	for key, w := range want {
		if !KnownPlatform(key) {
			t.Errorf("%s missing from the enumeration", key)
			continue
		}
		p := PlatformByKey(key)
		if p.Name != w.name {
			t.Errorf("%s name = %q, want %q", key, p.Name, w.name)
		}
		if p.Color != w.color {
			t.Errorf("%s color = %q, want %q", key, p.Color, w.color)
		}
	}
}

func TestPlatformByKeyUnknownFallsBack(t *testing.T) {
	p := PlatformByKey("myspace")
	if p.Key != DefaultPlatform {
		t.Errorf("fallback = %q, want %q", p.Key, DefaultPlatform)
	}
	if KnownPlatform("myspace") {
		t.Error("myspace should not be a known platform")
	}
}

func TestPlatformsOrder(t *testing.T) {
	all := Platforms()
	if all[0].Key != "github" {
		t.Errorf("first platform = %q, want github", all[0].Key)
	}
	if all[len(all)-1].Key != "frontendmentor" {
		t.Errorf("last platform = %q, want frontendmentor", all[len(all)-1].Key)
	}
}

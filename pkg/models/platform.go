package models

// Platform describes one entry of the fixed platform enumeration used for
// link presentation.
type Platform struct {
	Key   string
	Name  string
	Color string
	Glyph string
}

// DefaultPlatform is the platform assigned to a freshly added link.
const DefaultPlatform = "github"

var platforms = map[string]Platform{
	"github":         {Key: "github", Name: "GitHub", Color: "#1A1A1A", Glyph: ""},
	"youtube":        {Key: "youtube", Name: "YouTube", Color: "#EE1D52", Glyph: ""},
	"linkedin":       {Key: "linkedin", Name: "LinkedIn", Color: "#2D68FF", Glyph: ""},
	"facebook":       {Key: "facebook", Name: "Facebook", Color: "#1877F2", Glyph: ""},
	"twitter":        {Key: "twitter", Name: "Twitter", Color: "#1DA1F2", Glyph: ""},
	"devto":          {Key: "devto", Name: "Dev.to", Color: "#000000", Glyph: ""},
	"codewars":       {Key: "codewars", Name: "Codewars", Color: "#8A0E57", Glyph: "⚔"},
	"freecodecamp":   {Key: "freecodecamp", Name: "freeCodeCamp", Color: "#2F3942", Glyph: "🔥"},
	"gitlab":         {Key: "gitlab", Name: "GitLab", Color: "#FC6D26", Glyph: ""},
	"hashnode":       {Key: "hashnode", Name: "Hashnode", Color: "#2962FF", Glyph: "#"},
	"stackoverflow":  {Key: "stackoverflow", Name: "Stack Overflow", Color: "#F48024", Glyph: ""},
	"twitch":         {Key: "twitch", Name: "Twitch", Color: "#9146FF", Glyph: ""},
	"frontendmentor": {Key: "frontendmentor", Name: "Frontend Mentor", Color: "#00BB8F", Glyph: "☰"},
}

// platformOrder fixes the presentation order of the enumeration.
var platformOrder = []string{
	"github", "youtube", "linkedin", "facebook", "twitter", "devto",
	"codewars", "freecodecamp", "gitlab", "hashnode", "stackoverflow",
	"twitch", "frontendmentor",
}

// PlatformByKey looks up a platform by its key. Unknown keys fall back to
// the GitHub presentation so a stale remote value still renders.
func PlatformByKey(key string) Platform {
	if p, ok := platforms[key]; ok {
		return p
	}
	return platforms[DefaultPlatform]
}

// KnownPlatform reports whether key is part of the enumeration.
func KnownPlatform(key string) bool {
	_, ok := platforms[key]
	return ok
}

// Platforms returns the enumeration in presentation order.
func Platforms() []Platform {
	out := make([]Platform, 0, len(platformOrder))
	for _, key := range platformOrder {
		out = append(out, platforms[key])
	}
	return out
}

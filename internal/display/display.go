// Package display holds small presentation helpers shared by templates.
package display

import "strings"

const flagBaseURL = "https://flagcdn.com"

// Rank highlight colors for the leaderboard podium.
const (
	ColorGold        = "rgba(255, 215, 0, 0.7)"
	ColorSilver      = "rgba(192, 192, 192, 0.7)"
	ColorBronze      = "rgba(205, 127, 50, 0.7)"
	ColorTransparent = "transparent"
)

// FlagURL maps an ISO 3166-1 alpha-2 country code to a flag image.
// Codes that are not two ASCII letters yield an empty string.
func FlagURL(country string) string {
	code := strings.ToLower(strings.TrimSpace(country))
	if len(code) != 2 || !isASCIILetters(code) {
		return ""
	}
	return flagBaseURL + "/24x18/" + code + ".png"
}

// LanguageFlagURL is FlagURL for a UI language code; English shows the US flag.
func LanguageFlagURL(lang string) string {
	code := strings.ToLower(lang)
	if i := strings.IndexAny(code, "-_"); i >= 0 {
		code = code[:i]
	}
	if code == "en" {
		code = "us"
	}
	return FlagURL(code)
}

// RankColor returns the highlight for a 1-based leaderboard position.
func RankColor(position int) string {
	switch position {
	case 1:
		return ColorGold
	case 2:
		return ColorSilver
	case 3:
		return ColorBronze
	default:
		return ColorTransparent
	}
}

// Podium reports whether position gets a highlight.
func Podium(position int) bool {
	return position >= 1 && position <= 3
}

func isASCIILetters(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

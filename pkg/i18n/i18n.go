// Package i18n is the translation provider: dotted-key lookup over embedded
// per-locale dictionaries (e.g. "createBot.steps.basics", "languages.en"),
// falling back to English and finally to the key itself. Industry display
// names are data, not translations, and live in the taxonomy package.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"

	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// DefaultLanguage is the fallback locale
const DefaultLanguage = "en"

// supported locales, in the order the original product shipped them
var supportedCodes = []string{"en", "fr", "it", "es", "ru", "ar", "th"}

var (
	dictionaries map[string]map[string]string
	supportedTag []language.Tag
	matcher      language.Matcher
)

func init() {
	dictionaries = make(map[string]map[string]string, len(supportedCodes))
	for _, code := range supportedCodes {
		data, err := localeFS.ReadFile("locales/" + code + ".json")
		if err != nil {
			panic(fmt.Sprintf("i18n: missing locale %s: %v", code, err))
		}
		var nested map[string]any
		if err := json.Unmarshal(data, &nested); err != nil {
			panic(fmt.Sprintf("i18n: bad locale %s: %v", code, err))
		}
		flat := map[string]string{}
		flatten("", nested, flat)
		dictionaries[code] = flat

		supportedTag = append(supportedTag, language.MustParse(code))
	}
	matcher = language.NewMatcher(supportedTag)
}

func flatten(prefix string, nested map[string]any, out map[string]string) {
	for k, v := range nested {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			out[key] = val
		case map[string]any:
			flatten(key, val, out)
		}
	}
}

// Supported returns the supported language codes
func Supported() []string {
	out := make([]string, len(supportedCodes))
	copy(out, supportedCodes)
	return out
}

// IsSupported reports whether code is a supported interface language
func IsSupported(code string) bool {
	_, ok := dictionaries[code]
	return ok
}

// Match resolves an Accept-Language header (or bare code) to the closest
// supported language, defaulting to English.
func Match(acceptLanguage string) string {
	if acceptLanguage == "" {
		return DefaultLanguage
	}
	_, idx := language.MatchStrings(matcher, acceptLanguage)
	return supportedCodes[idx]
}

// Translate looks up a dotted key in the given language, falling back to
// English and then to the key itself.
func Translate(lang, key string) string {
	if dict, ok := dictionaries[lang]; ok {
		if msg, ok := dict[key]; ok {
			return msg
		}
	}
	if msg, ok := dictionaries[DefaultLanguage][key]; ok {
		return msg
	}
	return key
}

// LanguageName returns the display name of a language code in lang
func LanguageName(lang, code string) string {
	return Translate(lang, "languages."+code)
}

package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSupportedLanguages(t *testing.T) {
	codes := Supported()
	assert.Equal(t, []string{"en", "fr", "it", "es", "ru", "ar", "th"}, codes)

	for _, code := range codes {
		assert.True(t, IsSupported(code), "expected %s to be supported", code)
	}
	assert.False(t, IsSupported("de"))
	assert.False(t, IsSupported(""))
}

func TestSupportedReturnsCopy(t *testing.T) {
	codes := Supported()
	codes[0] = "xx"
	assert.Equal(t, "en", Supported()[0])
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name           string
		acceptLanguage string
		want           string
	}{
		{"empty header defaults to english", "", "en"},
		{"exact code", "fr", "fr"},
		{"region variant", "fr-CA", "fr"},
		{"quality list", "th,en;q=0.8", "th"},
		{"unsupported falls back to english", "de-DE", "en"},
		{"garbage falls back to english", "not a language", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.acceptLanguage))
		})
	}
}

func TestTranslate(t *testing.T) {
	assert.Equal(t, "Basics", Translate("en", "createBot.steps.basics"))
	assert.Equal(t, "Langues", Translate("fr", "createBot.steps.languages"))
	assert.Equal(t, "Поиск", Translate("ru", "common.search"))
}

func TestTranslateFallsBackToEnglish(t *testing.T) {
	// unknown language code resolves against the english dictionary
	assert.Equal(t, "Search", Translate("de", "common.search"))
}

func TestTranslateUnknownKeyReturnsKey(t *testing.T) {
	assert.Equal(t, "no.such.key", Translate("en", "no.such.key"))
	assert.Equal(t, "no.such.key", Translate("fr", "no.such.key"))
}

func TestLanguageName(t *testing.T) {
	assert.Equal(t, "English", LanguageName("en", "en"))
	assert.Equal(t, "Anglais", LanguageName("fr", "en"))
	assert.Equal(t, "Français", LanguageName("fr", "fr"))
}

func TestEveryLocaleCoversStepLabels(t *testing.T) {
	steps := []string{"basics", "industry", "goals", "languages", "review"}
	for _, code := range Supported() {
		for _, step := range steps {
			key := "createBot.steps." + step
			assert.NotEqual(t, key, Translate(code, key), "locale %s missing %s", code, key)
		}
	}
}

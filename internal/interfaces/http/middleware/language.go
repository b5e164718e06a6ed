package middleware

import (
	"github.com/gin-gonic/gin"
	"ouibooking.backend/pkg/i18n"
)

// LanguageKey is the context key for the resolved interface language
const LanguageKey = "language"

// LanguageMiddleware resolves the interface language for the request. An
// explicit ?lang= wins over the Accept-Language header; anything
// unsupported falls back to English.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.Query("lang")
		if !i18n.IsSupported(lang) {
			lang = i18n.Match(c.GetHeader("Accept-Language"))
		}
		c.Set(LanguageKey, lang)
		c.Next()
	}
}

// GetLanguage gets the resolved language from context, defaulting to English
func GetLanguage(c *gin.Context) string {
	if lang, exists := c.Get(LanguageKey); exists {
		return lang.(string)
	}
	return i18n.DefaultLanguage
}

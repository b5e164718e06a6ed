package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "ouibooking.backend/internal/domain/errors"
	"ouibooking.backend/internal/domain/taxonomy"
	"ouibooking.backend/internal/interfaces/http/middleware"
	"ouibooking.backend/internal/interfaces/http/response"
	"ouibooking.backend/pkg/i18n"
)

// TaxonomyHandler serves the public industry catalogue and the supported
// interface languages.
type TaxonomyHandler struct{}

// NewTaxonomyHandler creates a new taxonomy handler
func NewTaxonomyHandler() *TaxonomyHandler {
	return &TaxonomyHandler{}
}

// ListCategories returns the industry categories in declaration order
// GET /api/v1/taxonomy/categories
func (h *TaxonomyHandler) ListCategories(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"categories": taxonomy.Categories()})
}

// ListIndustries returns the industry catalogue, optionally filtered by
// category and a case-insensitive search term.
// GET /api/v1/taxonomy/industries?category=&search=
func (h *TaxonomyHandler) ListIndustries(c *gin.Context) {
	category := taxonomy.Category(c.Query("category"))
	search := c.Query("search")

	var codes []taxonomy.Industry
	if category != "" {
		codes = taxonomy.IndustriesIn(category)
		if len(codes) == 0 {
			response.Error(c, domainerrors.BadRequest("Unknown category"))
			return
		}
	} else {
		codes = taxonomy.All()
	}

	matched := taxonomy.Search(search)
	matchSet := make(map[taxonomy.Industry]bool, len(matched))
	for _, code := range matched {
		matchSet[code] = true
	}

	type industryEntry struct {
		Code     taxonomy.Industry `json:"code"`
		Name     string            `json:"name"`
		Category taxonomy.Category `json:"category"`
	}
	industries := make([]industryEntry, 0, len(codes))
	for _, code := range codes {
		if !matchSet[code] {
			continue
		}
		name, err := taxonomy.NameOf(code)
		if err != nil {
			response.Error(c, err)
			return
		}
		cat, _ := taxonomy.CategoryOf(code)
		industries = append(industries, industryEntry{Code: code, Name: name, Category: cat})
	}

	response.Success(c, http.StatusOK, gin.H{
		"industries": industries,
		"total":      len(industries),
	})
}

// ListLanguages returns the supported interface languages with their names
// localized to the caller's language.
// GET /api/v1/taxonomy/languages
func (h *TaxonomyHandler) ListLanguages(c *gin.Context) {
	lang := middleware.GetLanguage(c)

	type languageEntry struct {
		Code string `json:"code"`
		Name string `json:"name"`
	}
	languages := make([]languageEntry, 0, len(i18n.Supported()))
	for _, code := range i18n.Supported() {
		languages = append(languages, languageEntry{
			Code: code,
			Name: i18n.LanguageName(lang, code),
		})
	}

	response.Success(c, http.StatusOK, gin.H{"languages": languages})
}

package services

import (
	"worqely/internal/i18n"
	"worqely/internal/models"
)

// Translator resolves interface strings for a language.
type Translator interface {
	T(lang, key string) string
	Direction(lang string) i18n.Direction
}

var serviceCategoryIDs = []string{"electrical", "plumbing", "construction", "painting", "cleaning", "cooking"}

var trustKeys = []string{"support", "verifiedWorkers", "instantMatching", "fairPricing", "qualityGuarantee", "secureAndSafe"}

var testimonialKeys = []struct {
	quote, author string
}{
	{"testimonial1", "customerTitle"},
	{"testimonial2", "electricianTitle"},
	{"testimonial3", "customerTitle"},
}

// ContentService builds the static informational content of the home page.
type ContentService struct {
	translator Translator
}

func NewContentService(translator Translator) *ContentService {
	return &ContentService{translator: translator}
}

func (s *ContentService) Home(lang string) models.HomeContent {
	t := func(key string) string { return s.translator.T(lang, key) }

	content := models.HomeContent{
		Language:    lang,
		Direction:   string(s.translator.Direction(lang)),
		Title:       t("connectWithSkilled"),
		Description: t("heroDescription"),
		Leadership: []models.Founder{
			{Role: "founder", Info: t("founderInfo")},
			{Role: "co-founder", Info: t("cofounderInfo")},
		},
	}

	for _, key := range trustKeys {
		content.TrustIndicators = append(content.TrustIndicators, t(key))
	}
	content.ServiceCategories = s.ServiceCategories(lang)
	for _, tk := range testimonialKeys {
		content.Testimonials = append(content.Testimonials, models.Testimonial{
			Quote:  t(tk.quote),
			Author: t(tk.author),
			Rating: 5,
		})
	}
	return content
}

func (s *ContentService) ServiceCategories(lang string) []models.ServiceCategory {
	categories := make([]models.ServiceCategory, 0, len(serviceCategoryIDs))
	for _, id := range serviceCategoryIDs {
		categories = append(categories, models.ServiceCategory{
			ID:          id,
			Name:        s.translator.T(lang, id),
			Description: s.translator.T(lang, id+"Desc"),
		})
	}
	return categories
}

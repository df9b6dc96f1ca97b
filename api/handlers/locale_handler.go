package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"worqely/internal/i18n"
	"worqely/internal/services"
)

type LocaleHandler struct {
	translator     *i18n.Translator
	contentService *services.ContentService
}

func NewLocaleHandler(translator *i18n.Translator, contentService *services.ContentService) *LocaleHandler {
	return &LocaleHandler{
		translator:     translator,
		contentService: contentService,
	}
}

// GET /api/locales
func (h *LocaleHandler) Languages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data":     h.translator.Languages(),
		"selected": currentLang(c, h.translator),
	})
}

// GET /api/locales/:lang
func (h *LocaleHandler) Dictionary(c *gin.Context) {
	lang := c.Param("lang")
	if !h.translator.Supported(lang) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Language not supported"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"language":  lang,
		"direction": h.translator.Direction(lang),
		"data":      h.translator.Dictionary(lang),
	})
}

// GET /api/translate/:key
func (h *LocaleHandler) Translate(c *gin.Context) {
	lang := currentLang(c, h.translator)
	key := c.Param("key")

	c.JSON(http.StatusOK, gin.H{
		"language": lang,
		"key":      key,
		"value":    h.translator.T(lang, key),
	})
}

// GET /api/content/home
func (h *LocaleHandler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": h.contentService.Home(currentLang(c, h.translator)),
	})
}

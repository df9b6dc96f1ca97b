package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worqely/internal/i18n"
)

func TestContentService_Home(t *testing.T) {
	tr, err := i18n.New(i18n.DefaultLanguage)
	require.NoError(t, err)
	s := NewContentService(tr)

	home := s.Home("hi")

	assert.Equal(t, "hi", home.Language)
	assert.Equal(t, "ltr", home.Direction)
	assert.Equal(t, "कुशल श्रमिकों से जुड़ें", home.Title)
	require.Len(t, home.ServiceCategories, 6)
	assert.Equal(t, "electrical", home.ServiceCategories[0].ID)
	assert.Equal(t, "इलेक्ट्रिकल", home.ServiceCategories[0].Name)
	require.Len(t, home.Testimonials, 3)
	assert.Equal(t, "इलेक्ट्रीशियन", home.Testimonials[1].Author)
	require.Len(t, home.Leadership, 2)
	assert.Contains(t, home.Leadership[0].Info, "ritiksharma8340031@gmail.com")
	assert.Len(t, home.TrustIndicators, 6)
}

func TestContentService_Home_PartialLanguage(t *testing.T) {
	tr, err := i18n.New(i18n.DefaultLanguage)
	require.NoError(t, err)
	s := NewContentService(tr)

	home := s.Home("ur")

	assert.Equal(t, "rtl", home.Direction)
	// Urdu carries the founder bios but not the service categories.
	assert.Contains(t, home.Leadership[0].Info, "بانی")
	assert.Equal(t, "Plumbing", home.ServiceCategories[1].Name)
}

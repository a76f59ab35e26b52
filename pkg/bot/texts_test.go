package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextLocalization(t *testing.T) {
	assert.NotEqual(t, text("ru", "welcome"), text("en", "welcome"))

	// operator texts exist in Russian only; other languages fall back
	assert.Equal(t, text("ru", "operator_help"), text("en", "operator_help"))

	// unknown languages fall back to Russian entirely
	assert.Equal(t, text("ru", "welcome"), text("de", "welcome"))
}

func TestTextCoversButtonLabelsInBothLanguages(t *testing.T) {
	for key := range messages["ru"] {
		assert.NotEmpty(t, text("ru", key), "ru key %q", key)
		assert.NotEmpty(t, text("en", key), "en key %q", key)
	}
}

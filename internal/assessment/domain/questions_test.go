package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_EveryCategoryHasTenQuestions(t *testing.T) {
	catalog := NewCatalog()
	for _, category := range Categories() {
		questions, err := catalog.Questions(category)
		require.NoError(t, err, "category %q", category)
		assert.Len(t, questions, QuestionCount)
	}
}

func TestCatalog_UnknownCategory(t *testing.T) {
	catalog := NewCatalog()
	_, err := catalog.Questions(Category("enterprise"))
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestCatalog_ReturnsCopy(t *testing.T) {
	catalog := NewCatalog()
	questions, err := catalog.Questions(CategoryStartup)
	require.NoError(t, err)

	questions[0] = "mutated"

	fresh, err := catalog.Questions(CategoryStartup)
	require.NoError(t, err)
	assert.Equal(t, "Do you have a clear business model?", fresh[0])
}

func TestParseCategory(t *testing.T) {
	for _, category := range Categories() {
		parsed, err := ParseCategory(string(category))
		require.NoError(t, err)
		assert.Equal(t, category, parsed)
	}

	_, err := ParseCategory("growth")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

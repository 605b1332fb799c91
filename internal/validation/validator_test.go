package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tjsl-project/tjslctl/internal/client/models"
)

func TestValidator_ValidPayload(t *testing.T) {
	v := New()
	err := v.Validate(models.NewsInput{Title: "Harvest program launched", Category: "tjsl", Content: "body"})
	assert.NoError(t, err)
}

func TestValidator_FieldMessagesUseJSONNames(t *testing.T) {
	v := New()
	err := v.Validate(models.NewsInput{})
	require.Error(t, err)

	verr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, "is required", verr.Fields["title"])
	assert.Equal(t, "is required", verr.Fields["category"])
	assert.Equal(t, "is required", verr.Fields["content"])
}

func TestValidator_RuleMessages(t *testing.T) {
	v := New()

	err := v.Validate(models.SiteSettingsInput{SiteName: "TJSL", Email: "not-an-email", InstagramURL: "nope"})
	require.Error(t, err)

	verr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, "must be a valid email address", verr.Fields["email"])
	assert.Equal(t, "must be a valid URL", verr.Fields["instagram_url"])
}

func TestValidator_OneOf(t *testing.T) {
	v := New()

	err := v.Validate(models.ProgramInput{
		Name: "Mangrove", Pillar: "unknown", Description: "d", Year: 2024, Status: "running",
	})
	require.Error(t, err)

	verr, ok := err.(*Error)
	require.True(t, ok)
	assert.Contains(t, verr.Fields["pillar"], "must be one of")
}

func TestError_StringIsStable(t *testing.T) {
	e := &Error{Fields: map[string]string{"b": "is required", "a": "is required"}}
	assert.Equal(t, "validation failed: a: is required, b: is required", e.Error())
}

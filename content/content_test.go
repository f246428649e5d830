package content

import (
	"testing"

	"entity-hub/internal/domain/works"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	require.NoError(t, Init("https://example.com/"))

	assert.Equal(t, "https://example.com", SiteURL)
	assert.Equal(t, works.Default().Len(), Catalog.Len())
	assert.Equal(t, "https://example.com#campaigne", Entity.ID)
	assert.Equal(t, "https://example.com", Facts.OfficialWebsite)
	require.NotNil(t, Projector.Text)
	assert.Equal(t, "plain", Projector.Text("<em>plain</em>"))
}

func TestInitWithRejectsMissingInputs(t *testing.T) {
	assert.Error(t, InitWith("https://example.com", nil))
	assert.Error(t, InitWith("  ", works.Default()))
}

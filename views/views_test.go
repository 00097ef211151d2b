package views

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngine_LoadsEmbeddedTemplates(t *testing.T) {
	engine := NewEngine(false)
	require.NoError(t, engine.Load())

	for _, name := range []string{
		"layouts/main",
		"layouts/error_layout",
		"errors/404",
		"errors/500",
		"invitation/show",
		"partials/rsvp_dialog",
		"partials/venue_card",
	} {
		assert.NotNil(t, engine.Templates.Lookup(name), name)
	}
}

func TestNewEngine_RenderErrorPage(t *testing.T) {
	engine := NewEngine(false)
	require.NoError(t, engine.Load())

	var buf bytes.Buffer
	err := engine.Render(&buf, "errors/404", map[string]any{
		"Title":   "Not Found",
		"Message": "nothing <here>",
	}, "layouts/error_layout")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "<title>Not Found</title>")
	assert.Contains(t, out, "nothing &lt;here&gt;")
}

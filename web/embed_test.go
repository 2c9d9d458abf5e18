package web

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatic(t *testing.T) {
	fsys := Static()

	index, err := fs.ReadFile(fsys, "index.html")
	require.NoError(t, err)
	assert.Contains(t, string(index), `id="word-list"`)
	assert.Contains(t, string(index), `id="word-card-template"`)

	for _, role := range []string{"speak-word", "word-pron", "meaning", "memory", "toggle-example", "example", "example-jp", "example-pron", "audio-button"} {
		assert.Contains(t, string(index), `data-role="`+role+`"`, role)
	}

	_, err = fs.Stat(fsys, "style.css")
	assert.NoError(t, err)
	_, err = fs.Stat(fsys, "app.js")
	assert.NoError(t, err)
}

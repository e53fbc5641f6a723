package structure

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTree(t *testing.T) {
	m := NewMap()
	m.Set(RootPath, []string{"README"})
	m.Set("src/pkg", []string{"mod.py"})
	m.Set(".git", nil)

	var buf bytes.Buffer
	require.NoError(t, RenderTree(&buf, m, "proj"))

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, "proj", lines[0])
	for _, want := range []string{"README", "src/", "pkg/", "mod.py", ".git/"} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "src/"), strings.Index(out, "pkg/"))
	assert.Less(t, strings.Index(out, "pkg/"), strings.Index(out, "mod.py"))
}

func TestRenderTreeEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderTree(&buf, NewMap(), "empty"))
	assert.Equal(t, "empty", strings.TrimSpace(buf.String()))
}

package textfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "document.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestName(t *testing.T) {
	assert.Equal(t, "textfile", New().Name())
}

func TestPages_WholeFileIsOnePage(t *testing.T) {
	path := writeTestFile(t, "نص المستند كاملًا في صفحة واحدة.")

	pages, err := New().Pages(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, "نص المستند كاملًا في صفحة واحدة.", pages[0])
}

func TestPages_FormFeedSplitsPages(t *testing.T) {
	path := writeTestFile(t, "الصفحة الأولى\fالصفحة الثانية\fالصفحة الثالثة")

	pages, err := New().Pages(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, pages, 3)
	assert.Equal(t, "الصفحة الثانية", pages[1])
}

func TestPages_MissingFile(t *testing.T) {
	pages, err := New().Pages(context.Background(), "/nonexistent/document.txt")
	assert.Error(t, err)
	assert.Nil(t, pages)
}

package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFonts(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, n := range names {
		p := filepath.Join(dir, n)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("font"), 0o644))
	}
	return dir
}

func TestResolve(t *testing.T) {
	dir := writeFonts(t,
		"Inter/Inter-Bold.ttf",
		"Inter/Inter-Regular.ttf",
		"Google_Sans_Code/GoogleSansCode-Medium.otf",
		"notes.txt",
	)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"family prefers regular", "Inter", "Inter/Inter-Regular.ttf"},
		{"loose spelling", "google sans", "Google_Sans_Code/GoogleSansCode-Medium.otf"},
		{"file name with extension", "Inter-Bold.ttf", "Inter/Inter-Bold.ttf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.in, dir)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, tt.want), got)
		})
	}
}

func TestResolveExistingPath(t *testing.T) {
	dir := writeFonts(t, "a.ttf")
	p := filepath.Join(dir, "a.ttf")

	got, err := Resolve(p, "does-not-exist")
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestResolveMissing(t *testing.T) {
	dir := writeFonts(t, "notes.txt")

	_, err := Resolve("Inter", dir, filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = Resolve("  ", dir)
	assert.ErrorIs(t, err, ErrNotFound)
}

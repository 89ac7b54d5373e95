package sources

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/orgball2608/freecycle-offer-bot/internal/domain"
	"github.com/orgball2608/freecycle-offer-bot/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadLines(t *testing.T) {
	path := writeFile(t, "groups.txt", "https://a.example/group\r\n\n# disabled\n  https://b.example/group  \n")

	lines, err := LoadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example/group", "  https://b.example/group  "}, lines)
}

func TestLoadMergesFilesAndInline(t *testing.T) {
	p := config.Parser{
		Boards:       []string{"https://b.example/group", "https://a.example/group"},
		BoardsFile:   writeFile(t, "groups.txt", "  https://a.example/group\n"),
		KeywordsFile: writeFile(t, "keywords.txt", "drill\r\n bed \n   \n"),
		Keywords:     []string{"ladder", " bike ", ""},
	}

	src, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, []domain.Board{{URL: "https://a.example/group"}, {URL: "https://b.example/group"}}, src.Boards)
	assert.Equal(t, []string{"drill", " bed ", "ladder", " bike "}, src.Keywords)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(config.Parser{BoardsFile: filepath.Join(t.TempDir(), "nope.txt")})
	require.Error(t, err)
}

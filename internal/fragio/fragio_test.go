package fragio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kmerasm/internal/fragio"
)

func TestParse_Plain(t *testing.T) {
	rs, err := fragio.Parse([]byte("# 3-mers\nata\n\n  ACC \nATG\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"ATA", "ACC", "ATG"}, rs.Fragments())
	assert.Equal(t, "line 2", rs[0].Name)
	assert.Equal(t, 4, rs[1].Line)
}

func TestParse_Fasta(t *testing.T) {
	in := ">read one\nACCAT\nggcat\n>read two\nTTTCA\n"
	rs, err := fragio.Parse([]byte(in))
	require.NoError(t, err)
	require.Len(t, rs, 2)
	assert.Equal(t, fragio.Record{Name: "read one", Seq: "ACCATGGCAT", Line: 1}, rs[0])
	assert.Equal(t, "TTTCA", rs[1].Seq)
	assert.Equal(t, "ACCATGGCATTTTCA", rs.Sequence())
}

func TestParse_NoTrailingNewline(t *testing.T) {
	rs, err := fragio.Parse([]byte(">s\nCAAT\nCATG"))
	require.NoError(t, err)
	assert.Equal(t, "CAATCATG", rs.Sequence())
}

func TestParse_Errors(t *testing.T) {
	_, err := fragio.Parse(nil)
	assert.ErrorIs(t, err, fragio.ErrEmptyInput)

	_, err = fragio.Parse([]byte("# only a comment\n\n"))
	assert.ErrorIs(t, err, fragio.ErrEmptyInput)

	_, err = fragio.Parse([]byte("ACG\nAXG\n"))
	assert.ErrorIs(t, err, fragio.ErrBadSymbol)
	assert.ErrorContains(t, err, "line 2, column 2")

	_, err = fragio.Parse([]byte(">empty\n>full\nACG\n"))
	assert.ErrorIs(t, err, fragio.ErrEmptyRecord)
	assert.ErrorContains(t, err, `"empty"`)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frags.fa")
	require.NoError(t, os.WriteFile(path, []byte(">a\nATA\n>b\nACC\n"), 0o600))

	rs, err := fragio.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"ATA", "ACC"}, rs.Fragments())
}

func TestReadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := fragio.ReadFile(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))
	_, err = fragio.ReadFile(empty)
	assert.ErrorIs(t, err, fragio.ErrEmptyInput)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("ACGU\n"), 0o600))
	_, err = fragio.ReadFile(bad)
	assert.ErrorIs(t, err, fragio.ErrBadSymbol)
	assert.ErrorContains(t, err, "bad.txt")
}

package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kentwait/fastrust/config"
	"github.com/kentwait/fastrust/fasta"
	"github.com/kentwait/fastrust/fields"
)

const testInput = ">a first\nACGTAC\nGT\n>b\nTTTT\n"

func setup(t *testing.T) (*log.Logger, string, string) {
	t.Helper()
	dir := t.TempDir()
	in := filepath.Join(dir, "in.fasta")
	require.NoError(t, os.WriteFile(in, []byte(testInput), 0666))
	return log.New(io.Discard), dir, in
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	bs, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(bs)
}

func TestWrap(t *testing.T) {
	logger, dir, in := setup(t)
	out := filepath.Join(dir, "out.fasta")
	cfg := config.Default()
	cfg.LineWidth = 3

	require.NoError(t, run(logger, cfg, []string{"wrap", in, out}))
	assert.Equal(t, ">a first\nACG\nTAC\nGT\n>b\nTTT\nT", readFile(t, out))

	cfg.LineWidth = fasta.Unwrapped
	require.NoError(t, run(logger, cfg, []string{"wrap", in, out}))
	assert.Equal(t, ">a first\nACGTACGT\n>b\nTTTT", readFile(t, out))
}

func TestWrapInvalidWidth(t *testing.T) {
	logger, dir, in := setup(t)
	out := filepath.Join(dir, "out.fasta")
	cfg := config.Default()
	cfg.LineWidth = -2

	err := run(logger, cfg, []string{"wrap", in, out})
	assert.True(t, errors.Is(err, fasta.ErrInvalidWidth))
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestExportImport(t *testing.T) {
	for _, format := range []string{"json", "msgpack"} {
		logger, dir, in := setup(t)
		recs := filepath.Join(dir, "records."+format)
		out := filepath.Join(dir, "out.fasta")
		cfg := config.Default()
		cfg.Format = format
		cfg.LineWidth = fasta.Unwrapped

		require.NoError(t, run(logger, cfg, []string{"export", in, recs}))
		require.NoError(t, run(logger, cfg, []string{"import", recs, out}))

		want, err := fasta.ReadFile(in)
		require.NoError(t, err)
		got, err := fasta.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, want, got, format)
	}
}

func TestImportMissingField(t *testing.T) {
	logger, dir, _ := setup(t)
	in := filepath.Join(dir, "records.json")
	require.NoError(t, os.WriteFile(in,
		[]byte(`[{"seq_id": "a", "description": "x"}]`), 0666))

	err := run(logger, config.Default(),
		[]string{"import", in, filepath.Join(dir, "out.fasta")})
	var merr *fields.MissingFieldError
	require.True(t, errors.As(err, &merr))
	assert.Equal(t, fields.KeySequence, merr.Field)
}

func TestCount(t *testing.T) {
	logger, _, in := setup(t)
	buf := new(bytes.Buffer)
	require.NoError(t, countFile(logger, buf, in))
	assert.Equal(t, "2\n", buf.String())
}

func TestRunErrors(t *testing.T) {
	logger, dir, in := setup(t)
	cfg := config.Default()

	assert.Error(t, run(logger, cfg, []string{"wrap", in}))
	assert.Error(t, run(logger, cfg, []string{"count", in, in}))
	assert.Error(t, run(logger, cfg, []string{"frobnicate", in, in}))

	err := run(logger, cfg, []string{"count", filepath.Join(dir, "absent")})
	var ferr *fasta.FileError
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, "open", ferr.Op)
}

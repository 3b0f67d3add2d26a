package storage

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticFS_Embed(t *testing.T) {
	embedded := fstest.MapFS{
		"static/css/app.css": &fstest.MapFile{Data: []byte("body{}")},
	}

	fsys, err := StaticFS(ModeEmbed, embedded, "")
	require.NoError(t, err)

	data, err := fs.ReadFile(fsys, "css/app.css")
	require.NoError(t, err)
	assert.Equal(t, "body{}", string(data))
}

func TestStaticFS_Disk(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "css"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "css", "app.css"), []byte("h1{}"), 0o644))

	fsys, err := StaticFS(ModeDisk, nil, dir)
	require.NoError(t, err)

	data, err := fs.ReadFile(fsys, "css/app.css")
	require.NoError(t, err)
	assert.Equal(t, "h1{}", string(data))
}

func TestStaticFS_UnknownMode(t *testing.T) {
	_, err := StaticFS("s3", nil, "")
	assert.ErrorContains(t, err, `unknown static mode "s3"`)
}

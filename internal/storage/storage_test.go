package storage

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestSniffImage_PNG(t *testing.T) {
	data := pngBytes(t)

	r, format, err := SniffImage(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, "image/png", ContentType(format))

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestSniffImage_RejectsText(t *testing.T) {
	_, _, err := SniffImage(strings.NewReader("não sou uma imagem"))
	assert.ErrorIs(t, err, ErrNotImage)
}

func TestDiskStore_SaveOpenRemove(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "uploads")
	s := NewDiskStore(dir)

	require.NoError(t, s.Prepare(ctx))
	require.NoError(t, s.Save(ctx, "medico-1.png", strings.NewReader("v1"), "image/png"))
	require.NoError(t, s.Save(ctx, "medico-1.png", strings.NewReader("v2"), "image/png"))

	rc, err := s.Open(ctx, "medico-1.png")
	require.NoError(t, err)
	got, _ := io.ReadAll(rc)
	rc.Close()
	assert.Equal(t, "v2", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	require.NoError(t, s.Remove(ctx, "medico-1.png"))
	require.NoError(t, s.Remove(ctx, "medico-1.png"))

	_, err = s.Open(ctx, "medico-1.png")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDiskStore_RejectsPathTraversal(t *testing.T) {
	s := NewDiskStore(t.TempDir())

	err := s.Save(context.Background(), "../fora.png", strings.NewReader("x"), "")
	assert.Error(t, err)
}

package profile

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/consultorio/internal/httperr"
	"github.com/BruksfildServices01/consultorio/internal/infra/repository"
	"github.com/BruksfildServices01/consultorio/internal/testutil"
)

func pngData(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 1, 1))))
	return buf.Bytes()
}

func jpegData(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, image.NewGray(image.Rect(0, 0, 1, 1)), nil))
	return buf.Bytes()
}

func TestUploadPhoto(t *testing.T) {
	ctx := context.Background()
	data := pngData(t)

	setup := func(t *testing.T) (*UploadPhoto, *testutil.Photos, *repository.PhysicianGormRepository, uint) {
		db := testutil.NewDB(t)
		doc := testutil.CreatePhysician(t, db, "a@x.com", "12345678", "hash")
		repo := repository.NewPhysicianGormRepository(db)
		store := testutil.NewPhotos()
		return NewUploadPhoto(repo, store, 1<<20, nil, zerolog.Nop()), store, repo, doc.ID
	}

	t.Run("stores as medico-id with the extension of the content", func(t *testing.T) {
		uc, store, repo, id := setup(t)

		doc, err := uc.Execute(ctx, id, PhotoInput{Filename: "Minha.Foto.PNG", Size: int64(len(data)), Content: bytes.NewReader(data)})
		require.NoError(t, err)

		name := PhotoFileName(id, ".png")
		assert.Equal(t, name, doc.PhotoFile)
		assert.Equal(t, data, store.Files[name])
		assert.Equal(t, "image/png", store.Types[name])

		saved, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, name, saved.PhotoFile)
	})

	t.Run("client extension never reaches the stored name", func(t *testing.T) {
		uc, store, _, id := setup(t)

		payload := append(append([]byte{}, data...), []byte("<script>alert(1)</script>")...)
		doc, err := uc.Execute(ctx, id, PhotoInput{Filename: "x.html", Size: int64(len(payload)), Content: bytes.NewReader(payload)})
		require.NoError(t, err)

		assert.Equal(t, PhotoFileName(id, ".png"), doc.PhotoFile)
		assert.NotContains(t, store.Files, PhotoFileName(id, ".html"))

		jpg := jpegData(t)
		doc, err = uc.Execute(ctx, id, PhotoInput{Filename: "foto.png", Size: int64(len(jpg)), Content: bytes.NewReader(jpg)})
		require.NoError(t, err)
		assert.Equal(t, PhotoFileName(id, ".jpg"), doc.PhotoFile)
	})

	t.Run("previous photo with another extension is removed", func(t *testing.T) {
		uc, store, _, id := setup(t)
		jpg := jpegData(t)

		_, err := uc.Execute(ctx, id, PhotoInput{Filename: "a.jpg", Size: int64(len(jpg)), Content: bytes.NewReader(jpg)})
		require.NoError(t, err)
		require.Contains(t, store.Files, PhotoFileName(id, ".jpg"))

		_, err = uc.Execute(ctx, id, PhotoInput{Filename: "a.png", Size: int64(len(data)), Content: bytes.NewReader(data)})
		require.NoError(t, err)

		assert.NotContains(t, store.Files, PhotoFileName(id, ".jpg"))
		assert.Contains(t, store.Files, PhotoFileName(id, ".png"))
	})

	t.Run("invalid names", func(t *testing.T) {
		uc, _, _, id := setup(t)

		for _, name := range []string{"", "   ", "semextensao", "foto.", "foto.p/g"} {
			_, err := uc.Execute(ctx, id, PhotoInput{Filename: name, Size: int64(len(data)), Content: bytes.NewReader(data)})
			assert.True(t, httperr.IsBusiness(err, "invalid_file_name"), name)
		}
	})

	t.Run("not an image or too large", func(t *testing.T) {
		uc, _, _, id := setup(t)

		_, err := uc.Execute(ctx, id, PhotoInput{Filename: "a.png", Size: 5, Content: strings.NewReader("texto")})
		assert.True(t, httperr.IsBusiness(err, "invalid_image"))

		_, err = uc.Execute(ctx, id, PhotoInput{Filename: "a.png", Size: 2 << 20, Content: bytes.NewReader(data)})
		assert.True(t, httperr.IsBusiness(err, "invalid_image"))
	})

	t.Run("store failures keep the physician unchanged", func(t *testing.T) {
		uc, store, repo, id := setup(t)

		store.PrepareErr = errors.New("read-only fs")
		_, err := uc.Execute(ctx, id, PhotoInput{Filename: "a.png", Size: int64(len(data)), Content: bytes.NewReader(data)})
		assert.True(t, httperr.IsBusiness(err, "upload_dir_failed"))

		store.PrepareErr = nil
		store.SaveErr = errors.New("disk full")
		_, err = uc.Execute(ctx, id, PhotoInput{Filename: "a.png", Size: int64(len(data)), Content: bytes.NewReader(data)})
		assert.True(t, httperr.IsBusiness(err, "photo_save_failed"))

		saved, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Empty(t, saved.PhotoFile)
	})
}

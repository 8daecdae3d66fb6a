package profile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/consultorio/internal/audit"
	"github.com/BruksfildServices01/consultorio/internal/domain/physician"
	"github.com/BruksfildServices01/consultorio/internal/httperr"
	"github.com/BruksfildServices01/consultorio/internal/models"
	"github.com/BruksfildServices01/consultorio/internal/storage"
)

// ======================================================
// INPUT
// ======================================================

type PhotoInput struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// ======================================================
// USE CASE
// ======================================================

type UploadPhoto struct {
	repo     physician.Repository
	store    storage.PhotoStore
	maxBytes int64
	audit    *audit.Dispatcher
	log      zerolog.Logger
}

func NewUploadPhoto(
	repo physician.Repository,
	store storage.PhotoStore,
	maxBytes int64,
	audit *audit.Dispatcher,
	log zerolog.Logger,
) *UploadPhoto {
	return &UploadPhoto{
		repo:     repo,
		store:    store,
		maxBytes: maxBytes,
		audit:    audit,
		log:      log,
	}
}

// PhotoFileName é o nome guardado: medico-<id><ext>.
func PhotoFileName(physicianID uint, ext string) string {
	return fmt.Sprintf("medico-%d%s", physicianID, ext)
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UploadPhoto) Execute(
	ctx context.Context,
	physicianID uint,
	in PhotoInput,
) (*models.Physician, error) {

	doc, err := uc.repo.FindByID(ctx, physicianID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 1️⃣ Destino pronto
	// --------------------------------------------------
	if err := uc.store.Prepare(ctx); err != nil {
		uc.log.Error().Err(err).Uint("physician_id", physicianID).Msg("upload dir not ready")
		return nil, httperr.ErrBusiness("upload_dir_failed")
	}

	// --------------------------------------------------
	// 2️⃣ Nome e extensão
	// --------------------------------------------------
	if _, ok := extension(in.Filename); !ok {
		return nil, httperr.ErrBusiness("invalid_file_name")
	}

	// --------------------------------------------------
	// 3️⃣ Tamanho e conteúdo de imagem
	// --------------------------------------------------
	if uc.maxBytes > 0 && in.Size > uc.maxBytes {
		return nil, httperr.ErrBusiness("invalid_image")
	}

	content := in.Content
	if uc.maxBytes > 0 {
		content = io.LimitReader(content, uc.maxBytes)
	}

	content, format, err := storage.SniffImage(content)
	if errors.Is(err, storage.ErrNotImage) {
		return nil, httperr.ErrBusiness("invalid_image")
	}
	if err != nil {
		uc.log.Error().Err(err).Uint("physician_id", physicianID).Msg("read upload")
		return nil, httperr.ErrBusiness("photo_save_failed")
	}

	// a extensão gravada vem do conteúdo, não do nome enviado
	ext := storage.Extension(format)
	if ext == "" {
		return nil, httperr.ErrBusiness("invalid_image")
	}

	// --------------------------------------------------
	// 4️⃣ Gravação + cadastro
	// --------------------------------------------------
	name := PhotoFileName(physicianID, ext)

	if err := uc.store.Save(ctx, name, content, storage.ContentType(format)); err != nil {
		uc.log.Error().Err(err).Uint("physician_id", physicianID).Msg("save photo")
		return nil, httperr.ErrBusiness("photo_save_failed")
	}

	if err := uc.repo.UpdatePhoto(ctx, physicianID, name); err != nil {
		uc.log.Error().Err(err).Uint("physician_id", physicianID).Msg("update photo")
		return nil, httperr.ErrBusiness("photo_save_failed")
	}

	previous := doc.PhotoFile
	doc.PhotoFile = name

	// --------------------------------------------------
	// 5️⃣ Foto antiga com outra extensão
	// --------------------------------------------------
	if previous != "" && previous != name {
		if err := uc.store.Remove(ctx, previous); err != nil {
			uc.log.Warn().Err(err).Uint("physician_id", physicianID).Str("file", previous).Msg("remove old photo")
		}
	}

	uc.audit.Dispatch(audit.Event{
		PhysicianID: audit.Uint(physicianID),
		Action:      audit.ActionPhotoUpdated,
		Entity:      "physician",
		EntityID:    audit.Uint(physicianID),
		Metadata:    map[string]string{"file": name},
	})

	return doc, nil
}

// extension devolve a extensão em minúsculas, com o ponto.
func extension(filename string) (string, bool) {
	name := strings.TrimSpace(filepath.Base(strings.ReplaceAll(filename, "\\", "/")))
	if name == "" || name == "." || name == "/" {
		return "", false
	}

	i := strings.LastIndex(name, ".")
	if i < 0 || i == len(name)-1 {
		return "", false
	}

	ext := strings.ToLower(name[i:])
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return "", false
		}
	}
	return ext, true
}

package storage

import (
	"bufio"
	"bytes"
	"errors"
	"image"
	"io"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

var ErrNotImage = errors.New("content is not a supported image")

const sniffLen = 64 << 10

// SniffImage confere o cabeçalho da imagem (jpeg, png, gif, webp) e devolve
// um reader que ainda entrega o conteúdo completo, junto com o formato.
func SniffImage(r io.Reader) (io.Reader, string, error) {
	br := bufio.NewReaderSize(r, sniffLen)

	head, err := br.Peek(sniffLen)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, "", err
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(head))
	if err != nil {
		return nil, "", ErrNotImage
	}
	return br, format, nil
}

// Extension devolve a extensão gravada para o formato detectado. O nome
// enviado pelo cliente nunca decide como o arquivo será servido.
func Extension(format string) string {
	switch format {
	case "jpeg":
		return ".jpg"
	case "png":
		return ".png"
	case "gif":
		return ".gif"
	case "webp":
		return ".webp"
	}
	return ""
}

// ContentTypeByName só reconhece as extensões de imagem aceitas; o resto
// vira application/octet-stream.
func ContentTypeByName(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg":
		return ContentType("jpeg")
	case ".png":
		return ContentType("png")
	case ".gif":
		return ContentType("gif")
	case ".webp":
		return ContentType("webp")
	}
	return ContentType("")
}

func ContentType(format string) string {
	switch format {
	case "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	}
	return "application/octet-stream"
}

package testutil

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"

	"github.com/BruksfildServices01/consultorio/internal/storage"
)

// SeqCodes devolve os códigos na ordem informada.
type SeqCodes struct {
	mu          sync.Mutex
	LoginCodes  []string
	ResetTokens []string
}

func (s *SeqCodes) LoginCode() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.LoginCodes) == 0 {
		return "", errors.New("no login codes left")
	}
	c := s.LoginCodes[0]
	s.LoginCodes = s.LoginCodes[1:]
	return c, nil
}

func (s *SeqCodes) ResetToken() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.ResetTokens) == 0 {
		return "", errors.New("no reset tokens left")
	}
	c := s.ResetTokens[0]
	s.ResetTokens = s.ResetTokens[1:]
	return c, nil
}

type SentCode struct {
	Kind  string // "login" ou "reset"
	Email string
	Code  string
}

// Notifier grava os envios; com Fail preenchido, todo envio falha.
type Notifier struct {
	mu   sync.Mutex
	Sent []SentCode
	Fail error
}

func (n *Notifier) SendLoginCode(_ context.Context, email, code string) error {
	return n.record("login", email, code)
}

func (n *Notifier) SendResetCode(_ context.Context, email, code string) error {
	return n.record("reset", email, code)
}

func (n *Notifier) record(kind, email, code string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.Fail != nil {
		return n.Fail
	}
	n.Sent = append(n.Sent, SentCode{Kind: kind, Email: email, Code: code})
	return nil
}

func (n *Notifier) Last() (SentCode, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if len(n.Sent) == 0 {
		return SentCode{}, false
	}
	return n.Sent[len(n.Sent)-1], true
}

// Photos é um storage.PhotoStore em memória.
type Photos struct {
	mu         sync.Mutex
	Files      map[string][]byte
	Types      map[string]string
	Opened     []string
	PrepareErr error
	SaveErr    error
}

var _ storage.PhotoStore = (*Photos)(nil)

func NewPhotos() *Photos {
	return &Photos{Files: map[string][]byte{}, Types: map[string]string{}}
}

func (p *Photos) Prepare(context.Context) error { return p.PrepareErr }

func (p *Photos) Save(_ context.Context, name string, r io.Reader, contentType string) error {
	if p.SaveErr != nil {
		return p.SaveErr
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.Files[name] = b
	p.Types[name] = contentType
	return nil
}

func (p *Photos) Open(_ context.Context, name string) (io.ReadCloser, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.Opened = append(p.Opened, name)
	b, ok := p.Files[name]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func (p *Photos) Remove(_ context.Context, name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.Files, name)
	delete(p.Types, name)
	return nil
}

package web

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates_AllViewsDefined(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	for _, view := range []string{
		"login", "registro", "esqueceu-senha", "codigo-verificacao",
		"nova-senha", "home", "pacientes", "configuracoes",
	} {
		assert.NotNil(t, tmpl.Lookup(view), view)
	}
}

func TestTemplates_LoginShowsError(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "login", map[string]any{"erro": "Código inválido"}))
	assert.Contains(t, buf.String(), "Código inválido")
}

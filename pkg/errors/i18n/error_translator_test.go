package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAndTranslate(t *testing.T) {
	t.Cleanup(func() { _ = Load(DefaultLocale) })

	require.NoError(t, Load("tr"))
	assert.Equal(t, "Dosya kaldırılamadı", T("cannot_remove"))

	require.NoError(t, Load("en"))
	assert.Equal(t, "Could not remove file", T("cannot_remove"))
	assert.Equal(t, "no_such_code", T("no_such_code"))
}

func TestLoadUnknownLocale(t *testing.T) {
	assert.Error(t, Load("xx"))
}

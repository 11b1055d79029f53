package relay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defaultTarget = "http://localhost:3001/auth/callback"

func TestNewTarget(t *testing.T) {
	tg, err := NewTarget(defaultTarget)
	require.NoError(t, err)
	assert.Equal(t, defaultTarget, tg.String())

	for _, bad := range []string{"", "/auth/callback", "localhost:3001", "http://[::1"} {
		_, err := NewTarget(bad)
		assert.Error(t, err, "target %q", bad)
	}
}

func TestTarget_URL(t *testing.T) {
	tg := MustTarget(defaultTarget)

	assert.Equal(t, defaultTarget, tg.URL(nil))
	assert.Equal(t, defaultTarget, tg.URL(NewParams()))
	assert.Equal(t,
		defaultTarget+"?code=abc&state=a+b&realmId=1",
		tg.URL(ParamsOf("code", "abc", "state", "a b", "realmId", "1")),
	)
}

func TestTarget_ComponentURL(t *testing.T) {
	tg := MustTarget(defaultTarget)
	got := tg.ComponentURL(ParamsOf("code", "abc123", "state", "xyz", "realmId", "999"))
	assert.Equal(t, "http://localhost:3001/auth/callback?code=abc123&state=xyz&realmId=999", got)

	got = tg.ComponentURL(ParamsOf("code", "a b", "state", "", "realmId", ""))
	assert.Equal(t, "http://localhost:3001/auth/callback?code=a%20b&state=&realmId=", got)
}

func TestTarget_KeepsConfiguredQuery(t *testing.T) {
	tg := MustTarget("https://app.example.com/cb?src=qb#frag")
	assert.Equal(t, "https://app.example.com/cb?src=qb", tg.String())
	assert.Equal(t, "https://app.example.com/cb?src=qb&code=x", tg.URL(ParamsOf("code", "x")))

	// un parámetro reenviado con la misma clave pisa al configurado
	assert.Equal(t, "https://app.example.com/cb?src=other", tg.URL(ParamsOf("src", "other")))
}

func TestMustTarget_Panics(t *testing.T) {
	assert.Panics(t, func() { MustTarget("not a url") })
}

package relay

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct{ route, outcome string }

type fakeRecorder struct{ calls []recorded }

func (f *fakeRecorder) RecordCallback(route, outcome string) {
	f.calls = append(f.calls, recorded{route, outcome})
}

func newTestService(t *testing.T) (RelayService, *fakeRecorder) {
	t.Helper()
	rec := &fakeRecorder{}
	return NewRelayService(Deps{Target: MustTarget(defaultTarget), Recorder: rec}), rec
}

func TestCallback_ProviderErrorWins(t *testing.T) {
	svc, rec := newTestService(t)

	_, err := svc.Callback(context.Background(), ParamsOf(
		"code", "abc", "error", "access_denied", "error_description", "User denied",
	))

	var perr *ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "access_denied", perr.Code)
	assert.Equal(t, "User denied", perr.Description)
	assert.Equal(t, []recorded{{RouteCallbackGET, OutcomeProviderError}}, rec.calls)
}

func TestCallback_MissingCode(t *testing.T) {
	svc, _ := newTestService(t)

	for _, p := range []*Params{
		NewParams(),
		ParamsOf("state", "s", "realmId", "1"),
		ParamsOf("code", "", "error", ""),
	} {
		_, err := svc.Callback(context.Background(), p)
		assert.ErrorIs(t, err, ErrMissingCode)
	}
}

func TestCallback_ForwardsOnlyPresentParams(t *testing.T) {
	svc, rec := newTestService(t)

	cases := []struct {
		name string
		in   *Params
		want string
	}{
		{"code only", ParamsOf("code", "abc"), defaultTarget + "?code=abc"},
		{"all", ParamsOf("realmId", "999", "state", "xyz", "code", "abc"), defaultTarget + "?code=abc&state=xyz&realmId=999"},
		{"empty state dropped", ParamsOf("code", "abc", "state", "", "realmId", "9"), defaultTarget + "?code=abc&realmId=9"},
		{"extra keys ignored", ParamsOf("code", "abc", "foo", "bar"), defaultTarget + "?code=abc"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.Callback(context.Background(), tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			u, err := url.Parse(got)
			require.NoError(t, err)
			assert.Equal(t, tc.in.Get("code"), u.Query().Get("code"))
		})
	}
	assert.Len(t, rec.calls, len(cases))
	assert.Equal(t, OutcomeRedirected, rec.calls[0].outcome)
}

func TestRedirect(t *testing.T) {
	svc, rec := newTestService(t)

	resp, err := svc.Redirect(context.Background(), ParamsOf("code", "abc123", "state", "xyz", "realmId", "999"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3001/auth/callback?code=abc123&state=xyz&realmId=999", resp.RedirectURL)
	assert.Equal(t, "Parameters ready for redirect", resp.Message)
	assert.Equal(t, "abc123", resp.Parameters.Code)
	require.NotNil(t, resp.Parameters.RealmID)
	assert.Equal(t, "999", *resp.Parameters.RealmID)

	resp, err = svc.Redirect(context.Background(), ParamsOf("code", "abc123"))
	require.NoError(t, err)
	assert.Equal(t, defaultTarget+"?code=abc123&state=&realmId=", resp.RedirectURL)
	assert.Nil(t, resp.Parameters.State)
	assert.Nil(t, resp.Parameters.RealmID)

	// vacío pero presente: se informa como ""
	resp, err = svc.Redirect(context.Background(), ParamsOf("code", "abc123", "state", ""))
	require.NoError(t, err)
	require.NotNil(t, resp.Parameters.State)
	assert.Equal(t, "", *resp.Parameters.State)
	assert.Nil(t, resp.Parameters.RealmID)

	_, err = svc.Redirect(context.Background(), ParamsOf("state", "xyz"))
	assert.ErrorIs(t, err, ErrMissingParameters)

	assert.Equal(t, []recorded{
		{RouteRedirect, OutcomeReported},
		{RouteRedirect, OutcomeReported},
		{RouteRedirect, OutcomeReported},
		{RouteRedirect, OutcomeMissingParameters},
	}, rec.calls)
}

func TestForward(t *testing.T) {
	svc, _ := newTestService(t)

	got := svc.Forward(context.Background(), ParamsOf("code", "a", "foo", "b", "empty", ""))
	assert.Equal(t, defaultTarget+"?code=a&foo=b", got)

	// sin parámetros => target pelado
	assert.Equal(t, defaultTarget, svc.Forward(context.Background(), NewParams()))

	// no valida error/code
	got = svc.Forward(context.Background(), ParamsOf("error", "access_denied"))
	assert.Equal(t, defaultTarget+"?error=access_denied", got)
}

func TestNewRelayService_RequiresTarget(t *testing.T) {
	assert.Panics(t, func() { NewRelayService(Deps{}) })

	svc := NewRelayService(Deps{Target: MustTarget(defaultTarget)})
	assert.Equal(t, defaultTarget, svc.Target())
	// sin recorder no explota
	_, err := svc.Callback(context.Background(), ParamsOf("code", "x"))
	assert.NoError(t, err)
}

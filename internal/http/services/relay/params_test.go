package relay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams_SetKeepsPosition(t *testing.T) {
	var p Params // zero value usable
	p.Set("code", "a")
	p.Set("state", "s")
	p.Set("code", "b")

	assert.Equal(t, []string{"code", "state"}, p.Keys())
	assert.Equal(t, "b", p.Get("code"))
	assert.Equal(t, 2, p.Len())
	assert.False(t, p.Has("realmId"))
}

func TestParams_MergeQueryWins(t *testing.T) {
	body := ParamsOf("code", "from-body", "foo", "b")
	query := ParamsOf("realmId", "9", "code", "from-query")

	merged := NewParams().Merge(body).Merge(query)

	assert.Equal(t, []string{"code", "foo", "realmId"}, merged.Keys())
	assert.Equal(t, "from-query", merged.Get("code"))
	// los originales no se tocan
	assert.Equal(t, "from-body", body.Get("code"))
}

func TestParams_MergeFalsyQueryClearsBodyValue(t *testing.T) {
	merged := ParamsOf("code", "a", "state", "s").Merge(ParamsOf("state", ""))
	assert.Equal(t, []string{"code"}, merged.Truthy().Keys())
}

func TestParams_Encode(t *testing.T) {
	p := ParamsOf("code", "a b&c", "state", "x/y", "realmId", "")

	assert.Equal(t, "code=a+b%26c&state=x%2Fy&realmId=", p.Encode())
	assert.Equal(t, "code=a%20b%26c&state=x%2Fy&realmId=", p.EncodeComponent())
	// mismos caracteres que encodeURIComponent deja sin escapar
	assert.Equal(t, "code=a!b*(c)'~-_.", ParamsOf("code", "a!b*(c)'~-_.").EncodeComponent())
	assert.Equal(t, "", NewParams().Encode())
}

func TestParams_NilSafeReaders(t *testing.T) {
	var p *Params
	assert.Equal(t, "", p.Get("code"))
	assert.False(t, p.Has("code"))
	assert.Nil(t, p.Keys())
	assert.Zero(t, p.Len())
}

func TestParseQuery(t *testing.T) {
	p := ParseQuery("state=s1&code=abc&realmId=123&&=orphan&flag&code=def&msg=hello+world%21")

	assert.Equal(t, []string{"state", "code", "realmId", "flag", "msg"}, p.Keys())
	assert.Equal(t, "abc,def", p.Get("code"))
	assert.Equal(t, "", p.Get("flag"))
	assert.True(t, p.Has("flag"))
	assert.Equal(t, "hello world!", p.Get("msg"))
}

func TestParseQuery_InvalidEscapeKeptRaw(t *testing.T) {
	p := ParseQuery("code=ab%zz&error_description=100%25%zz+done&bad%key=v&state=ok%20")

	assert.Equal(t, []string{"code", "error_description", "bad%key", "state"}, p.Keys())
	assert.Equal(t, "ab%zz", p.Get("code"))
	assert.Equal(t, "100%25%zz done", p.Get("error_description"))
	assert.Equal(t, "v", p.Get("bad%key"))
	assert.Equal(t, "ok ", p.Get("state"))
}

func TestParseJSON(t *testing.T) {
	body := `{
		"code": "a",
		"foo": "b",
		"n": 42,
		"zero": 0,
		"yes": true,
		"no": false,
		"nothing": null,
		"empty": "",
		"list": ["x", 1, true],
		"obj": {"k": "v", "n": 1}
	}`
	p, err := ParseJSON([]byte(body))
	require.NoError(t, err)

	assert.Equal(t, []string{"code", "foo", "n", "zero", "yes", "no", "nothing", "empty", "list", "obj"}, p.Keys())
	assert.Equal(t, "42", p.Get("n"))
	assert.Equal(t, "true", p.Get("yes"))
	assert.Equal(t, "x,1,true", p.Get("list"))
	assert.Equal(t, `{"k":"v","n":1}`, p.Get("obj"))

	assert.Equal(t, []string{"code", "foo", "n", "yes", "list", "obj"}, p.Truthy().Keys())
}

func TestParseJSON_Arrays(t *testing.T) {
	p, err := ParseJSON([]byte(`{"code":"a","list":["x",0,false,null,1.0],"nested":[1,[2,3]],"arr":[],"blank":[""]}`))
	require.NoError(t, err)

	// la regla falsy sólo aplica al primer nivel
	assert.Equal(t, "x,0,false,,1", p.Get("list"))
	assert.Equal(t, "1,2,3", p.Get("nested"))

	// un array siempre se reenvía, aunque quede vacío
	fwd := p.Truthy()
	assert.Equal(t, []string{"code", "list", "nested", "arr", "blank"}, fwd.Keys())
	assert.Equal(t, "code=a&list=x%2C0%2Cfalse%2C%2C1&nested=1%2C2%2C3&arr=&blank=", fwd.Encode())

	// un valor falsy de la query pisa al array del body
	merged := NewParams().Merge(p).Merge(ParamsOf("arr", ""))
	assert.NotContains(t, merged.Truthy().Keys(), "arr")
}

func TestParseJSON_Numbers(t *testing.T) {
	cases := map[string]string{
		`1.0`:      "1",
		`1e2`:      "100",
		`-2.50`:    "-2.5",
		`0.0`:      "",
		`-0`:       "",
		`1e21`:     "1e+21",
		`1.5e-7`:   "1.5e-7",
		`0.000001`: "0.000001",
	}
	for in, want := range cases {
		p, err := ParseJSON([]byte(`{"n":` + in + `}`))
		require.NoError(t, err, in)
		assert.Equal(t, want, p.Get("n"), in)
	}
}

func TestParseJSON_Empty(t *testing.T) {
	p, err := ParseJSON([]byte("  "))
	require.NoError(t, err)
	assert.Zero(t, p.Len())

	p, err = ParseJSON([]byte("{}"))
	require.NoError(t, err)
	assert.Zero(t, p.Len())
}

func TestParseJSON_Invalid(t *testing.T) {
	for _, body := range []string{`{"code":`, `["code"]`, `"code"`, `{"code":"a"} {}`, `{"code" "a"}`} {
		_, err := ParseJSON([]byte(body))
		assert.Error(t, err, "body %s", body)
	}
}

package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveVars(t *testing.T) {
	doc, _ := Load([]byte(`
greeting: "hello {{user}}"
nested:
  line: "{{user}} again"
items:
  - "{{user}}"
  - plain
`))

	resolved, err := Resolve(doc, map[string]string{"user": "zjz"}, nil)
	assert.Nil(t, err)

	assert.EqualValues(t, "hello zjz", resolved["greeting"])
	assert.EqualValues(t, "zjz again", resolved["nested"].(map[string]any)["line"])
	assert.EqualValues(t, "zjz", resolved["items"].([]any)[0])
	assert.EqualValues(t, "plain", resolved["items"].([]any)[1])

	// input untouched
	assert.EqualValues(t, "hello {{user}}", doc["greeting"])
}

func TestResolveSelfReference(t *testing.T) {
	doc, _ := Load([]byte(`
host: localhost
port: 8080
url: "http://{{host}}:{{port}}/api"
`))

	resolved, err := Resolve(doc, nil, nil)
	assert.Nil(t, err)
	assert.EqualValues(t, "http://localhost:8080/api", resolved["url"])
}

func TestResolveChained(t *testing.T) {
	doc, _ := Load([]byte(`
a: base
b: "{{a}}-b"
c: "{{b}}-c"
d: "{{c}}-d"
`))

	resolved, err := Resolve(doc, nil, nil)
	assert.Nil(t, err)
	assert.EqualValues(t, "base-b-c-d", resolved["d"])
}

func TestResolveDottedPath(t *testing.T) {
	doc, _ := Load([]byte(`
db:
  host: dbhost
dsn: "redis://{{db.host}}/0"
`))

	resolved, err := Resolve(doc, nil, nil)
	assert.Nil(t, err)
	assert.EqualValues(t, "redis://dbhost/0", resolved["dsn"])
}

func TestResolveRenderFns(t *testing.T) {
	doc, _ := Load([]byte(`
path: "{{env:HOME}}/data"
`))

	fns := map[string]RenderFn{
		"env": func(arg string) (string, error) {
			return "/home/" + strings.ToLower(arg), nil
		},
	}

	resolved, err := Resolve(doc, nil, fns)
	assert.Nil(t, err)
	assert.EqualValues(t, "/home/home/data", resolved["path"])
}

func TestResolveCycle(t *testing.T) {
	doc, _ := Load([]byte(`
a: "{{b}}"
b: "{{a}}"
`))

	_, err := Resolve(doc, nil, nil)
	assert.ErrorIs(t, err, ErrUnresolvedTemplate)
}

func TestResolveUnknownName(t *testing.T) {
	doc, _ := Load([]byte(`
a: "{{nope}}"
`))

	_, err := Resolve(doc, nil, nil)
	assert.ErrorIs(t, err, ErrUnresolvedTemplate)
}

package rbacfile

import (
	"strings"
	"testing"
)

const yamlDoc = `
roles:
  - name: viewer
    permissions: [read.article]
  - name: editor
    permissions: [edit.article]
    children: [viewer]
`

func TestLoadYAML(t *testing.T) {
	r, err := LoadYAML(strings.NewReader(yamlDoc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.IsGranted("editor", "read.article") {
		t.Fatal("expected editor to inherit viewer's permission")
	}
}

const jsonCyclic = `{"roles": [
  {"name": "a", "children": ["b"]},
  {"name": "b", "children": ["a"]}
]}`

func TestLoadJSON_RejectsCycle(t *testing.T) {
	if _, err := LoadJSON(strings.NewReader(jsonCyclic)); err == nil {
		t.Fatal("expected a cycle error")
	}
}

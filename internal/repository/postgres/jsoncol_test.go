package postgres

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestDecodeSkills(t *testing.T) {
	tests := []struct {
		name string
		raw  *string
		want []string
	}{
		{"null", nil, []string{}},
		{"blank", strPtr("  "), []string{}},
		{"json array", strPtr(`["a","b"]`), []string{"a", "b"}},
		{"bare word", strPtr("backend"), []string{"backend"}},
		{"json null", strPtr("null"), []string{}},
		{"json string", strPtr(`"go"`), []string{"go"}},
		{"mixed array", strPtr(`["go", 3]`), []string{"go", "3"}},
		{"broken json", strPtr(`["a",`), []string{`["a",`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeSkills(tt.raw))
		})
	}
}

func TestEncodeSkillsRoundTrip(t *testing.T) {
	assert.Equal(t, "[]", encodeSkills(nil))
	raw := encodeSkills([]string{"go", "sql"})
	assert.Equal(t, []string{"go", "sql"}, decodeSkills(&raw))
}

func TestDecodeList(t *testing.T) {
	assert.Empty(t, decodeList(nil))
	assert.Empty(t, decodeList(strPtr("not json")))
	assert.Empty(t, decodeList(strPtr(`{"a":1}`)))

	items := decodeList(strPtr(`[{"title":"Dev"},"x"]`))
	if assert.Len(t, items, 2) {
		assert.JSONEq(t, `{"title":"Dev"}`, string(items[0]))
		assert.Equal(t, json.RawMessage(`"x"`), items[1])
	}
}

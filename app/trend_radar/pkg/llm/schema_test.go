package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectMarksAllRequired(t *testing.T) {
	s := Object(map[string]*Schema{
		"b": String(),
		"a": Integer(),
	})
	assert.Equal(t, TypeObject, s.Type)
	assert.Equal(t, []string{"a", "b"}, s.Required)
}

func TestSchemaString(t *testing.T) {
	s := Object(map[string]*Schema{
		"level": Enum("LOW", "HIGH"),
		"tags":  Strings(),
	})

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(s.String()), &got))

	assert.Equal(t, "object", got["type"])
	props := got["properties"].(map[string]any)
	level := props["level"].(map[string]any)
	assert.Equal(t, []any{"LOW", "HIGH"}, level["enum"])
	tags := props["tags"].(map[string]any)
	assert.Equal(t, "array", tags["type"])
	assert.Equal(t, map[string]any{"type": "string"}, tags["items"])
}

func TestNilSchema(t *testing.T) {
	var s *Schema
	assert.Nil(t, s.Map())
	assert.Equal(t, "null", s.String())
}

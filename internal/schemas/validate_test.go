package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const careerSchema = `{
	"type": "object",
	"required": ["id", "title"],
	"properties": {
		"id": {"type": "string", "minLength": 1},
		"title": {"type": "string", "minLength": 1}
	}
}`

func TestValidateJSONString_ValidDocument(t *testing.T) {
	err := ValidateJSONString(careerSchema, `{"id": "electrician", "title": "Electrician"}`)
	assert.NoError(t, err)
}

func TestValidateJSONString_MissingRequiredField(t *testing.T) {
	err := ValidateJSONString(careerSchema, `{"id": "electrician"}`)

	require.Error(t, err)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.NotEmpty(t, ve.Errors)
	assert.Contains(t, err.Error(), "title")
}

func TestValidateJSONString_BadSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": 12}`, `{}`)

	require.Error(t, err)
	var sle *SchemaLoadError
	assert.ErrorAs(t, err, &sle)
}

func TestValidateJSON_MissingFiles(t *testing.T) {
	err := ValidateJSON("does-not-exist.schema.json", "also-missing.json")
	assert.Error(t, err)
}

func TestResolveSchemaPath_MissingFileReturnsEmpty(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("no/such/schema.json"))
}

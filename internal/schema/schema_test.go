package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/vieta/internal/codec"
	"github.com/roach88/vieta/internal/record"
)

func marshalDoc(t *testing.T, doc record.Document) []byte {
	t.Helper()
	data, err := json.MarshalIndent(doc, "", "  ")
	require.NoError(t, err)
	return data
}

func TestValidate_FreshDocument(t *testing.T) {
	doc := record.New(codec.Base64{}, 2, -7, "2", "5")
	require.NoError(t, Validate(marshalDoc(t, doc)))
}

func TestValidate_DerivedDocument(t *testing.T) {
	doc := record.New(codec.Base64{}, 2, -7, "2", "5")
	doc.SetC(20)
	require.NoError(t, Validate(marshalDoc(t, doc)))
}

func TestValidate_RejectsMissingSection(t *testing.T) {
	err := Validate([]byte(`{
  "polynomial": {"a": 2, "b": -7, "c": null, "form": "ax^2 + bx + c = 0"}
}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match schema")
}

func TestValidate_RejectsMistypedConstant(t *testing.T) {
	err := Validate([]byte(`{
  "polynomial": {"a": 2, "b": -7, "c": "twenty", "form": "ax^2 + bx + c = 0"},
  "roots_base64": {"alpha": "Mg==", "beta": "NQ=="}
}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match schema")
}

func TestValidate_RejectsNonIntegerCoefficient(t *testing.T) {
	err := Validate([]byte(`{
  "polynomial": {"a": "2", "b": -7, "c": null, "form": "ax^2 + bx + c = 0"},
  "roots_base64": {"alpha": "Mg==", "beta": "NQ=="}
}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match schema")
}

func TestValidate_RejectsMalformedJSON(t *testing.T) {
	err := Validate([]byte("{not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse document")
}

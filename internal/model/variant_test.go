package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariantUnmarshalTypedFields(t *testing.T) {
	raw := `{
		"id": "V1",
		"modelId": "M1",
		"name": "Asta 1.2 Petrol",
		"price": 950000,
		"fuel": "Petrol",
		"transmission": "Manual",
		"maxPower": "82 bhp @ 6000 rpm",
		"mileage": 20.35,
		"highlightImages": [{"url": "/uploads/front.jpg", "caption": "Front"}]
	}`

	var v Variant
	require.NoError(t, json.Unmarshal([]byte(raw), &v))

	assert.Equal(t, "V1", v.ID)
	assert.Equal(t, "M1", v.ModelID)
	assert.Equal(t, "Asta 1.2 Petrol", v.Name)
	require.NotNil(t, v.Price)
	assert.Equal(t, int64(950000), *v.Price)
	require.NotNil(t, v.MileageClaimed)
	assert.Equal(t, 20.35, *v.MileageClaimed)
	require.Len(t, v.HighlightImages, 1)
	assert.Equal(t, "/uploads/front.jpg", v.HighlightImages[0].URL)
	assert.Empty(t, v.Specs, "typed fields stay out of the spec map")
}

func TestVariantUnmarshalSparseSpecs(t *testing.T) {
	// The catalog ships dozens of loosely-typed optional fields; every
	// scalar that is not modeled explicitly lands in Specs verbatim.
	raw := `{
		"id": "V1",
		"name": "Asta",
		"bootSpace": "311 litres",
		"airbags": 6,
		"sunroof": true,
		"groundClearance": 170,
		"emptyString": "",
		"nested": {"ignored": true},
		"list": [1, 2],
		"nothing": null
	}`

	var v Variant
	require.NoError(t, json.Unmarshal([]byte(raw), &v))

	assert.Equal(t, map[string]string{
		"bootSpace":       "311 litres",
		"airbags":         "6",
		"sunroof":         "true",
		"groundClearance": "170",
	}, v.Specs, "objects, arrays, nulls and empty strings read as absent")
}

func TestVariantUnmarshalFlexibleText(t *testing.T) {
	asString := `{"id": "V1", "name": "Asta", "description": "line one\nline two"}`
	asList := `{"id": "V1", "name": "Asta", "description": ["line one", "line two"]}`

	var fromString, fromList Variant
	require.NoError(t, json.Unmarshal([]byte(asString), &fromString))
	require.NoError(t, json.Unmarshal([]byte(asList), &fromList))

	assert.Equal(t, "line one\nline two", fromString.Description)
	assert.Equal(t, fromString.Description, fromList.Description)
}

func TestVariantUnmarshalAllAbsent(t *testing.T) {
	var v Variant
	require.NoError(t, json.Unmarshal([]byte(`{}`), &v))
	assert.Nil(t, v.Price)
	assert.Nil(t, v.MileageClaimed)
	assert.Empty(t, v.Specs)
}

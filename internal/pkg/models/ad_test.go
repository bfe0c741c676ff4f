package models

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeVariant_StoredBlobForm(t *testing.T) {
	// Blob exactly as persisted: base64 over the JSON tier description
	blob := base64.StdEncoding.EncodeToString(
		[]byte(`{"type":"Media docena","price":65,"minQuantity":1,"sku":"TAM-6","offer":"2x1 martes"}`),
	)

	v, err := DecodeVariant(blob)

	require.NoError(t, err)
	assert.Equal(t, "Media docena", v.Type)
	assert.Equal(t, 65.0, v.Price)
	assert.Equal(t, "TAM-6", v.SKU)
	assert.Equal(t, "2x1 martes", v.Offer)
}

func TestDecodeVariant_UnknownFieldsTolerated(t *testing.T) {
	// Blobs are self-describing, so tiers written by newer clients with
	// extra fields must still decode
	blob := base64.StdEncoding.EncodeToString(
		[]byte(`{"type":"Docena","price":120,"minQuantity":1,"sku":"TAM-12","color":"rojo"}`),
	)

	v, err := DecodeVariant(blob)

	require.NoError(t, err)
	assert.Equal(t, "TAM-12", v.SKU)
}

func TestAd_DecodeVariants_MalformedBlobFailsWhole(t *testing.T) {
	good, err := EncodeVariant(Variant{Type: "Docena", Price: 120, SKU: "TAM-12"})
	require.NoError(t, err)

	ad := &Ad{RawVariants: []string{good, "not-base64!!"}}

	err = ad.DecodeVariants()

	assert.Error(t, err)
	assert.Nil(t, ad.Variants)
}

func TestAd_DecodeVariants_EmptyIsNil(t *testing.T) {
	ad := &Ad{}

	require.NoError(t, ad.DecodeVariants())
	assert.Nil(t, ad.Variants)
}

func TestEncodeVariant_RoundTrip(t *testing.T) {
	in := Variant{Type: "Media docena", Price: 65, MinQuantity: 2, SKU: "TAM-6"}

	blob, err := EncodeVariant(in)
	require.NoError(t, err)

	out, err := DecodeVariant(blob)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

package utils

import (
	"github.com/mmcloughlin/geohash"
)

// GeohashPrecision gives ~±2.4km cells, enough to group homes inside one
// residential without storing exact coordinates in the hash
const GeohashPrecision = 6

// EncodeLocation converts a geo-pin to a geohash string
func EncodeLocation(latitude, longitude float64) string {
	return geohash.EncodeWithPrecision(latitude, longitude, GeohashPrecision)
}

// DecodeGeohash converts a geohash string back to coordinates
func DecodeGeohash(hash string) (latitude, longitude float64) {
	return geohash.Decode(hash)
}

package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeolocationZeroDistance(t *testing.T) {
	assert.InDelta(t, 0, Geolocation(-6.2, 106.8, -6.2, 106.8), 0.001)
}

func TestGeolocationKnownDistance(t *testing.T) {
	// Monas -> Bundaran HI kira-kira 2.5 km
	d := Geolocation(-6.1754, 106.8272, -6.1950, 106.8230)
	assert.InDelta(t, 2200, d, 300)
}

func TestGeolocationSymmetric(t *testing.T) {
	a := Geolocation(-6.2, 106.8, -6.3, 106.9)
	b := Geolocation(-6.3, 106.9, -6.2, 106.8)
	assert.InDelta(t, a, b, 0.001)
}

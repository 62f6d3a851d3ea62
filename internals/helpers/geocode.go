package helper

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"fieldku_backend/internals/configs"
)

var geocodeClient = &http.Client{Timeout: 5 * time.Second}

type reverseGeocodeResponse struct {
	DisplayName string `json:"display_name"`
}

// ReverseGeocode memanggil layanan geocoding (format Nominatim).
// Kegagalan tidak pernah fatal: fallback ke "lat, lng" sebagai alamat.
func ReverseGeocode(lat, lng float64) string {
	fallback := fmt.Sprintf("%f, %f", lat, lng)

	base := configs.GeocodeBaseURL
	if base == "" {
		return fallback
	}

	q := url.Values{}
	q.Set("format", "jsonv2")
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lon", fmt.Sprintf("%f", lng))

	req, err := http.NewRequest(http.MethodGet, base+"/reverse?"+q.Encode(), nil)
	if err != nil {
		return fallback
	}
	req.Header.Set("User-Agent", "fieldku-backend/1.0")

	resp, err := geocodeClient.Do(req)
	if err != nil {
		return fallback
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fallback
	}

	var body reverseGeocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.DisplayName == "" {
		return fallback
	}
	return body.DisplayName
}

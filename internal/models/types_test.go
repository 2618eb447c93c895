package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
		id   ID
		out  string
	}{
		{name: "number", in: `{"id":7}`, id: "7", out: `"id":7`},
		{name: "leading zeros", in: `{"id":"007"}`, id: "007", out: `"id":"007"`},
		{name: "plus sign", in: `{"id":"+7"}`, id: "+7", out: `"id":"+7"`},
		{name: "text", in: `{"id":"abc"}`, id: "abc", out: `"id":"abc"`},
		{name: "negative", in: `{"id":-3}`, id: "-3", out: `"id":-3`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var report EmergencyReport
			require.NoError(t, json.Unmarshal([]byte(tt.in), &report))
			assert.Equal(t, tt.id, report.ID)

			body, err := json.Marshal(report)
			require.NoError(t, err)
			assert.Contains(t, string(body), tt.out)

			var again EmergencyReport
			require.NoError(t, json.Unmarshal(body, &again))
			assert.Equal(t, tt.id, again.ID)
		})
	}
}

func TestID_SnapshotWithMixedIDs(t *testing.T) {
	reports := []EmergencyReport{{ID: "007"}, {ID: "12"}, {ID: "+7"}}

	body, err := json.Marshal(reports)

	require.NoError(t, err)
	assert.Contains(t, string(body), `"id":"007"`)
	assert.Contains(t, string(body), `"id":12`)
}

func TestEmergencyReport_HasCoordinates(t *testing.T) {
	tests := []struct {
		name     string
		lat, lng Coordinate
		want     bool
	}{
		{name: "both set", lat: 14.599512, lng: 120.984222, want: true},
		{name: "equator", lat: 0, lng: 120.984222, want: true},
		{name: "prime meridian", lat: 51.4779, lng: 0, want: true},
		{name: "missing", lat: 0, lng: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &EmergencyReport{Latitude: tt.lat, Longitude: tt.lng}
			assert.Equal(t, tt.want, r.HasCoordinates())
		})
	}
}

package station_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
)

func TestDirectory_Distance_knownStations(t *testing.T) {
	dir := station.NewDirectory([]station.StationData{
		{Name: "Clark St & Elm St", Latitude: 41.902973, Longitude: -87.63128},
		{Name: "Wells St & Concord Ln", Latitude: 41.912133, Longitude: -87.634656},
	})

	km, ok := dir.Distance(trip.NewJourney("Clark St & Elm St", "Wells St & Concord Ln"))

	require.True(t, ok)
	assert.InDelta(t, 1.06, km, 0.05)

	// same journey again comes from the cache and must not change
	again, ok := dir.Distance(trip.NewJourney("Clark St & Elm St", "Wells St & Concord Ln"))
	require.True(t, ok)
	assert.Equal(t, km, again)
}

func TestDirectory_Distance_sameStationIsZero(t *testing.T) {
	dir := station.NewDirectory([]station.StationData{{Name: "A", Latitude: 40.7, Longitude: -74}})

	km, ok := dir.Distance(trip.NewJourney("A", "A"))

	require.True(t, ok)
	assert.Zero(t, km)
}

func TestDirectory_Distance_unknownStation(t *testing.T) {
	dir := station.NewDirectory([]station.StationData{{Name: "A", Latitude: 40.7, Longitude: -74}})

	_, ok := dir.Distance(trip.NewJourney("A", "B"))
	assert.False(t, ok)
}

func TestDirectory_nilIsEmpty(t *testing.T) {
	var dir *station.Directory

	_, ok := dir.Distance(trip.NewJourney("A", "B"))
	assert.False(t, ok)
	assert.Zero(t, dir.Len())
}

package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCatalog(t *testing.T) {
	doc := `{
		"capacity": {"helmet": 2, "weapon": 1},
		"priorityTripods": 1,
		"tripods": ["Alpha", "Beta", "Gamma"],
		"items": [
			{"row": "helmet", "cost": 5, "tripods": ["Alpha"]},
			{"row": "weapon", "cost": 3, "tripods": ["Alpha", "Beta"]},
			{"row": "helmet", "cost": 1, "tripods": [3]}
		]
	}`

	cat, err := ParseCatalog([]byte(doc))
	require.NoError(t, err)

	want := &Catalog{
		TripodNames:     []string{"Alpha", "Beta", "Gamma"},
		NumTripods:      3,
		PriorityTripods: 1,
		Capacity:        Capacity{RowHelmet: 2, RowWeapon: 1},
		Items: []Item{
			{Row: RowHelmet, Cost: 5, Tripods: [MaxItemTripods]int{1, 0, 0}},
			{Row: RowWeapon, Cost: 3, Tripods: [MaxItemTripods]int{1, 2, 0}},
			{Row: RowHelmet, Cost: 1, Tripods: [MaxItemTripods]int{3, 0, 0}},
		},
	}
	if diff := cmp.Diff(want, cat); diff != "" {
		t.Errorf("catalog mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCatalogNumericOnly(t *testing.T) {
	// Without a tripods list the id range comes from the largest id used.
	doc := `{
		"capacity": {"gloves": 1},
		"priorityTripods": 2,
		"items": [{"row": "gloves", "cost": 0, "tripods": [2, 7]}]
	}`

	cat, err := ParseCatalog([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, 7, cat.NumTripods)
	assert.Equal(t, 2, cat.PriorityTripods)
	assert.Equal(t, "tripod_07", cat.TripodName(7))
}

func TestParseCatalogMissingCapacityRowIsZero(t *testing.T) {
	doc := `{
		"capacity": {"weapon": 1},
		"items": [{"row": "helmet", "cost": 0, "tripods": [1]}]
	}`

	cat, err := ParseCatalog([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, 0, cat.Capacity[RowHelmet])
	assert.Equal(t, 1, cat.Capacity[RowWeapon])
}

func TestParseCatalogPriorityClamping(t *testing.T) {
	for _, tc := range []struct {
		name string
		prio string
		want int
	}{
		{"negative clamps to zero", "-3", 0},
		{"beyond range clamps to range", "99", 2},
	} {
		t.Run(tc.name, func(t *testing.T) {
			doc := `{
				"capacity": {"chest": 1},
				"priorityTripods": ` + tc.prio + `,
				"items": [{"row": "chest", "cost": 0, "tripods": [1, 2]}]
			}`
			cat, err := ParseCatalog([]byte(doc))
			require.NoError(t, err)
			assert.Equal(t, tc.want, cat.PriorityTripods)
		})
	}
}

func TestParseCatalogErrors(t *testing.T) {
	for _, tc := range []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			"invalid JSON",
			`{"capacity": `,
			"invalid JSON",
		},
		{
			"unknown capacity row",
			`{"capacity": {"hat": 1}}`,
			`unknown row "hat"`,
		},
		{
			"negative capacity",
			`{"capacity": {"helmet": -1}}`,
			"negative capacity",
		},
		{
			"unknown item row",
			`{"items": [{"row": "boots", "cost": 0, "tripods": [1]}]}`,
			`unknown row "boots"`,
		},
		{
			"negative cost",
			`{"items": [{"row": "helmet", "cost": -2, "tripods": [1]}]}`,
			"negative cost",
		},
		{
			"unknown tripod name",
			`{"tripods": ["Alpha"], "items": [{"row": "helmet", "cost": 0, "tripods": ["Omega"]}]}`,
			`unknown tripod "Omega"`,
		},
		{
			"tripod id below range",
			`{"items": [{"row": "helmet", "cost": 0, "tripods": [0]}]}`,
			"out of range",
		},
		{
			"tripod id beyond declared list",
			`{"tripods": ["Alpha"], "items": [{"row": "helmet", "cost": 0, "tripods": [2]}]}`,
			"beyond the 1 declared tripods",
		},
		{
			"tripod id beyond mask width",
			`{"items": [{"row": "helmet", "cost": 0, "tripods": [65]}]}`,
			"exceeds the 64-bit search mask",
		},
		{
			"too many tripods on one item",
			`{"items": [{"row": "helmet", "cost": 0, "tripods": [1, 2, 3, 4]}]}`,
			"more than 3 tripods",
		},
		{
			"duplicate tripod name",
			`{"tripods": ["Alpha", "Alpha"]}`,
			`duplicate tripod name "Alpha"`,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tc.doc))
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

package main

import "fmt"

// Row is the equipment slot type an item occupies. The library has a fixed
// number of free slots per row.
type Row int

const (
	RowHelmet Row = iota
	RowShoulders
	RowChest
	RowPants
	RowGloves
	RowWeapon
	NumRows
)

func (r Row) String() string {
	switch r {
	case RowHelmet:
		return "helmet"
	case RowShoulders:
		return "shoulders"
	case RowChest:
		return "chest"
	case RowPants:
		return "pants"
	case RowGloves:
		return "gloves"
	case RowWeapon:
		return "weapon"
	}
	return fmt.Sprintf("row(%d)", int(r))
}

func parseRow(s string) (Row, bool) {
	switch s {
	case "helmet":
		return RowHelmet, true
	case "shoulders":
		return RowShoulders, true
	case "chest":
		return RowChest, true
	case "pants":
		return RowPants, true
	case "gloves":
		return RowGloves, true
	case "weapon":
		return RowWeapon, true
	}
	return 0, false
}

// Capacity holds the number of free library slots per row. Rows absent from
// the catalog's capacity table get zero slots.
type Capacity [NumRows]int

// MaxItemTripods is the most tripods a single item can grant.
const MaxItemTripods = 3

// MaxTripodID bounds the dense tripod id range; the search keeps obtained
// tripods in a 64-bit mask.
const MaxTripodID = 64

// Item is one catalog entry: the row it goes to, its gold cost, and the
// tripods it grants. Tripod slot value 0 means the slot grants nothing.
type Item struct {
	Row     Row
	Cost    int
	Tripods [MaxItemTripods]int
}

// Catalog is the full, immutable search input.
type Catalog struct {
	// TripodNames[t-1] names tripod t. Empty for catalogs that reference
	// tripods by numeric id only.
	TripodNames []string
	// NumTripods is the dense id range bound T; tripod ids run 1..T.
	NumTripods int
	// PriorityTripods is how many leading tripod ids are high-priority.
	// Always within [0, NumTripods].
	PriorityTripods int
	Capacity        Capacity
	Items           []Item
}

// TripodName returns the display name for tripod t.
func (c *Catalog) TripodName(t int) string {
	if t >= 1 && t <= len(c.TripodNames) {
		return c.TripodNames[t-1]
	}
	return fmt.Sprintf("tripod_%02d", t)
}

package main

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// LoadCatalog reads and validates a catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	cat, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return cat, nil
}

// ParseCatalog decodes and validates a catalog document:
//
//	{
//	  "capacity": {"helmet": 4, ..., "weapon": 4},
//	  "priorityTripods": 20,
//	  "tripods": ["PunishingStrike_MindEnhancement", ...],
//	  "items": [{"row": "weapon", "cost": 0, "tripods": ["...", 14]}, ...]
//	}
//
// The tripods list assigns dense ids by position, 1-based; the first
// priorityTripods of them are high-priority. Item tripods may reference the
// list by name or by numeric id. The tripods list may be omitted entirely,
// in which case items must use numeric ids and the id range is derived from
// the largest id seen.
func ParseCatalog(data []byte) (*Catalog, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid JSON")
	}
	root := gjson.ParseBytes(data)

	cat := &Catalog{}
	var parseErr error

	nameID := make(map[string]int)
	root.Get("tripods").ForEach(func(_, v gjson.Result) bool {
		name := v.String()
		if _, dup := nameID[name]; dup {
			parseErr = fmt.Errorf("duplicate tripod name %q", name)
			return false
		}
		cat.TripodNames = append(cat.TripodNames, name)
		nameID[name] = len(cat.TripodNames)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	if len(cat.TripodNames) > MaxTripodID {
		return nil, fmt.Errorf("%d tripods declared, at most %d fit the search mask", len(cat.TripodNames), MaxTripodID)
	}

	root.Get("capacity").ForEach(func(key, v gjson.Result) bool {
		row, ok := parseRow(key.String())
		if !ok {
			parseErr = fmt.Errorf("capacity table: unknown row %q", key.String())
			return false
		}
		if v.Int() < 0 {
			parseErr = fmt.Errorf("capacity table: row %s has negative capacity %d", row, v.Int())
			return false
		}
		cat.Capacity[row] = int(v.Int())
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	maxID := len(cat.TripodNames)
	root.Get("items").ForEach(func(_, v gjson.Result) bool {
		idx := len(cat.Items)
		row, ok := parseRow(v.Get("row").String())
		if !ok {
			parseErr = fmt.Errorf("item %d: unknown row %q", idx, v.Get("row").String())
			return false
		}
		if v.Get("cost").Int() < 0 {
			parseErr = fmt.Errorf("item %d: negative cost %d", idx, v.Get("cost").Int())
			return false
		}
		item := Item{Row: row, Cost: int(v.Get("cost").Int())}

		n := 0
		v.Get("tripods").ForEach(func(_, tv gjson.Result) bool {
			if n == MaxItemTripods {
				parseErr = fmt.Errorf("item %d: more than %d tripods", idx, MaxItemTripods)
				return false
			}
			id, err := resolveTripod(tv, nameID)
			if err != nil {
				parseErr = fmt.Errorf("item %d: %w", idx, err)
				return false
			}
			item.Tripods[n] = id
			n++
			if id > maxID {
				maxID = id
			}
			return true
		})
		if parseErr != nil {
			return false
		}
		cat.Items = append(cat.Items, item)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	cat.NumTripods = maxID
	cat.PriorityTripods = clamp(int(root.Get("priorityTripods").Int()), 0, cat.NumTripods)
	return cat, nil
}

// resolveTripod maps one item tripod reference (name or numeric id) to its
// dense id.
func resolveTripod(v gjson.Result, nameID map[string]int) (int, error) {
	if v.Type == gjson.String {
		id, ok := nameID[v.String()]
		if !ok {
			return 0, fmt.Errorf("unknown tripod %q", v.String())
		}
		return id, nil
	}
	id := int(v.Int())
	if id < 1 {
		return 0, fmt.Errorf("tripod id %d out of range", id)
	}
	if len(nameID) > 0 && id > len(nameID) {
		return 0, fmt.Errorf("tripod id %d beyond the %d declared tripods", id, len(nameID))
	}
	if id > MaxTripodID {
		return 0, fmt.Errorf("tripod id %d exceeds the %d-bit search mask", id, MaxTripodID)
	}
	return id, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Package catalog holds the fixed vocabulary every pre-start checklist is
// built from: the check areas, the canonical check items, and the tyre
// positions. The published schema, the validator, and the generic form
// renderer all read from here, so the lists below are the single source of
// truth for what a submission may contain.
package catalog

// CheckAreas are the sections of the compliance matrix, in display order.
var CheckAreas = []string{
	"Engine running",
	"In cab",
	"Vehicle exterior",
}

// CheckItems are the canonical items shared across all areas. A full
// checklist is the cross-product of CheckAreas x CheckItems.
var CheckItems = []string{
	"Seat Belts",
	"Warning Lights / Gauges",
	"Horn",
	"Mirrors",
	"Windscreen / Wipers / Washers",
	"Lights / Indicators",
	"Park Brake",
	"Service Brakes",
	"Steering",
	"Reversing Alarm / Camera",
	"Engine Oil Level",
	"Coolant Level",
	"Fuel / AdBlue Level",
	"Battery / Isolator",
	"Air System / Leaks",
	"Exhaust System",
	"Tyres / Wheels / Rims",
	"Mudguards / Flaps",
	"Body / Panels / Doors",
	"Load Restraints / Curtains",
	"Fire Extinguisher",
	"First Aid Kit",
}

// TyrePositions are the canonical positions for a six-wheeler. The tyre
// section of a submission is expected to use these but the validator does
// not enforce the set.
var TyrePositions = []string{
	"Front Left",
	"Front Right",
	"Rear Left Outer",
	"Rear Left Inner",
	"Rear Right Inner",
	"Rear Right Outer",
}

var (
	checkAreaSet = toSet(CheckAreas)
	checkItemSet = toSet(CheckItems)
)

// IsCheckArea reports whether s is one of the catalog areas.
func IsCheckArea(s string) bool { return checkAreaSet[s] }

// IsCheckItem reports whether s is one of the canonical items.
func IsCheckItem(s string) bool { return checkItemSet[s] }

func toSet(list []string) map[string]bool {
	m := make(map[string]bool, len(list))
	for _, s := range list {
		m[s] = true
	}
	return m
}

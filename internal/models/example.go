package models

import "github.com/RogerGower/hsw-mvp/internal/catalog"

// Example returns one fully populated, valid submission. Clients use it to
// pre-fill forms and to self-test round-tripping, so it must always pass
// Validate unchanged.
func Example() *Prestart {
	hubKm := 182430.0
	speedo := 182425.5
	tread := 6.0

	checks := make([]Check, 0, len(catalog.CheckAreas)*2)
	for _, area := range catalog.CheckAreas {
		checks = append(checks,
			Check{Area: area, Item: catalog.CheckItems[0], Status: StatusCompliant},
			Check{Area: area, Item: catalog.CheckItems[1], Status: StatusCompliant},
		)
	}
	// One non-compliant cell with a note and photo, so clients see the
	// optional fields exercised.
	checks = append(checks, Check{
		Area:     "Vehicle exterior",
		Item:     "Mudguards / Flaps",
		Status:   StatusNonCompliant,
		Note:     "Nearside rear flap torn",
		PhotoURL: "https://example.com/photos/flap.jpg",
	})

	tyres := make([]Tyre, 0, len(catalog.TyrePositions))
	for _, pos := range catalog.TyrePositions {
		t := tread
		tyres = append(tyres, Tyre{
			Position:      pos,
			TreadDepthMm:  &t,
			Condition:     TyreConditionOK,
			PressureCheck: PressureCheckPass,
		})
	}

	return &Prestart{
		GeneralInfo: GeneralInfo{
			PlantNumber:     "TRK-4502",
			Date:            "2025-08-29",
			CompletedBy:     "K. James",
			RegistrationDue: "2026-02-28",
			CofWofDue:       "2025-11-14",
			HubKmReading:    &hubKm,
			SpeedoReading:   &speedo,
		},
		Checks:  checks,
		Tyres:   tyres,
		Defects: []Defect{{
			NatureOfFault:    "Nearside rear mudflap torn",
			WorkCarriedOutBy: "Workshop",
			Comments:         "Replacement flap on order",
		}},
	}
}

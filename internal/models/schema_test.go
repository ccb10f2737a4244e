package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RogerGower/hsw-mvp/internal/catalog"
)

func mustSchemaDoc(t *testing.T) *SchemaDoc {
	t.Helper()
	raw, err := Schema()
	require.NoError(t, err)

	var doc SchemaDoc
	require.NoError(t, json.Unmarshal(raw, &doc))
	return &doc
}

func findField(t *testing.T, fields []FieldSchema, name string) FieldSchema {
	t.Helper()
	for _, f := range fields {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("field %q not found", name)
	return FieldSchema{}
}

func TestSchemaIsByteIdenticalAcrossFetches(t *testing.T) {
	first, err := Schema()
	require.NoError(t, err)
	second, err := Schema()
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestSchemaCarriesCatalog(t *testing.T) {
	doc := mustSchemaDoc(t)

	require.Equal(t, catalog.CheckAreas, doc.Catalog.CheckAreas)
	require.Equal(t, catalog.CheckItems, doc.Catalog.CheckItems)
	require.Equal(t, catalog.TyrePositions, doc.Catalog.TyrePositions)
	require.Len(t, doc.Catalog.CheckItems, 22)
	require.Len(t, doc.Catalog.TyrePositions, 6)
}

func TestSchemaTopLevelShape(t *testing.T) {
	doc := mustSchemaDoc(t)

	gi := findField(t, doc.Fields, "generalInfo")
	require.Equal(t, "object", gi.Type)
	require.True(t, gi.Required)

	checks := findField(t, doc.Fields, "checks")
	require.Equal(t, "array", checks.Type)
	require.True(t, checks.Required)
	require.Equal(t, 1, checks.MinItems)

	for _, name := range []string{"tyres", "defects"} {
		f := findField(t, doc.Fields, name)
		require.Equal(t, "array", f.Type)
		require.False(t, f.Required, "%s must be optional", name)
	}
}

func TestSchemaReflectsValidatorConstraints(t *testing.T) {
	doc := mustSchemaDoc(t)

	gi := findField(t, doc.Fields, "generalInfo")
	require.Equal(t, "string", findField(t, gi.Fields, "plantNumber").Type)
	require.True(t, findField(t, gi.Fields, "plantNumber").Required)
	require.Equal(t, "date", findField(t, gi.Fields, "date").Type)
	require.Equal(t, "number", findField(t, gi.Fields, "hubKmReading").Type)
	require.False(t, findField(t, gi.Fields, "hubKmReading").Required)

	check := findField(t, doc.Fields, "checks").Items
	require.NotNil(t, check)
	status := findField(t, check.Fields, "status")
	require.Equal(t, "enum", status.Type)
	require.Equal(t, []string{"Compliant", "Non-compliant", "N/A"}, status.Values)
	require.Equal(t, catalog.CheckAreas, findField(t, check.Fields, "area").Values)
	require.Equal(t, catalog.CheckItems, findField(t, check.Fields, "item").Values)

	tyre := findField(t, doc.Fields, "tyres").Items
	require.NotNil(t, tyre)
	require.Equal(t, "number", findField(t, tyre.Fields, "treadDepthMm").Type)
	cond := findField(t, tyre.Fields, "condition")
	require.Equal(t, []string{"OK", "Damage", "Needs Attention"}, cond.Values)
	require.Equal(t, []string{"Pass", "Fail"}, findField(t, tyre.Fields, "pressureCheck").Values)
	// Position is deliberately NOT an enum: the set is open.
	require.Equal(t, "string", findField(t, tyre.Fields, "position").Type)
}

func TestExamplePassesValidation(t *testing.T) {
	require.Nil(t, Validate(Example()))
}

func TestExampleSurvivesWireRoundTrip(t *testing.T) {
	raw, err := json.Marshal(Example())
	require.NoError(t, err)

	var back Prestart
	require.NoError(t, json.Unmarshal(raw, &back))
	require.Nil(t, Validate(&back))
}

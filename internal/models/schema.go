package models

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/RogerGower/hsw-mvp/internal/catalog"
	"github.com/RogerGower/hsw-mvp/internal/utils"
)

// FieldSchema describes one declared field of the submission shape.
type FieldSchema struct {
	Name     string        `json:"name"`
	Type     string        `json:"type"`
	Required bool          `json:"required"`
	Values   []string      `json:"values,omitempty"`
	MinItems int           `json:"minItems,omitempty"`
	Fields   []FieldSchema `json:"fields,omitempty"`
	Items    *FieldSchema  `json:"items,omitempty"`
}

// SchemaDoc is the published structural schema for a Prestart submission.
// It is generated from the struct tags on the domain model itself, so it
// cannot drift from what Validate enforces.
type SchemaDoc struct {
	Title   string        `json:"title"`
	Type    string        `json:"type"`
	Catalog CatalogDoc    `json:"catalog"`
	Fields  []FieldSchema `json:"fields"`
}

// CatalogDoc carries the fixed vocabulary so clients can render the
// compliance matrix and tyre rows without hardcoding anything.
type CatalogDoc struct {
	CheckAreas    []string `json:"checkAreas"`
	CheckItems    []string `json:"checkItems"`
	TyrePositions []string `json:"tyrePositions"`
}

var (
	schemaOnce  sync.Once
	schemaBytes []byte
	schemaErr   error
)

// Schema returns the published schema document. It is built once per
// process and cached, so repeated fetches are byte-identical. A build
// failure surfaces as utils.ErrSchemaUnavailable.
func Schema() ([]byte, error) {
	schemaOnce.Do(func() {
		doc, err := buildSchemaDoc()
		if err != nil {
			schemaErr = fmt.Errorf("%w: %v", utils.ErrSchemaUnavailable, err)
			return
		}
		schemaBytes, schemaErr = json.MarshalIndent(doc, "", "  ")
		if schemaErr != nil {
			schemaErr = fmt.Errorf("%w: %v", utils.ErrSchemaUnavailable, schemaErr)
		}
	})
	return schemaBytes, schemaErr
}

func buildSchemaDoc() (*SchemaDoc, error) {
	fields, err := structFields(reflect.TypeOf(Prestart{}))
	if err != nil {
		return nil, err
	}
	return &SchemaDoc{
		Title: "Prestart",
		Type:  "object",
		Catalog: CatalogDoc{
			CheckAreas:    catalog.CheckAreas,
			CheckItems:    catalog.CheckItems,
			TyrePositions: catalog.TyrePositions,
		},
		Fields: fields,
	}, nil
}

func structFields(t reflect.Type) ([]FieldSchema, error) {
	out := make([]FieldSchema, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		fs, err := fieldSchema(sf)
		if err != nil {
			return nil, err
		}
		out = append(out, fs)
	}
	return out, nil
}

func fieldSchema(sf reflect.StructField) (FieldSchema, error) {
	name := strings.SplitN(sf.Tag.Get("json"), ",", 2)[0]
	if name == "" || name == "-" {
		name = sf.Name
	}

	rules := strings.Split(sf.Tag.Get("validate"), ",")
	fs := FieldSchema{Name: name}

	for _, rule := range rules {
		switch {
		case rule == "required":
			fs.Required = true
		case rule == "check_area":
			fs.Type = "enum"
			fs.Values = catalog.CheckAreas
		case rule == "check_item":
			fs.Type = "enum"
			fs.Values = catalog.CheckItems
		case strings.HasPrefix(rule, "oneof="):
			fs.Type = "enum"
			fs.Values = splitOneof(strings.TrimPrefix(rule, "oneof="))
		case strings.HasPrefix(rule, "datetime="):
			fs.Type = "date"
		case strings.HasPrefix(rule, "min="):
			n, err := strconv.Atoi(strings.TrimPrefix(rule, "min="))
			if err != nil {
				return FieldSchema{}, fmt.Errorf("bad min constraint on %q: %w", name, err)
			}
			fs.MinItems = n
		}
	}

	if fs.Type != "" && fs.Type != "date" {
		return fs, nil
	}

	ft := sf.Type
	if ft.Kind() == reflect.Pointer {
		ft = ft.Elem()
	}

	switch ft.Kind() {
	case reflect.String:
		if fs.Type == "" {
			fs.Type = "string"
		}
	case reflect.Float64:
		fs.Type = "number"
	case reflect.Struct:
		nested, err := structFields(ft)
		if err != nil {
			return FieldSchema{}, err
		}
		fs.Type = "object"
		fs.Fields = nested
	case reflect.Slice:
		elem, err := structFields(ft.Elem())
		if err != nil {
			return FieldSchema{}, err
		}
		fs.Type = "array"
		fs.Items = &FieldSchema{Type: "object", Fields: elem}
		if fs.MinItems > 0 {
			fs.Required = true
		}
	default:
		return FieldSchema{}, fmt.Errorf("unsupported field type %s for %q", ft.Kind(), name)
	}

	return fs, nil
}

// splitOneof splits a oneof parameter list on spaces, honoring the
// single-quote grouping validator/v10 uses for values with spaces.
func splitOneof(params string) []string {
	var out []string
	var cur strings.Builder
	inQuote := false
	for _, r := range params {
		switch {
		case r == '\'':
			inQuote = !inQuote
		case r == ' ' && !inQuote:
			if cur.Len() > 0 {
				out = append(out, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteRune(r)
		}
	}
	if cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out
}

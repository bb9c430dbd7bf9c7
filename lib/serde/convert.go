package serde

import (
	"reflect"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/puzpuzpuz/xsync/v3"
	"github.com/shopspring/decimal"
)

// Tagging convention. A value the plain-JSON model cannot express natively is
// rendered as a mapping carrying TagKey plus either ValueKey or DictKey. These
// names are part of the wire contract and must not change.
const (
	TagKey   = "__type__"
	ValueKey = "__value__"
	DictKey  = "__dict__"

	tagDatetime = "datetime"
	tagDecimal  = "decimal"
	tagSet      = "set"
)

// --------------------------------------------------------------------------
// Converter
// --------------------------------------------------------------------------

// ToPlain converts an arbitrary value tree into the plain JSON value model.
//
// The walk is depth-first: sequence elements and mapping values are each
// converted individually before assembly. Mapping keys are never rewritten and
// must already be strings. Per-kind rules:
//
//   - nil / bool / integers / floats / strings: identity (defined types with
//     such an underlying kind convert to the underlying value)
//   - slices and arrays: plain list of converted elements
//   - string-keyed mappings: mapping with converted values
//   - time.Time: {"__type__": "datetime", "__value__": <RFC 3339 text>}
//   - decimal.Decimal: {"__type__": "decimal", "__value__": <base-10 string>}
//   - Set: {"__type__": "set", "__value__": <list of converted members>}
//   - structs (and pointers to structs): {"__type__": <type name>, "__dict__": <fields>}
//
// Anything else fails with ErrUnsupportedType. The output of a successful call
// is always representable in plain JSON without further hooks; on failure no
// partial result is returned.
func ToPlain(v any) (any, error) {
	switch val := v.(type) {
	case nil, bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return v, nil

	case time.Time:
		return map[string]any{
			TagKey:   tagDatetime,
			ValueKey: val.Format(time.RFC3339Nano),
		}, nil

	case decimal.Decimal:
		return map[string]any{
			TagKey:   tagDecimal,
			ValueKey: decimalString(val),
		}, nil

	case Set:
		// An empty set keeps the full tag wrapper with an empty member list.
		// It never collapses to a bare empty list.
		members := make([]any, 0, val.Len())
		for member := range val {
			converted, err := ToPlain(member)
			if err != nil {
				return nil, err
			}
			members = append(members, converted)
		}
		return map[string]any{
			TagKey:   tagSet,
			ValueKey: members,
		}, nil

	case map[string]any:
		result := make(map[string]any, len(val))
		for key, value := range val {
			converted, err := ToPlain(value)
			if err != nil {
				return nil, err
			}
			result[key] = converted
		}
		return result, nil

	case []any:
		result := make([]any, len(val))
		for i, element := range val {
			converted, err := ToPlain(element)
			if err != nil {
				return nil, err
			}
			result[i] = converted
		}
		return result, nil
	}

	return toPlainReflect(reflect.ValueOf(v))
}

// decimalString renders a decimal in its declared scale. String would trim
// trailing fractional zeros ("99.90" -> "99.9"), losing the exact form.
func decimalString(d decimal.Decimal) string {
	if d.Exponent() < 0 {
		return d.StringFixed(-d.Exponent())
	}
	return d.String()
}

// toPlainReflect handles the kinds the concrete type switch in ToPlain cannot
// cover: defined scalar types, typed slices/arrays, typed maps, structs and
// pointers/interfaces
func toPlainReflect(rv reflect.Value) (any, error) {
	switch rv.Kind() {
	// Defined types with a scalar underlying kind (type ID int, time.Duration,
	// named strings) convert to their underlying value
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint(), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.String:
		return rv.String(), nil

	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}
		return ToPlain(rv.Elem().Interface())

	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nil, nil
		}
		result := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			converted, err := ToPlain(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			result[i] = converted
		}
		return result, nil

	case reflect.Map:
		// The consuming codec requires string keys; conversion rewrites values only
		if rv.Type().Key().Kind() != reflect.String {
			return nil, errors.Wrapf(ErrUnsupportedType,
				"mapping with %s keys (string keys required)", rv.Type().Key().Kind())
		}
		if rv.IsNil() {
			return nil, nil
		}
		result := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			converted, err := ToPlain(iter.Value().Interface())
			if err != nil {
				return nil, err
			}
			result[iter.Key().String()] = converted
		}
		return result, nil

	case reflect.Struct:
		return recordToPlain(rv)
	}

	return nil, errors.Wrapf(ErrUnsupportedType, "value of type %s", rv.Type())
}

// --------------------------------------------------------------------------
// Record conversion
// --------------------------------------------------------------------------

// fieldInfo describes one exported field of a record type
type fieldInfo struct {
	name  string
	index int
}

// fieldCache maps record types to their field layout so reflection over struct
// fields runs once per type
var fieldCache = xsync.NewMapOf[reflect.Type, []fieldInfo]()

// recordToPlain converts a struct value into its tagged record form. The field
// dictionary holds the exported fields in declaration order, named by their
// json tag when one is present.
func recordToPlain(rv reflect.Value) (any, error) {
	t := rv.Type()

	fields, ok := fieldCache.Load(t)
	if !ok {
		fields = recordFields(t)
		fieldCache.Store(t, fields)
	}

	dict := make(map[string]any, len(fields))
	for _, field := range fields {
		converted, err := ToPlain(rv.Field(field.index).Interface())
		if err != nil {
			return nil, err
		}
		dict[field.name] = converted
	}

	return map[string]any{
		TagKey:  t.Name(),
		DictKey: dict,
	}, nil
}

// recordFields computes the field layout of a record type
func recordFields(t reflect.Type) []fieldInfo {
	fields := make([]fieldInfo, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("json"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}
		fields = append(fields, fieldInfo{name: name, index: i})
	}
	return fields
}

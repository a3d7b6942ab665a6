package urlq

import (
	"errors"
	"reflect"
	"strconv"
	"sync"

	"github.com/zoobzio/sentinel"
)

func init() {
	// Register the binding tag with sentinel
	sentinel.Tag("query")
}

// fieldPlan describes how one struct field maps to a query parameter.
type fieldPlan struct {
	index         []int        // reflect.Value.FieldByIndex access path
	name          string       // struct field name for error messages
	key           string       // query parameter name from the tag
	kind          reflect.Kind // field kind for conversion dispatch
	isStringSlice bool         // true for []string fields
}

// bindPlan holds the field plans for one struct type.
type bindPlan struct {
	typeName string
	fields   []fieldPlan
}

var (
	plans   = make(map[reflect.Type]*bindPlan)
	plansMu sync.RWMutex
)

// planFor returns a cached bind plan or builds a new one.
func planFor[T any]() (*bindPlan, error) {
	typ := reflect.TypeFor[T]()

	// Fast path: read-lock cache check
	plansMu.RLock()
	if cached, ok := plans[typ]; ok {
		plansMu.RUnlock()
		return cached, nil
	}
	plansMu.RUnlock()

	// Slow path: build and cache with write-lock
	plansMu.Lock()
	defer plansMu.Unlock()

	// Double-check pattern
	if cached, ok := plans[typ]; ok {
		return cached, nil
	}

	plan, err := buildPlan[T]()
	if err != nil {
		return nil, err
	}

	plans[typ] = plan
	return plan, nil
}

// buildPlan creates field plans for type T by scanning struct tags.
func buildPlan[T any]() (*bindPlan, error) {
	spec := sentinel.Scan[T]()
	plan := &bindPlan{typeName: spec.TypeName}

	for _, field := range spec.Fields {
		key, ok := field.Tags["query"]
		if !ok || key == "" || key == "-" {
			continue
		}

		fp := fieldPlan{
			index: field.Index,
			name:  field.Name,
			key:   key,
			kind:  field.ReflectType.Kind(),
		}

		switch fp.kind {
		case reflect.String, reflect.Bool,
			reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
		case reflect.Slice:
			if field.ReflectType.Elem().Kind() != reflect.String {
				return nil, newBindError(ErrUnsupportedKind, field.Name, nil)
			}
			fp.isStringSlice = true
		default:
			return nil, newBindError(ErrUnsupportedKind, field.Name, nil)
		}

		plan.fields = append(plan.fields, fp)
	}

	return plan, nil
}

// Bind decodes a Collection into a fresh T using `query` struct tags.
// Absent parameters leave their fields at the zero value; conversion
// failures report a BindError wrapping ErrBind.
//
//	type Page struct {
//	    Limit  int      `query:"limit"`
//	    Cursor string   `query:"cursor"`
//	    Tags   []string `query:"tag"`
//	}
//
//	page, err := urlq.Bind[Page](c)
func Bind[T any](c *Collection) (*T, error) {
	plan, err := planFor[T]()
	if err != nil {
		return nil, err
	}

	out := new(T)
	rv := reflect.ValueOf(out).Elem()

	for _, fp := range plan.fields {
		values := c.GetAll(fp.key)
		if len(values) == 0 {
			continue
		}
		if err := setField(rv.FieldByIndex(fp.index), fp, values); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Marshal encodes v's tagged fields into a new Collection, in field
// declaration order. []string fields contribute one pair per element.
func Marshal[T any](v *T) (*Collection, error) {
	plan, err := planFor[T]()
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, newBindError(ErrBind, plan.typeName, errors.New("nil value"))
	}

	rv := reflect.ValueOf(v).Elem()
	c := New()

	for _, fp := range plan.fields {
		fv := rv.FieldByIndex(fp.index)

		if fp.isStringSlice {
			for i := 0; i < fv.Len(); i++ {
				c.Add(fp.key, fv.Index(i).String())
			}
			continue
		}

		switch fp.kind {
		case reflect.String:
			c.Add(fp.key, fv.String())
		case reflect.Bool:
			c.Add(fp.key, strconv.FormatBool(fv.Bool()))
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			c.Add(fp.key, strconv.FormatInt(fv.Int(), 10))
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			c.Add(fp.key, strconv.FormatUint(fv.Uint(), 10))
		case reflect.Float32, reflect.Float64:
			c.Add(fp.key, strconv.FormatFloat(fv.Float(), 'f', -1, fv.Type().Bits()))
		}
	}

	return c, nil
}

// setField converts values into fv according to the field plan.
func setField(fv reflect.Value, fp fieldPlan, values []string) error {
	if fp.isStringSlice {
		fv.Set(reflect.ValueOf(append([]string(nil), values...)))
		return nil
	}

	switch fp.kind {
	case reflect.String:
		fv.SetString(values[0])
	case reflect.Bool:
		b, err := strconv.ParseBool(values[0])
		if err != nil {
			return newBindError(ErrBind, fp.name, err)
		}
		fv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(values[0], 10, fv.Type().Bits())
		if err != nil {
			return newBindError(ErrBind, fp.name, err)
		}
		fv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(values[0], 10, fv.Type().Bits())
		if err != nil {
			return newBindError(ErrBind, fp.name, err)
		}
		fv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(values[0], fv.Type().Bits())
		if err != nil {
			return newBindError(ErrBind, fp.name, err)
		}
		fv.SetFloat(f)
	}

	return nil
}

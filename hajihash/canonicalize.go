package hajihash

import (
	"encoding"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"unicode/utf8"

	json "github.com/goccy/go-json"
)

// CanonVersion names the canonicalization rules implemented by Canonicalize.
// Any change to those rules changes digests and must bump this value.
const CanonVersion = "hajihash-canon-1"

const maxNestingDepth = 512

var (
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
	jsonMarshalerType = reflect.TypeOf((*json.Marshaler)(nil)).Elem()
	errorType         = reflect.TypeOf((*error)(nil)).Elem()
	stringerType      = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
)

// Canonicalize is the single mandatory canonicalization choke point.
//
// Every digest, check word and verification computed by this package passes
// through it, using Permissive mode. The returned bytes are a fresh copy.
//
// Rules (hajihash-canon-1), first match wins:
//   - nil, nil pointers and nil interfaces: "null"
//   - encoding.TextMarshaler: MarshalText output, which must be UTF-8
//   - byte slices and byte arrays: the bytes themselves, hashed as-is
//   - error / fmt.Stringer on non-scalar values: Error()/String(), Permissive only
//   - strings: unchanged, must be UTF-8
//   - bools: "true" / "false"
//   - integers: base-10
//   - floats: JSON number form; NaN and infinities only in Permissive mode
//   - complex numbers: strconv.FormatComplex with 'g' and shortest precision
//   - pointers: the canonical form of the pointee
//   - maps, slices, arrays, structs: compact JSON, sorted map keys, no HTML escaping;
//     nested error/Stringer values are encoded by their exported fields in
//     Permissive mode (so types with none collapse to {}) and rejected in Strict
//   - channels, functions, unsafe pointers: rejected
//   - more than 512 levels of nesting or indirection, cycles included: rejected
func Canonicalize(message any) ([]byte, error) {
	return CanonicalizeWithOptions(message, Options{})
}

// CanonicalizeWithOptions is Canonicalize with an explicit compliance mode.
func CanonicalizeWithOptions(message any, opts Options) ([]byte, error) {
	opts = opts.withDefaults()
	return canonicalValue(reflect.ValueOf(message), opts)
}

func canonicalValue(v reflect.Value, opts Options) ([]byte, error) {
	for derefs := 0; ; derefs++ {
		if derefs > maxNestingDepth {
			return nil, newError(KindCanonical, "HAJI-CANON-005", "value nested too deeply")
		}
		if !v.IsValid() {
			return []byte("null"), nil
		}
		if (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) && v.IsNil() {
			return []byte("null"), nil
		}
		if v.Type().Implements(textMarshalerType) && v.CanInterface() {
			text, err := v.Interface().(encoding.TextMarshaler).MarshalText()
			if err != nil {
				return nil, wrapError(KindCanonical, "HAJI-CANON-002", "MarshalText failed", err)
			}
			if !utf8.Valid(text) {
				return nil, newError(KindEncoding, "HAJI-ENC-001", "text form is not valid UTF-8")
			}
			return append([]byte(nil), text...), nil
		}
		if isByteSequence(v) {
			return rawBytes(v), nil
		}
		k, ok := indirectKind(v)
		if !ok {
			return nil, newError(KindCanonical, "HAJI-CANON-005", "value nested too deeply")
		}
		if !isScalarKind(k) && v.CanInterface() {
			if s, ok := describedText(v); ok {
				if opts.strict() {
					return nil, newError(KindCanonical, "HAJI-CANON-003", "Stringer/error text is not canonical in strict mode")
				}
				if !utf8.ValidString(s) {
					return nil, newError(KindEncoding, "HAJI-ENC-001", "text form is not valid UTF-8")
				}
				return []byte(s), nil
			}
		}
		if v.Kind() != reflect.Pointer && v.Kind() != reflect.Interface {
			break
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.String:
		s := v.String()
		if !utf8.ValidString(s) {
			return nil, newError(KindEncoding, "HAJI-ENC-001", "string is not valid UTF-8")
		}
		return []byte(s), nil
	case reflect.Bool:
		return []byte(strconv.FormatBool(v.Bool())), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return []byte(strconv.FormatInt(v.Int(), 10)), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return []byte(strconv.FormatUint(v.Uint(), 10)), nil
	case reflect.Float32, reflect.Float64:
		return canonicalFloat(v.Float(), v.Type().Bits(), opts)
	case reflect.Complex64, reflect.Complex128:
		return []byte(strconv.FormatComplex(v.Complex(), 'g', -1, v.Type().Bits())), nil
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		return canonicalComposite(v, opts)
	default:
		return nil, newError(KindCanonical, "HAJI-CANON-001", fmt.Sprintf("unsupported kind %s", v.Kind()))
	}
}

func canonicalFloat(f float64, bits int, opts Options) ([]byte, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		if opts.strict() {
			return nil, newError(KindCanonical, "HAJI-CANON-004", "non-finite float is not canonical in strict mode")
		}
		return []byte(strconv.FormatFloat(f, 'g', -1, bits)), nil
	}
	var (
		b   []byte
		err error
	)
	if bits == 32 {
		b, err = json.Marshal(float32(f))
	} else {
		b, err = json.Marshal(f)
	}
	if err != nil {
		return nil, wrapError(KindCanonical, "HAJI-CANON-002", "float cannot be encoded", err)
	}
	return b, nil
}

func canonicalComposite(v reflect.Value, opts Options) ([]byte, error) {
	if err := checkComposite(v, opts, 0); err != nil {
		return nil, err
	}
	if !v.CanInterface() {
		return nil, newError(KindCanonical, "HAJI-CANON-001", "value is not accessible")
	}
	b, err := json.MarshalWithOption(v.Interface(), json.DisableHTMLEscape())
	if err != nil {
		return nil, wrapError(KindCanonical, "HAJI-CANON-002", "composite value cannot be encoded", err)
	}
	return b, nil
}

// checkComposite walks the parts of v that the JSON encoder will visit and
// rejects what it cannot represent deterministically.
func checkComposite(v reflect.Value, opts Options, depth int) error {
	if depth > maxNestingDepth {
		return newError(KindCanonical, "HAJI-CANON-005", "value nested too deeply")
	}
	if !v.IsValid() {
		return nil
	}
	t := v.Type()
	if t.Implements(jsonMarshalerType) || t.Implements(textMarshalerType) {
		return nil
	}
	if (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) && v.IsNil() {
		return nil
	}
	// The encoder ignores String/Error and sees only exported fields.
	if opts.strict() && v.Kind() != reflect.Interface && (t.Implements(errorType) || t.Implements(stringerType)) {
		k, ok := indirectKind(v)
		if !ok {
			return newError(KindCanonical, "HAJI-CANON-005", "value nested too deeply")
		}
		if !isScalarKind(k) {
			return newError(KindCanonical, "HAJI-CANON-003", "nested Stringer/error is not canonical in strict mode")
		}
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		return checkComposite(v.Elem(), opts, depth+1)
	case reflect.String:
		if opts.strict() && !utf8.ValidString(v.String()) {
			return newError(KindEncoding, "HAJI-ENC-002", "nested string is not valid UTF-8")
		}
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return newError(KindCanonical, "HAJI-CANON-004", "nested non-finite float")
		}
	case reflect.Chan, reflect.Func, reflect.UnsafePointer, reflect.Complex64, reflect.Complex128:
		return newError(KindCanonical, "HAJI-CANON-001", fmt.Sprintf("unsupported nested kind %s", v.Kind()))
	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			return nil
		}
		for i := 0; i < v.Len(); i++ {
			if err := checkComposite(v.Index(i), opts, depth+1); err != nil {
				return err
			}
		}
	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			if err := checkComposite(iter.Key(), opts, depth+1); err != nil {
				return err
			}
			if err := checkComposite(iter.Value(), opts, depth+1); err != nil {
				return err
			}
		}
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() && !f.Anonymous {
				continue
			}
			if f.Tag.Get("json") == "-" {
				continue
			}
			if err := checkComposite(v.Field(i), opts, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

func describedText(v reflect.Value) (string, bool) {
	t := v.Type()
	switch {
	case t.Implements(errorType):
		return v.Interface().(error).Error(), true
	case t.Implements(stringerType):
		return v.Interface().(fmt.Stringer).String(), true
	}
	return "", false
}

// indirectKind reports the kind behind pointers and interfaces. It returns
// false when more than maxNestingDepth indirections are followed.
func indirectKind(v reflect.Value) (reflect.Kind, bool) {
	for n := 0; v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface; n++ {
		if n > maxNestingDepth {
			return v.Kind(), false
		}
		if v.IsNil() {
			return v.Kind(), true
		}
		v = v.Elem()
	}
	return v.Kind(), true
}

func isScalarKind(k reflect.Kind) bool {
	switch k {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}

func isByteSequence(v reflect.Value) bool {
	k := v.Kind()
	return (k == reflect.Slice || k == reflect.Array) && v.Type().Elem().Kind() == reflect.Uint8
}

func rawBytes(v reflect.Value) []byte {
	out := make([]byte, v.Len())
	for i := range out {
		out[i] = byte(v.Index(i).Uint())
	}
	return out
}

// Copyright (c) 2026 Neomantra Corp
//
// Conversion lattice: best-effort As* conversions between the ten numeric
// Dtypes, keyed purely on the (source, target) Dtype pair, never on the
// runtime value. Widening conversions (no loss of width, signedness, or
// precision) succeed; anything else either loses information (Narrowing) or
// crosses an incompatible kind boundary (Conversion): scalar<->array,
// numeric<->string.
//
// The table below mirrors representable.rs's doc-comment conversion matrix:
// columns are the source Dtype, rows are the target.
//
// |        | u8 | u16 | u32 | u64 | i8 | i16 | i32 | i64 | f32 | f64 |
// |--------|----|-----|-----|-----|----|-----|-----|-----|-----|-----|
// | u8     | x  |     |     |     |    |     |     |     |     |     |
// | u16    | x  | x   |     |     |    |     |     |     |     |     |
// | u32    | x  | x   | x   |     |    |     |     |     |     |     |
// | u64    | x  | x   | x   | x   |    |     |     |     |     |     |
// | i8     |    |     |     |     | x  |     |     |     |     |     |
// | i16    | x  |     |     |     | x  | x   |     |     |     |     |
// | i32    | x  | x   |     |     | x  | x   | x   |     |     |     |
// | i64    | x  | x   | x   |     | x  | x   | x   | x   |     |     |
// | f32    | x  | x   |     |     | x  | x   |     |     | x   |     |
// | f64    | x  | x   | x   |     | x  | x   | x   |     | x   | x   |

package elucidator

var widensInto = map[Dtype]map[Dtype]bool{
	Byte: {Byte: true},
	U16:  {Byte: true, U16: true},
	U32:  {Byte: true, U16: true, U32: true},
	U64:  {Byte: true, U16: true, U32: true, U64: true},
	I8:   {I8: true},
	I16:  {Byte: true, I8: true, I16: true},
	I32:  {Byte: true, U16: true, I8: true, I16: true, I32: true},
	I64:  {Byte: true, U16: true, U32: true, I8: true, I16: true, I32: true, I64: true},
	F32:  {Byte: true, U16: true, I8: true, I16: true, F32: true},
	F64:  {Byte: true, U16: true, U32: true, I8: true, I16: true, I32: true, F32: true, F64: true},
}

func canWiden(target, source Dtype) bool {
	row, ok := widensInto[target]
	if !ok {
		return false
	}
	return row[source]
}

// checkConvert enforces the shared pre-flight for every As* method: kind
// (scalar vs array) must match, Str only converts to Str, and the target
// Dtype must be reachable from v's Dtype in the widening lattice above.
func (v Value) checkConvert(target Dtype, wantArray bool) error {
	if v.isArray != wantArray {
		return &ConversionError{From: kindName(v.dtype, v.isArray), To: kindName(target, wantArray)}
	}
	if v.dtype == Str || target == Str {
		if v.dtype == target {
			return nil
		}
		return &ConversionError{From: v.dtype.String(), To: target.String()}
	}
	if !canWiden(target, v.dtype) {
		return &NarrowingError{From: v.dtype.String(), To: target.String()}
	}
	return nil
}

func kindName(dt Dtype, isArray bool) string {
	if isArray {
		return "array of " + dt.String()
	}
	return dt.String()
}

// AsString returns v's string payload, or a ConversionError if v is not a Str.
func (v Value) AsString() (string, error) {
	if err := v.checkConvert(Str, false); err != nil {
		return "", err
	}
	return v.scalar.(string), nil
}

func (v Value) AsU8() (uint8, error)  { return asScalar[uint8](v, Byte) }
func (v Value) AsU16() (uint16, error) { return asScalarWiden[uint16](v, U16) }
func (v Value) AsU32() (uint32, error) { return asScalarWiden[uint32](v, U32) }
func (v Value) AsU64() (uint64, error) { return asScalarWiden[uint64](v, U64) }
func (v Value) AsI8() (int8, error)   { return asScalar[int8](v, I8) }
func (v Value) AsI16() (int16, error) { return asScalarWiden[int16](v, I16) }
func (v Value) AsI32() (int32, error) { return asScalarWiden[int32](v, I32) }
func (v Value) AsI64() (int64, error) { return asScalarWiden[int64](v, I64) }
func (v Value) AsF32() (float32, error) { return asScalarWiden[float32](v, F32) }
func (v Value) AsF64() (float64, error) { return asScalarWiden[float64](v, F64) }

// asScalar is used by the two targets (u8, i8) that only accept their own
// Dtype as source: no widening candidates exist below them.
func asScalar[T any](v Value, target Dtype) (T, error) {
	var zero T
	if err := v.checkConvert(target, false); err != nil {
		return zero, err
	}
	return v.scalar.(T), nil
}

// asScalarWiden performs a target conversion that may have multiple valid
// source Dtypes; it dispatches on v's actual Dtype and widens via Go's
// native numeric conversion, which can never narrow once checkConvert has
// approved the (source, target) pair.
func asScalarWiden[T interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}](v Value, target Dtype) (T, error) {
	var zero T
	if err := v.checkConvert(target, false); err != nil {
		return zero, err
	}
	switch s := v.scalar.(type) {
	case uint8:
		return T(s), nil
	case uint16:
		return T(s), nil
	case uint32:
		return T(s), nil
	case uint64:
		return T(s), nil
	case int8:
		return T(s), nil
	case int16:
		return T(s), nil
	case int32:
		return T(s), nil
	case int64:
		return T(s), nil
	case float32:
		return T(s), nil
	case float64:
		return T(s), nil
	default:
		return zero, &ConversionError{From: v.dtype.String(), To: target.String()}
	}
}

func (v Value) AsVecU8() ([]uint8, error)   { return asArray[uint8](v, Byte) }
func (v Value) AsVecU16() ([]uint16, error) { return asArrayWiden[uint16](v, U16) }
func (v Value) AsVecU32() ([]uint32, error) { return asArrayWiden[uint32](v, U32) }
func (v Value) AsVecU64() ([]uint64, error) { return asArrayWiden[uint64](v, U64) }
func (v Value) AsVecI8() ([]int8, error)    { return asArray[int8](v, I8) }
func (v Value) AsVecI16() ([]int16, error)  { return asArrayWiden[int16](v, I16) }
func (v Value) AsVecI32() ([]int32, error)  { return asArrayWiden[int32](v, I32) }
func (v Value) AsVecI64() ([]int64, error)  { return asArrayWiden[int64](v, I64) }
func (v Value) AsVecF32() ([]float32, error) { return asArrayWiden[float32](v, F32) }
func (v Value) AsVecF64() ([]float64, error) { return asArrayWiden[float64](v, F64) }

func asArray[T any](v Value, target Dtype) ([]T, error) {
	if err := v.checkConvert(target, true); err != nil {
		return nil, err
	}
	return v.array.([]T), nil
}

func asArrayWiden[T interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}](v Value, target Dtype) ([]T, error) {
	if err := v.checkConvert(target, true); err != nil {
		return nil, err
	}
	out := make([]T, reflectLen(v.array))
	switch s := v.array.(type) {
	case []uint8:
		for i, x := range s {
			out[i] = T(x)
		}
	case []uint16:
		for i, x := range s {
			out[i] = T(x)
		}
	case []uint32:
		for i, x := range s {
			out[i] = T(x)
		}
	case []uint64:
		for i, x := range s {
			out[i] = T(x)
		}
	case []int8:
		for i, x := range s {
			out[i] = T(x)
		}
	case []int16:
		for i, x := range s {
			out[i] = T(x)
		}
	case []int32:
		for i, x := range s {
			out[i] = T(x)
		}
	case []int64:
		for i, x := range s {
			out[i] = T(x)
		}
	case []float32:
		for i, x := range s {
			out[i] = T(x)
		}
	case []float64:
		for i, x := range s {
			out[i] = T(x)
		}
	default:
		return nil, &ConversionError{From: v.dtype.String(), To: target.String()}
	}
	return out, nil
}

func reflectLen(array any) int {
	switch s := array.(type) {
	case []uint8:
		return len(s)
	case []uint16:
		return len(s)
	case []uint32:
		return len(s)
	case []uint64:
		return len(s)
	case []int8:
		return len(s)
	case []int16:
		return len(s)
	case []int32:
		return len(s)
	case []int64:
		return len(s)
	case []float32:
		return len(s)
	case []float64:
		return len(s)
	default:
		return 0
	}
}

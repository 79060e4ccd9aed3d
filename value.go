// Copyright (c) 2026 Neomantra Corp

package elucidator

import (
	"encoding/binary"
	"encoding/json"
	"math"
	"unicode/utf8"
)

// Value is a tagged variant holding one decoded or to-be-encoded member
// value: exactly one of Dtype's ten numeric kinds (scalar or array) or a
// scalar string. A single tagged type replaces the capability-interface
// pattern of a Representable-per-leaf-type design: callers switch on Dtype
// and IsArray, then use the As* conversion methods in convert.go.
type Value struct {
	dtype   Dtype
	isArray bool
	scalar  any // uint8/uint16/.../float64/string, matching dtype
	array   any // []uint8/.../[]float64, matching dtype; never set for Str
}

func (v Value) Dtype() Dtype   { return v.dtype }
func (v Value) IsArray() bool  { return v.isArray }

// MarshalJSON renders v as its underlying scalar or array, since Value's
// fields are unexported and the default struct marshaling would otherwise
// produce an empty object. A Byte array renders as a base64 string, matching
// encoding/json's own treatment of []byte; every other numeric array renders
// as a JSON array of numbers, and Str renders as a JSON string.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.dtype == Str {
		return json.Marshal(v.scalar.(string))
	}
	if !v.isArray {
		return json.Marshal(v.scalar)
	}
	return json.Marshal(v.array)
}

func newScalarValue(dt Dtype, scalar any) Value {
	return Value{dtype: dt, scalar: scalar}
}

func newArrayValue(dt Dtype, array any) Value {
	return Value{dtype: dt, isArray: true, array: array}
}

func NewByteValue(v uint8) Value   { return newScalarValue(Byte, v) }
func NewU16Value(v uint16) Value   { return newScalarValue(U16, v) }
func NewU32Value(v uint32) Value   { return newScalarValue(U32, v) }
func NewU64Value(v uint64) Value   { return newScalarValue(U64, v) }
func NewI8Value(v int8) Value      { return newScalarValue(I8, v) }
func NewI16Value(v int16) Value    { return newScalarValue(I16, v) }
func NewI32Value(v int32) Value    { return newScalarValue(I32, v) }
func NewI64Value(v int64) Value    { return newScalarValue(I64, v) }
func NewF32Value(v float32) Value  { return newScalarValue(F32, v) }
func NewF64Value(v float64) Value  { return newScalarValue(F64, v) }
func NewStrValue(v string) Value   { return newScalarValue(Str, v) }

func NewByteArrayValue(v []uint8) Value   { return newArrayValue(Byte, v) }
func NewU16ArrayValue(v []uint16) Value   { return newArrayValue(U16, v) }
func NewU32ArrayValue(v []uint32) Value   { return newArrayValue(U32, v) }
func NewU64ArrayValue(v []uint64) Value   { return newArrayValue(U64, v) }
func NewI8ArrayValue(v []int8) Value      { return newArrayValue(I8, v) }
func NewI16ArrayValue(v []int16) Value    { return newArrayValue(I16, v) }
func NewI32ArrayValue(v []int32) Value    { return newArrayValue(I32, v) }
func NewI64ArrayValue(v []int64) Value    { return newArrayValue(I64, v) }
func NewF32ArrayValue(v []float32) Value  { return newArrayValue(F32, v) }
func NewF64ArrayValue(v []float64) Value  { return newArrayValue(F64, v) }

// AsBuffer renders v as its little-endian wire encoding. Str is the 8-byte LE
// length prefix followed by UTF-8 bytes; numeric scalars are sizeof(dtype)
// bytes; numeric arrays are the concatenation of each element's bytes with
// no length prefix (the prefix, when the member is Dynamic, is the codec's
// responsibility, not the value's).
func (v Value) AsBuffer() []byte {
	if v.dtype == Str {
		s := v.scalar.(string)
		buf := make([]byte, 8+len(s))
		binary.LittleEndian.PutUint64(buf, uint64(len(s)))
		copy(buf[8:], s)
		return buf
	}
	if !v.isArray {
		buf := make([]byte, v.dtype.Size())
		putScalarLE(buf, v.dtype, v.scalar)
		return buf
	}
	return encodeArrayLE(v.dtype, v.array)
}

func putScalarLE(buf []byte, dt Dtype, scalar any) {
	switch dt {
	case Byte:
		buf[0] = scalar.(uint8)
	case U16:
		binary.LittleEndian.PutUint16(buf, scalar.(uint16))
	case U32:
		binary.LittleEndian.PutUint32(buf, scalar.(uint32))
	case U64:
		binary.LittleEndian.PutUint64(buf, scalar.(uint64))
	case I8:
		buf[0] = uint8(scalar.(int8))
	case I16:
		binary.LittleEndian.PutUint16(buf, uint16(scalar.(int16)))
	case I32:
		binary.LittleEndian.PutUint32(buf, uint32(scalar.(int32)))
	case I64:
		binary.LittleEndian.PutUint64(buf, uint64(scalar.(int64)))
	case F32:
		binary.LittleEndian.PutUint32(buf, math.Float32bits(scalar.(float32)))
	case F64:
		binary.LittleEndian.PutUint64(buf, math.Float64bits(scalar.(float64)))
	}
}

func encodeArrayLE(dt Dtype, array any) []byte {
	switch a := array.(type) {
	case []uint8:
		return append([]byte(nil), a...)
	case []uint16:
		buf := make([]byte, 2*len(a))
		for i, x := range a {
			binary.LittleEndian.PutUint16(buf[i*2:], x)
		}
		return buf
	case []uint32:
		buf := make([]byte, 4*len(a))
		for i, x := range a {
			binary.LittleEndian.PutUint32(buf[i*4:], x)
		}
		return buf
	case []uint64:
		buf := make([]byte, 8*len(a))
		for i, x := range a {
			binary.LittleEndian.PutUint64(buf[i*8:], x)
		}
		return buf
	case []int8:
		buf := make([]byte, len(a))
		for i, x := range a {
			buf[i] = uint8(x)
		}
		return buf
	case []int16:
		buf := make([]byte, 2*len(a))
		for i, x := range a {
			binary.LittleEndian.PutUint16(buf[i*2:], uint16(x))
		}
		return buf
	case []int32:
		buf := make([]byte, 4*len(a))
		for i, x := range a {
			binary.LittleEndian.PutUint32(buf[i*4:], uint32(x))
		}
		return buf
	case []int64:
		buf := make([]byte, 8*len(a))
		for i, x := range a {
			binary.LittleEndian.PutUint64(buf[i*8:], uint64(x))
		}
		return buf
	case []float32:
		buf := make([]byte, 4*len(a))
		for i, x := range a {
			binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(x))
		}
		return buf
	case []float64:
		buf := make([]byte, 8*len(a))
		for i, x := range a {
			binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(x))
		}
		return buf
	default:
		return nil
	}
}

// decodeScalar reads one scalar value of dt from the front of buf, returning
// the value and the number of bytes consumed.
func decodeScalar(buf []byte, dt Dtype) (Value, int, error) {
	if dt == Str {
		if len(buf) < 8 {
			return Value{}, 0, &BufferSizingError{Expected: 8, Found: len(buf)}
		}
		n := int(binary.LittleEndian.Uint64(buf))
		if len(buf) < 8+n {
			return Value{}, 0, &BufferSizingError{Expected: 8 + n, Found: len(buf)}
		}
		raw := buf[8 : 8+n]
		if !utf8.Valid(raw) {
			return Value{}, 0, &FromUtf8Error{Source: errInvalidUTF8}
		}
		return NewStrValue(string(raw)), 8 + n, nil
	}
	size := dt.Size()
	if len(buf) < size {
		return Value{}, 0, &BufferSizingError{Expected: size, Found: len(buf)}
	}
	switch dt {
	case Byte:
		return NewByteValue(buf[0]), size, nil
	case U16:
		return NewU16Value(binary.LittleEndian.Uint16(buf)), size, nil
	case U32:
		return NewU32Value(binary.LittleEndian.Uint32(buf)), size, nil
	case U64:
		return NewU64Value(binary.LittleEndian.Uint64(buf)), size, nil
	case I8:
		return NewI8Value(int8(buf[0])), size, nil
	case I16:
		return NewI16Value(int16(binary.LittleEndian.Uint16(buf))), size, nil
	case I32:
		return NewI32Value(int32(binary.LittleEndian.Uint32(buf))), size, nil
	case I64:
		return NewI64Value(int64(binary.LittleEndian.Uint64(buf))), size, nil
	case F32:
		return NewF32Value(math.Float32frombits(binary.LittleEndian.Uint32(buf))), size, nil
	case F64:
		return NewF64Value(math.Float64frombits(binary.LittleEndian.Uint64(buf))), size, nil
	default:
		return Value{}, 0, &BufferSizingError{Expected: size, Found: len(buf)}
	}
}

// decodeArray reads n elements of dt from the front of buf, returning the
// array value and the number of bytes consumed.
func decodeArray(buf []byte, dt Dtype, n int) (Value, int, error) {
	size := dt.Size()
	needed := size * n
	if len(buf) < needed {
		return Value{}, 0, &BufferSizingError{Expected: needed, Found: len(buf)}
	}
	switch dt {
	case Byte:
		out := append([]uint8(nil), buf[:n]...)
		return NewByteArrayValue(out), needed, nil
	case U16:
		out := make([]uint16, n)
		for i := range out {
			out[i] = binary.LittleEndian.Uint16(buf[i*2:])
		}
		return NewU16ArrayValue(out), needed, nil
	case U32:
		out := make([]uint32, n)
		for i := range out {
			out[i] = binary.LittleEndian.Uint32(buf[i*4:])
		}
		return NewU32ArrayValue(out), needed, nil
	case U64:
		out := make([]uint64, n)
		for i := range out {
			out[i] = binary.LittleEndian.Uint64(buf[i*8:])
		}
		return NewU64ArrayValue(out), needed, nil
	case I8:
		out := make([]int8, n)
		for i := range out {
			out[i] = int8(buf[i])
		}
		return NewI8ArrayValue(out), needed, nil
	case I16:
		out := make([]int16, n)
		for i := range out {
			out[i] = int16(binary.LittleEndian.Uint16(buf[i*2:]))
		}
		return NewI16ArrayValue(out), needed, nil
	case I32:
		out := make([]int32, n)
		for i := range out {
			out[i] = int32(binary.LittleEndian.Uint32(buf[i*4:]))
		}
		return NewI32ArrayValue(out), needed, nil
	case I64:
		out := make([]int64, n)
		for i := range out {
			out[i] = int64(binary.LittleEndian.Uint64(buf[i*8:]))
		}
		return NewI64ArrayValue(out), needed, nil
	case F32:
		out := make([]float32, n)
		for i := range out {
			out[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
		}
		return NewF32ArrayValue(out), needed, nil
	case F64:
		out := make([]float64, n)
		for i := range out {
			out[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[i*8:]))
		}
		return NewF64ArrayValue(out), needed, nil
	default:
		return Value{}, 0, &BufferSizingError{Expected: needed, Found: len(buf)}
	}
}

var errInvalidUTF8 = &utf8Error{}

type utf8Error struct{}

func (*utf8Error) Error() string { return "invalid UTF-8 byte sequence" }

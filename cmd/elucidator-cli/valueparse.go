// Copyright (c) 2026 Neomantra Corp
//
// Parses "field=value" CLI arguments into elucidator.Value instances for the
// encode subcommand, and renders decoded elucidator.Value instances back to
// text for the decode/query subcommands. Arrays are written "[v1,v2,...]".

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/neomantra/elucidator-go"
)

func parseFieldValue(m elucidator.Member, text string) (elucidator.Value, error) {
	if m.Dtype == elucidator.Str {
		return elucidator.NewStrValue(text), nil
	}
	if !m.Sizing.IsArray() {
		return parseScalar(m.Dtype, text)
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(text, "["), "]")
	var parts []string
	if inner != "" {
		parts = strings.Split(inner, ",")
	}
	return parseArray(m.Dtype, parts)
}

func parseScalar(dt elucidator.Dtype, text string) (elucidator.Value, error) {
	text = strings.TrimSpace(text)
	switch dt {
	case elucidator.Byte:
		v, err := strconv.ParseUint(text, 10, 8)
		return elucidator.NewByteValue(uint8(v)), err
	case elucidator.U16:
		v, err := strconv.ParseUint(text, 10, 16)
		return elucidator.NewU16Value(uint16(v)), err
	case elucidator.U32:
		v, err := strconv.ParseUint(text, 10, 32)
		return elucidator.NewU32Value(uint32(v)), err
	case elucidator.U64:
		v, err := strconv.ParseUint(text, 10, 64)
		return elucidator.NewU64Value(v), err
	case elucidator.I8:
		v, err := strconv.ParseInt(text, 10, 8)
		return elucidator.NewI8Value(int8(v)), err
	case elucidator.I16:
		v, err := strconv.ParseInt(text, 10, 16)
		return elucidator.NewI16Value(int16(v)), err
	case elucidator.I32:
		v, err := strconv.ParseInt(text, 10, 32)
		return elucidator.NewI32Value(int32(v)), err
	case elucidator.I64:
		v, err := strconv.ParseInt(text, 10, 64)
		return elucidator.NewI64Value(v), err
	case elucidator.F32:
		v, err := strconv.ParseFloat(text, 32)
		return elucidator.NewF32Value(float32(v)), err
	case elucidator.F64:
		v, err := strconv.ParseFloat(text, 64)
		return elucidator.NewF64Value(v), err
	default:
		return elucidator.Value{}, fmt.Errorf("unsupported dtype %s", dt)
	}
}

func parseArray(dt elucidator.Dtype, parts []string) (elucidator.Value, error) {
	switch dt {
	case elucidator.Byte:
		out := make([]uint8, len(parts))
		for i, p := range parts {
			v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
			if err != nil {
				return elucidator.Value{}, err
			}
			out[i] = uint8(v)
		}
		return elucidator.NewByteArrayValue(out), nil
	case elucidator.U16:
		out := make([]uint16, len(parts))
		for i, p := range parts {
			v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 16)
			if err != nil {
				return elucidator.Value{}, err
			}
			out[i] = uint16(v)
		}
		return elucidator.NewU16ArrayValue(out), nil
	case elucidator.U32:
		out := make([]uint32, len(parts))
		for i, p := range parts {
			v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 32)
			if err != nil {
				return elucidator.Value{}, err
			}
			out[i] = uint32(v)
		}
		return elucidator.NewU32ArrayValue(out), nil
	case elucidator.U64:
		out := make([]uint64, len(parts))
		for i, p := range parts {
			v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
			if err != nil {
				return elucidator.Value{}, err
			}
			out[i] = v
		}
		return elucidator.NewU64ArrayValue(out), nil
	case elucidator.I8:
		out := make([]int8, len(parts))
		for i, p := range parts {
			v, err := strconv.ParseInt(strings.TrimSpace(p), 10, 8)
			if err != nil {
				return elucidator.Value{}, err
			}
			out[i] = int8(v)
		}
		return elucidator.NewI8ArrayValue(out), nil
	case elucidator.I16:
		out := make([]int16, len(parts))
		for i, p := range parts {
			v, err := strconv.ParseInt(strings.TrimSpace(p), 10, 16)
			if err != nil {
				return elucidator.Value{}, err
			}
			out[i] = int16(v)
		}
		return elucidator.NewI16ArrayValue(out), nil
	case elucidator.I32:
		out := make([]int32, len(parts))
		for i, p := range parts {
			v, err := strconv.ParseInt(strings.TrimSpace(p), 10, 32)
			if err != nil {
				return elucidator.Value{}, err
			}
			out[i] = int32(v)
		}
		return elucidator.NewI32ArrayValue(out), nil
	case elucidator.I64:
		out := make([]int64, len(parts))
		for i, p := range parts {
			v, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
			if err != nil {
				return elucidator.Value{}, err
			}
			out[i] = v
		}
		return elucidator.NewI64ArrayValue(out), nil
	case elucidator.F32:
		out := make([]float32, len(parts))
		for i, p := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
			if err != nil {
				return elucidator.Value{}, err
			}
			out[i] = float32(v)
		}
		return elucidator.NewF32ArrayValue(out), nil
	case elucidator.F64:
		out := make([]float64, len(parts))
		for i, p := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return elucidator.Value{}, err
			}
			out[i] = v
		}
		return elucidator.NewF64ArrayValue(out), nil
	default:
		return elucidator.Value{}, fmt.Errorf("unsupported array dtype %s", dt)
	}
}

// formatValue renders v using the As* accessor matching its own Dtype
// (always the safe self-conversion, never a lossy widening guess), so u64
// and i64 print exactly rather than being routed through float64.
func formatValue(v elucidator.Value) string {
	if v.Dtype() == elucidator.Str {
		s, _ := v.AsString()
		return s
	}
	if !v.IsArray() {
		return formatScalar(v)
	}
	return "[" + formatArray(v) + "]"
}

func formatScalar(v elucidator.Value) string {
	switch v.Dtype() {
	case elucidator.Byte:
		x, _ := v.AsU8()
		return strconv.FormatUint(uint64(x), 10)
	case elucidator.U16:
		x, _ := v.AsU16()
		return strconv.FormatUint(uint64(x), 10)
	case elucidator.U32:
		x, _ := v.AsU32()
		return strconv.FormatUint(uint64(x), 10)
	case elucidator.U64:
		x, _ := v.AsU64()
		return strconv.FormatUint(x, 10)
	case elucidator.I8:
		x, _ := v.AsI8()
		return strconv.FormatInt(int64(x), 10)
	case elucidator.I16:
		x, _ := v.AsI16()
		return strconv.FormatInt(int64(x), 10)
	case elucidator.I32:
		x, _ := v.AsI32()
		return strconv.FormatInt(int64(x), 10)
	case elucidator.I64:
		x, _ := v.AsI64()
		return strconv.FormatInt(x, 10)
	case elucidator.F32:
		x, _ := v.AsF32()
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case elucidator.F64:
		x, _ := v.AsF64()
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func formatArray(v elucidator.Value) string {
	var parts []string
	switch v.Dtype() {
	case elucidator.Byte:
		xs, _ := v.AsVecU8()
		for _, x := range xs {
			parts = append(parts, strconv.FormatUint(uint64(x), 10))
		}
	case elucidator.U16:
		xs, _ := v.AsVecU16()
		for _, x := range xs {
			parts = append(parts, strconv.FormatUint(uint64(x), 10))
		}
	case elucidator.U32:
		xs, _ := v.AsVecU32()
		for _, x := range xs {
			parts = append(parts, strconv.FormatUint(uint64(x), 10))
		}
	case elucidator.U64:
		xs, _ := v.AsVecU64()
		for _, x := range xs {
			parts = append(parts, strconv.FormatUint(x, 10))
		}
	case elucidator.I8:
		xs, _ := v.AsVecI8()
		for _, x := range xs {
			parts = append(parts, strconv.FormatInt(int64(x), 10))
		}
	case elucidator.I16:
		xs, _ := v.AsVecI16()
		for _, x := range xs {
			parts = append(parts, strconv.FormatInt(int64(x), 10))
		}
	case elucidator.I32:
		xs, _ := v.AsVecI32()
		for _, x := range xs {
			parts = append(parts, strconv.FormatInt(int64(x), 10))
		}
	case elucidator.I64:
		xs, _ := v.AsVecI64()
		for _, x := range xs {
			parts = append(parts, strconv.FormatInt(x, 10))
		}
	case elucidator.F32:
		xs, _ := v.AsVecF32()
		for _, x := range xs {
			parts = append(parts, strconv.FormatFloat(float64(x), 'g', -1, 32))
		}
	case elucidator.F64:
		xs, _ := v.AsVecF64()
		for _, x := range xs {
			parts = append(parts, strconv.FormatFloat(x, 'g', -1, 64))
		}
	}
	return strings.Join(parts, ",")
}

// Copyright (c) 2026 Neomantra Corp
//
// Designation is the schema governing one family of binary records: an
// ordered, named, typed set of members describing exactly how a buffer for
// that designation is laid out. FromText parses and validates designation
// specification text in one step; Interpret/Encode are its binary codec.

package elucidator

import (
	"fmt"
	"strings"
)

// Member is one field of a Designation: a validated identifier paired with
// its Dtype and Sizing.
type Member struct {
	Identifier string
	Dtype      Dtype
	Sizing     Sizing
}

// Designation is an ordered, immutable sequence of Members. Equality is
// sequence equality.
type Designation struct {
	Members []Member
}

// FromText parses and validates designation specification text, e.g.
// "x: f64, tag: string, samples: u16[]". An empty or all-whitespace text yields
// a Designation with zero members. Every fault found across every member is
// reported together: several faults as a flattened *MultiError, a single
// fault as that error on its own.
func FromText(text string) (Designation, error) {
	parsed := getDesignationSpec(text)

	var members []Member
	var errs []error
	seen := make(map[string]bool, len(parsed.members))
	for i, pm := range parsed.members {
		member, err := validateMemberSpec(pm, parsed.memberErrs[i])
		if err != nil {
			errs = append(errs, convertParsingErrors(err, text)...)
			continue
		}
		if seen[member.Identifier] {
			errs = append(errs, &SpecificationError{
				Offender: member.Identifier,
				Reason:   RepeatedIdentifier,
			})
			continue
		}
		seen[member.Identifier] = true
		members = append(members, member)
	}

	if len(errs) > 0 {
		return Designation{}, MergeErrors(errs...)
	}
	return Designation{Members: members}, nil
}

// convertParsingErrors renders a validation-time error (ParsingError,
// SpecificationError, or a flattened *MultiError of either) into the
// diagnostic-bearing errors reported to callers, attaching source context
// for any ParsingError found.
func convertParsingErrors(err error, text string) []error {
	switch e := err.(type) {
	case *MultiError:
		var out []error
		for _, inner := range e.Errors {
			out = append(out, convertParsingErrors(inner, text)...)
		}
		return out
	case *ParsingError:
		return []error{&DiagnosticError{Context: FormatDiagnostic(text, e), Inner: e}}
	default:
		return []error{err}
	}
}

// DiagnosticError wraps an underlying fault with the source-line and caret
// context it was found at, matching the context+caret diagnostic format.
type DiagnosticError struct {
	Context string
	Inner   error
}

func (e *DiagnosticError) Error() string { return fmt.Sprintf("%s\n%s", e.Context, e.Inner) }
func (e *DiagnosticError) Unwrap() error { return e.Inner }

// Interpret decodes buffer against designation d, returning every member's
// value keyed by identifier. Decoding proceeds sequentially through the
// buffer in member-declaration order, since Dynamic members carry an 8-byte
// length prefix that must be consumed before the next member can be located.
// Decode fails fast on the first member whose bytes cannot be read.
func (d Designation) Interpret(buffer []byte) (map[string]Value, error) {
	out := make(map[string]Value, len(d.Members))
	pos := 0
	for _, m := range d.Members {
		switch m.Sizing.Kind {
		case Singleton:
			v, n, err := decodeScalar(buffer[pos:], m.Dtype)
			if err != nil {
				return nil, err
			}
			out[m.Identifier] = v
			pos += n
		case Fixed:
			v, n, err := decodeArray(buffer[pos:], m.Dtype, int(m.Sizing.Count))
			if err != nil {
				return nil, err
			}
			out[m.Identifier] = v
			pos += n
		case Dynamic:
			if len(buffer[pos:]) < 8 {
				return nil, &BufferSizingError{Expected: 8, Found: len(buffer[pos:])}
			}
			count := int(leUint64(buffer[pos:]))
			pos += 8
			v, n, err := decodeArray(buffer[pos:], m.Dtype, count)
			if err != nil {
				return nil, err
			}
			out[m.Identifier] = v
			pos += n
		}
	}
	return out, nil
}

// Encode renders values (keyed by member identifier) into a buffer matching
// designation d's layout. Every member of d must have a corresponding value
// of the correct Dtype/Sizing; Dynamic members are prefixed with their
// element count.
func (d Designation) Encode(values map[string]Value) ([]byte, error) {
	var buf []byte
	for _, m := range d.Members {
		v, ok := values[m.Identifier]
		if !ok {
			return nil, fmt.Errorf("missing value for member %q", m.Identifier)
		}
		if v.Dtype() != m.Dtype || v.IsArray() != m.Sizing.IsArray() {
			return nil, &ConversionError{From: kindName(v.Dtype(), v.IsArray()), To: kindName(m.Dtype, m.Sizing.IsArray())}
		}
		if m.Sizing.Kind == Fixed {
			if n := reflectLen(v.array); uint64(n) != m.Sizing.Count {
				return nil, fmt.Errorf("member %q: fixed array needs %d elements, got %d", m.Identifier, m.Sizing.Count, n)
			}
		}
		if m.Sizing.Kind == Dynamic {
			n := reflectLen(v.array)
			lenBuf := make([]byte, 8)
			putUint64LE(lenBuf, uint64(n))
			buf = append(buf, lenBuf...)
		}
		buf = append(buf, v.AsBuffer()...)
	}
	return buf, nil
}

func leUint64(buf []byte) uint64 {
	var v uint64
	for i := 7; i >= 0; i-- {
		v = v<<8 | uint64(buf[i])
	}
	return v
}

func putUint64LE(buf []byte, v uint64) {
	for i := 0; i < 8; i++ {
		buf[i] = byte(v)
		v >>= 8
	}
}

// String renders d back into designation specification text, the inverse of
// FromText for any Designation it produced.
func (d Designation) String() string {
	parts := make([]string, len(d.Members))
	for i, m := range d.Members {
		switch m.Sizing.Kind {
		case Singleton:
			parts[i] = fmt.Sprintf("%s: %s", m.Identifier, m.Dtype)
		case Fixed:
			parts[i] = fmt.Sprintf("%s: %s[%d]", m.Identifier, m.Dtype, m.Sizing.Count)
		case Dynamic:
			parts[i] = fmt.Sprintf("%s: %s[]", m.Identifier, m.Dtype)
		}
	}
	return strings.Join(parts, ", ")
}

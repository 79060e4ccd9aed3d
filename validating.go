// Copyright (c) 2026 Neomantra Corp

package elucidator

import "unicode"

func isValidIdentifierChar(r rune) bool {
	return unicode.IsDigit(r) || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

// validateIdentifier promotes an identifier token to a member name: it must
// start with an alphabetic character and contain only alphanumerics and
// underscores. Both faults can fire together and are merged.
func validateIdentifier(t token) (string, error) {
	var errs []error
	runes := []rune(t.data)

	if len(runes) == 0 {
		errs = append(errs, &SpecificationError{Offender: t.data, Reason: ZeroLengthIdentifier})
	} else if !unicode.IsLetter(runes[0]) {
		errs = append(errs, &SpecificationError{Offender: t.data, Reason: IdentifierStartsNonAlphabetical})
	}

	var illegal []rune
	for _, r := range runes {
		if !isValidIdentifierChar(r) {
			illegal = append(illegal, r)
		}
	}
	if len(illegal) > 0 {
		errs = append(errs, NewIllegalCharactersError(t.data, illegal))
	}

	if len(errs) == 0 {
		return t.data, nil
	}
	return "", MergeErrors(errs...)
}

// validateDtype matches a dtype token's trimmed text exactly against the
// closed Dtype vocabulary.
func validateDtype(t token) (Dtype, error) {
	if dt, ok := dtypeNames[trimSpace(t.data)]; ok {
		return dt, nil
	}
	return 0, t.parsingError(IllegalDataType)
}

// validateSizing interprets a sizing token: blank/whitespace means Dynamic,
// a positive base-10 integer means Fixed, anything else is an error.
func validateSizing(t token) (Sizing, error) {
	if sizing, ok := parseSizingNumber(t.data); ok {
		return sizing, nil
	}
	return Sizing{}, &SpecificationError{Offender: t.data, Reason: IllegalArraySizing}
}

func trimSpace(s string) string {
	runes := []rune(s)
	start, end := 0, len(runes)
	for start < end && unicode.IsSpace(runes[start]) {
		start++
	}
	for end > start && unicode.IsSpace(runes[end-1]) {
		end--
	}
	return string(runes[start:end])
}

// validateMemberSpec promotes a parsed memberSpecResult into a Member,
// merging every fault found across identifier, dtype and sizing validation,
// plus the cross-field rule that string members cannot be arrays.
func validateMemberSpec(parsed memberSpecResult, parseErrs []error) (Member, error) {
	var errs []error
	errs = append(errs, parseErrs...)

	var ident string
	haveIdent := false
	if parsed.identifier != nil {
		if s, err := validateIdentifier(*parsed.identifier); err != nil {
			errs = append(errs, err)
		} else {
			ident, haveIdent = s, true
		}
	}

	var dtype Dtype
	haveDtype := false
	if parsed.typespec != nil && parsed.typespec.dtype != nil {
		if dt, err := validateDtype(*parsed.typespec.dtype); err != nil {
			errs = append(errs, err)
		} else {
			dtype, haveDtype = dt, true
		}
	}

	var sizing Sizing
	haveSizing := false
	if parsed.typespec != nil {
		if parsed.typespec.isSingleton {
			sizing, haveSizing = SingletonSizing(), true
		} else if parsed.typespec.sizing != nil {
			if sz, err := validateSizing(*parsed.typespec.sizing); err != nil {
				errs = append(errs, err)
			} else {
				sizing, haveSizing = sz, true
			}
		}
	}

	if haveIdent && haveDtype && haveSizing {
		if dtype == Str && sizing.IsArray() {
			errs = append(errs, &SpecificationError{
				Offender: ident,
				Reason:   IllegalArraySizing,
			})
			return Member{}, MergeErrors(errs...)
		}
		return Member{Identifier: ident, Dtype: dtype, Sizing: sizing}, nil
	}
	return Member{}, MergeErrors(errs...)
}

// Copyright (c) 2026 Neomantra Corp
//
// Lexer/parser for designation specification text:
//
//   member_spec := identifier ":" typespec
//   typespec    := dtype | dtype "[" sizing "]"
//   sizing      := <empty or whitespace> | decimal-digits
//   designation := "" | member_spec ("," member_spec)*
//
// Every span reported below is character-indexed (rune-indexed) and
// end-exclusive: ColumnEnd - ColumnStart equals the rune count consumed.
// Parsing never stops at the first fault; every function returns whatever
// errors it found alongside whatever token it could still recover.

package elucidator

import (
	"strconv"
	"strings"
	"unicode"
)

// getWord trims surrounding whitespace from data and returns the remaining
// token positioned at startCol, or an UnexpectedEndOfExpression error if data
// is empty or entirely whitespace.
func getWord(data string, startCol int) (token, []error) {
	runes := []rune(data)
	start := -1
	for i, r := range runes {
		if !unicode.IsSpace(r) {
			start = i
			break
		}
	}
	if start == -1 {
		return token{}, []error{
			(token{data: data, columnStart: startCol, columnEnd: startCol + len(runes)}).
				parsingError(UnexpectedEndOfExpression),
		}
	}
	end := len(runes)
	for end > start && unicode.IsSpace(runes[end-1]) {
		end--
	}
	word := string(runes[start:end])
	return newToken(word, startCol+start), nil
}

func getIdentifier(data string, startCol int) (token, []error) {
	return getWord(data, startCol)
}

func getDtype(data string, startCol int) (token, []error) {
	return getWord(data, startCol)
}

// getSizing handles the edge case get_sizing carries in the original parser:
// all-whitespace (or empty) input denotes Dynamic sizing and is represented
// as a zero-width token at the end of the input, never an error. Any other
// input is parsed as an ordinary word.
func getSizing(data string, startCol int) (token, []error) {
	runes := []rune(data)
	allSpace := true
	for _, r := range runes {
		if !unicode.IsSpace(r) {
			allSpace = false
			break
		}
	}
	if allSpace {
		pos := startCol + len(runes)
		return token{data: "", columnStart: pos, columnEnd: pos}, nil
	}
	return getWord(data, startCol)
}

// typeSpecResult is the parsed dtype/sizing half of a member spec.
type typeSpecResult struct {
	dtype      *token
	sizing     *token
	isSingleton bool
}

func getTypeSpec(data string, startCol int) (typeSpecResult, []error) {
	var errs []error
	var result typeSpecResult

	runes := []rune(data)
	lbracket := indexRune(runes, '[')
	var endOfDtype int
	if lbracket == -1 {
		result.isSingleton = true
		endOfDtype = len(runes)
	} else {
		result.isSingleton = false
		endOfDtype = lbracket
		inside := runes[lbracket+1:]
		rbracketRel := indexRune(inside, ']')
		if rbracketRel == -1 {
			errs = append(errs, (token{
				data:        string(runes[lbracket:]),
				columnStart: startCol + lbracket,
				columnEnd:   startCol + len(runes),
			}).parsingError(UnexpectedEndOfExpression))
		} else {
			rbracketAbs := lbracket + 1 + rbracketRel
			between := string(runes[lbracket+1 : rbracketAbs])
			sizingTok, sizingErrs := getSizing(between, startCol+lbracket+1)
			result.sizing = &sizingTok
			errs = append(errs, sizingErrs...)
			if rbracketAbs+1 != len(runes) {
				trailing := string(runes[rbracketAbs+1:])
				errs = append(errs, (token{
					data:        trailing,
					columnStart: startCol + rbracketAbs + 1,
					columnEnd:   startCol + len(runes),
				}).parsingError(UnexpectedEndOfExpression))
			}
		}
	}

	dtypeTok, dtypeErrs := getDtype(string(runes[:endOfDtype]), startCol)
	result.dtype = &dtypeTok
	errs = append(errs, dtypeErrs...)

	return result, errs
}

// memberSpecResult is the parsed identifier/typespec pair for one member.
type memberSpecResult struct {
	identifier *token
	typespec   *typeSpecResult
}

func getMemberSpec(data string, startCol int) (memberSpecResult, []error) {
	var errs []error
	var result memberSpecResult

	runes := []rune(data)
	colon := indexRune(runes, ':')
	if colon == -1 {
		trimmed := strings.TrimSpace(data)
		startNonWhitespace := startCol
		for i, r := range runes {
			if !unicode.IsSpace(r) {
				startNonWhitespace = startCol + i
				break
			}
		}
		errs = append(errs, (token{
			data:        trimmed,
			columnStart: startNonWhitespace,
			columnEnd:   startNonWhitespace + len([]rune(trimmed)),
		}).parsingError(MissingIdSpecDelimiter))
		return result, errs
	}

	leftOfColon := string(runes[:colon])
	rightOfColon := string(runes[colon+1:])

	identTok, identErrs := getIdentifier(leftOfColon, startCol)
	result.identifier = &identTok
	errs = append(errs, identErrs...)

	ts, tsErrs := getTypeSpec(rightOfColon, startCol+colon+1)
	result.typespec = &ts
	errs = append(errs, tsErrs...)

	return result, errs
}

// designationSpecResult is the parsed (and not yet validated) member list for
// a full designation specification text, with each member's parse errors
// kept aligned by index (memberErrs[i] belongs to members[i]).
type designationSpecResult struct {
	members    []memberSpecResult
	memberErrs [][]error
}

func getDesignationSpec(data string) designationSpecResult {
	var result designationSpecResult

	runes := []rune(data)
	allSpace := true
	for _, r := range runes {
		if !unicode.IsSpace(r) {
			allSpace = false
			break
		}
	}
	if allSpace {
		return result
	}

	if !strings.Contains(data, ",") {
		member, memberErrs := getMemberSpec(data, 0)
		result.members = append(result.members, member)
		result.memberErrs = append(result.memberErrs, memberErrs)
		return result
	}

	startPositions := []int{0}
	for i, r := range runes {
		if r == ',' {
			startPositions = append(startPositions, i+1)
		}
	}
	sections := strings.Split(data, ",")
	for i, section := range sections {
		member, memberErrs := getMemberSpec(section, startPositions[i])
		result.members = append(result.members, member)
		result.memberErrs = append(result.memberErrs, memberErrs)
	}
	return result
}

func indexRune(runes []rune, target rune) int {
	for i, r := range runes {
		if r == target {
			return i
		}
	}
	return -1
}

// parseSizingNumber interprets a sizing token's text as a fixed array length.
// An empty or all-whitespace token denotes Dynamic sizing; anything else
// must be a positive base-10 integer.
func parseSizingNumber(text string) (Sizing, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return DynamicSizing(), true
	}
	n, err := strconv.ParseUint(trimmed, 10, 64)
	if err != nil || n == 0 {
		return Sizing{}, false
	}
	return FixedSizing(n), true
}

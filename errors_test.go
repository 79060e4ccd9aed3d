// Copyright (c) 2026 Neomantra Corp

package elucidator_test

import (
	"errors"

	"github.com/neomantra/elucidator-go"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("MergeErrors", func() {
	It("returns nil when given no errors or all-nil errors", func() {
		Expect(elucidator.MergeErrors()).To(BeNil())
		Expect(elucidator.MergeErrors(nil, nil)).To(BeNil())
	})

	It("collapses a single error to itself, not a one-element MultiError", func() {
		single := errors.New("boom")
		merged := elucidator.MergeErrors(single)
		Expect(merged).To(BeIdenticalTo(single))
	})

	It("flattens nested MultiErrors rather than nesting them", func() {
		inner := elucidator.MergeErrors(errors.New("a"), errors.New("b"))
		merged := elucidator.MergeErrors(inner, errors.New("c"))

		var me *elucidator.MultiError
		Expect(errors.As(merged, &me)).To(BeTrue())
		Expect(me.Errors).To(HaveLen(3))
		for _, err := range me.Errors {
			var nested *elucidator.MultiError
			Expect(errors.As(err, &nested)).To(BeFalse())
		}
	})

	It("skips nil entries mixed in with real errors", func() {
		merged := elucidator.MergeErrors(nil, errors.New("a"), nil)
		Expect(merged).To(MatchError("a"))
	})
})

var _ = Describe("NewIllegalCharactersError", func() {
	It("sorts and deduplicates the offending runes", func() {
		err := elucidator.NewIllegalCharactersError("ba!d$", []rune{'!', '$', '!', ' '})
		Expect(err.Chars).To(Equal([]rune{' ', '!', '$'}))
		Expect(err.Reason).To(Equal(elucidator.IllegalCharacters))
	})

	It("renders the offender and the deduplicated chars in its message", func() {
		err := elucidator.NewIllegalCharactersError("x@x", []rune{'@'})
		Expect(err.Error()).To(ContainSubstring("x@x"))
		Expect(err.Error()).To(ContainSubstring("@"))
	})
})

var _ = Describe("FormatDiagnostic", func() {
	It("renders a caret line under the offending column span", func() {
		src := "1bad: u8"
		pe := &elucidator.ParsingError{Offender: "1bad", ColumnStart: 0, ColumnEnd: 4, Reason: elucidator.IllegalDataType}
		out := elucidator.FormatDiagnostic(src, pe)
		Expect(out).To(ContainSubstring(src))
		Expect(out).To(ContainSubstring("^^^^"))
	})

	It("clamps an out-of-range span instead of panicking", func() {
		src := "ok"
		pe := &elucidator.ParsingError{Offender: "ok", ColumnStart: 50, ColumnEnd: 60, Reason: elucidator.UnexpectedEndOfExpression}
		Expect(func() { elucidator.FormatDiagnostic(src, pe) }).NotTo(Panic())
	})
})

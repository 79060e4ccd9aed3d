// Copyright (c) 2026 Neomantra Corp

package elucidator_test

import (
	"github.com/neomantra/elucidator-go"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("parsing and validation, via FromText", func() {
	It("accumulates faults across every member rather than stopping at the first", func() {
		_, err := elucidator.FromText("1bad: u8, good: u16, also-bad: nibble")
		Expect(err).To(HaveOccurred())
		merr, ok := err.(*elucidator.MultiError)
		Expect(ok).To(BeTrue())
		Expect(len(merr.Errors)).To(BeNumerically(">=", 2))
	})

	It("flattens merged errors rather than nesting MultiErrors", func() {
		_, err := elucidator.FromText("1bad: u8, 2alsobad: u16")
		merr, ok := err.(*elucidator.MultiError)
		Expect(ok).To(BeTrue())
		for _, e := range merr.Errors {
			_, nested := e.(*elucidator.MultiError)
			Expect(nested).To(BeFalse())
		}
	})

	It("rejects illegal characters in an identifier", func() {
		_, err := elucidator.FromText("fo$o: u8")
		Expect(err).To(HaveOccurred())
	})

	It("allows Dynamic sizing to be written with blank brackets", func() {
		d, err := elucidator.FromText("xs: u16[ ]")
		Expect(err).NotTo(HaveOccurred())
		Expect(d.Members[0].Sizing).To(Equal(elucidator.DynamicSizing()))
	})

	It("rejects a zero-length fixed array size", func() {
		_, err := elucidator.FromText("xs: u16[0]")
		Expect(err).To(HaveOccurred())
	})

	It("FormatDiagnostic renders the offending line with a caret span", func() {
		source := "foo u8"
		_, err := elucidator.FromText(source)
		diag, ok := err.(*elucidator.DiagnosticError)
		Expect(ok).To(BeTrue())
		Expect(diag.Context).To(ContainSubstring(source))
		Expect(diag.Context).To(ContainSubstring("^"))
	})
})

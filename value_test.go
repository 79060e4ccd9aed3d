// Copyright (c) 2026 Neomantra Corp

package elucidator_test

import (
	"encoding/json"

	"github.com/neomantra/elucidator-go"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Value JSON marshaling", func() {
	It("renders a string scalar as a JSON string", func() {
		buf, err := json.Marshal(elucidator.NewStrValue("cat"))
		Expect(err).NotTo(HaveOccurred())
		Expect(string(buf)).To(Equal(`"cat"`))
	})

	It("renders a numeric scalar as a JSON number", func() {
		buf, err := json.Marshal(elucidator.NewU32Value(42))
		Expect(err).NotTo(HaveOccurred())
		Expect(string(buf)).To(Equal("42"))
	})

	It("renders a numeric array as a JSON array", func() {
		buf, err := json.Marshal(elucidator.NewU16ArrayValue([]uint16{1, 2, 3}))
		Expect(err).NotTo(HaveOccurred())
		Expect(string(buf)).To(Equal("[1,2,3]"))
	})

	It("round-trips inside a field map the way GetInBB returns results", func() {
		fields := map[string]elucidator.Value{
			"foo": elucidator.NewI32Value(-7),
			"bar": elucidator.NewStrValue("hi"),
		}
		buf, err := json.Marshal(fields)
		Expect(err).NotTo(HaveOccurred())

		var decoded map[string]any
		Expect(json.Unmarshal(buf, &decoded)).To(Succeed())
		Expect(decoded["foo"]).To(Equal(float64(-7)))
		Expect(decoded["bar"]).To(Equal("hi"))
	})
})

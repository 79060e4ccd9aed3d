// Copyright (c) 2026 Neomantra Corp

package elucidator_test

import (
	"math"

	"github.com/neomantra/elucidator-go"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Designation", func() {
	Context("FromText", func() {
		It("parses an empty spec to zero members", func() {
			d, err := elucidator.FromText("   ")
			Expect(err).NotTo(HaveOccurred())
			Expect(d.Members).To(BeEmpty())
		})

		It("parses a mix of singleton, fixed and dynamic members", func() {
			d, err := elucidator.FromText("foo: u8, bar: f32[3], xs: u32[]")
			Expect(err).NotTo(HaveOccurred())
			Expect(d.Members).To(HaveLen(3))
			Expect(d.Members[0]).To(Equal(elucidator.Member{Identifier: "foo", Dtype: elucidator.Byte, Sizing: elucidator.SingletonSizing()}))
			Expect(d.Members[1]).To(Equal(elucidator.Member{Identifier: "bar", Dtype: elucidator.F32, Sizing: elucidator.FixedSizing(3)}))
			Expect(d.Members[2]).To(Equal(elucidator.Member{Identifier: "xs", Dtype: elucidator.U32, Sizing: elucidator.DynamicSizing()}))
		})

		It("round-trips canonical spec text (invariant 1)", func() {
			text := "foo: u8, bar: f32[3], xs: u32[]"
			d, err := elucidator.FromText(text)
			Expect(err).NotTo(HaveOccurred())
			again, err := elucidator.FromText(d.String())
			Expect(err).NotTo(HaveOccurred())
			Expect(again).To(Equal(d))
		})

		It("rejects a repeated identifier", func() {
			_, err := elucidator.FromText("foo: u8, foo: u16")
			Expect(err).To(HaveOccurred())
		})

		It("S6: reports MissingIdSpecDelimiter for a missing colon", func() {
			_, err := elucidator.FromText("foo u8")
			Expect(err).To(HaveOccurred())
			var diag *elucidator.DiagnosticError
			Expect(err).To(BeAssignableToTypeOf(diag))
			inner, ok := err.(*elucidator.DiagnosticError).Inner.(*elucidator.ParsingError)
			Expect(ok).To(BeTrue())
			Expect(inner.Reason).To(Equal(elucidator.MissingIdSpecDelimiter))
		})

		It("S7: reports IllegalArraySizing for a fixed-size string member", func() {
			_, err := elucidator.FromText("name: string[3]")
			Expect(err).To(HaveOccurred())
			specErr, ok := err.(*elucidator.SpecificationError)
			Expect(ok).To(BeTrue())
			Expect(specErr.Reason).To(Equal(elucidator.IllegalArraySizing))
			Expect(specErr.Offender).To(Equal("name"))
		})

		It("rejects an identifier starting with a digit", func() {
			_, err := elucidator.FromText("1foo: u8")
			Expect(err).To(HaveOccurred())
		})

		It("rejects an unrecognized dtype", func() {
			_, err := elucidator.FromText("foo: nibble")
			Expect(err).To(HaveOccurred())
		})
	})

	Context("Interpret/Encode", func() {
		It("S1/S2: decodes mixed scalars in declaration order", func() {
			d, err := elucidator.FromText("foo: u8, bar: f32")
			Expect(err).NotTo(HaveOccurred())
			buf := []byte{100, 0x00, 0x00, 0x80, 0x3F}
			values, err := d.Interpret(buf)
			Expect(err).NotTo(HaveOccurred())
			foo, err := values["foo"].AsU8()
			Expect(err).NotTo(HaveOccurred())
			Expect(foo).To(Equal(uint8(100)))
			bar, err := values["bar"].AsF32()
			Expect(err).NotTo(HaveOccurred())
			Expect(bar).To(Equal(float32(1.0)))
		})

		It("S4: dynamic arrays round-trip through encode/decode", func() {
			d, err := elucidator.FromText("xs: u32[]")
			Expect(err).NotTo(HaveOccurred())
			want := []uint32{2, 10, 0xDEADBEEF}
			buf, err := d.Encode(map[string]elucidator.Value{
				"xs": elucidator.NewU32ArrayValue(want),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(buf[:8]).To(Equal([]byte{3, 0, 0, 0, 0, 0, 0, 0}))

			values, err := d.Interpret(buf)
			Expect(err).NotTo(HaveOccurred())
			got, err := values["xs"].AsVecU32()
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		})

		It("S5: strings encode with an 8-byte length prefix", func() {
			d, err := elucidator.FromText("name: string")
			Expect(err).NotTo(HaveOccurred())
			buf, err := d.Encode(map[string]elucidator.Value{
				"name": elucidator.NewStrValue("cat"),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(buf).To(Equal([]byte{0x03, 0, 0, 0, 0, 0, 0, 0, 'c', 'a', 't'}))

			values, err := d.Interpret(buf)
			Expect(err).NotTo(HaveOccurred())
			name, err := values["name"].AsString()
			Expect(err).NotTo(HaveOccurred())
			Expect(name).To(Equal("cat"))
		})

		It("invariant 2: decode(encode(V)) == V for a full mix of members", func() {
			d, err := elucidator.FromText("a: u8, b: i64, c: f64[2], d: string, e: u16[]")
			Expect(err).NotTo(HaveOccurred())
			want := map[string]elucidator.Value{
				"a": elucidator.NewByteValue(7),
				"b": elucidator.NewI64Value(-12345),
				"c": elucidator.NewF64ArrayValue([]float64{1.5, -2.5}),
				"d": elucidator.NewStrValue("hello"),
				"e": elucidator.NewU16ArrayValue([]uint16{1, 2, 3}),
			}
			buf, err := d.Encode(want)
			Expect(err).NotTo(HaveOccurred())
			got, err := d.Interpret(buf)
			Expect(err).NotTo(HaveOccurred())

			a, _ := got["a"].AsU8()
			Expect(a).To(Equal(uint8(7)))
			b, _ := got["b"].AsI64()
			Expect(b).To(Equal(int64(-12345)))
			c, _ := got["c"].AsVecF64()
			Expect(c).To(Equal([]float64{1.5, -2.5}))
			e, _ := got["d"].AsString()
			Expect(e).To(Equal("hello"))
			xs, _ := got["e"].AsVecU16()
			Expect(xs).To(Equal([]uint16{1, 2, 3}))
		})

		It("invariant 3: decode ignores trailing bytes beyond the schema's layout", func() {
			d, err := elucidator.FromText("foo: u8")
			Expect(err).NotTo(HaveOccurred())
			buf := []byte{9, 1, 2, 3, 4}
			values, err := d.Interpret(buf)
			Expect(err).NotTo(HaveOccurred())
			foo, _ := values["foo"].AsU8()
			Expect(foo).To(Equal(uint8(9)))
		})

		It("fails fast with BufferSizingError on a truncated buffer", func() {
			d, err := elucidator.FromText("foo: u32")
			Expect(err).NotTo(HaveOccurred())
			_, err = d.Interpret([]byte{1, 2})
			Expect(err).To(HaveOccurred())
			_, ok := err.(*elucidator.BufferSizingError)
			Expect(ok).To(BeTrue())
		})

		It("Encode rejects a missing member value", func() {
			d, err := elucidator.FromText("foo: u8, bar: u8")
			Expect(err).NotTo(HaveOccurred())
			_, err = d.Encode(map[string]elucidator.Value{"foo": elucidator.NewByteValue(1)})
			Expect(err).To(HaveOccurred())
		})
	})

	Context("String", func() {
		It("renders singleton, fixed and dynamic members in declaration order", func() {
			d := elucidator.Designation{Members: []elucidator.Member{
				{Identifier: "foo", Dtype: elucidator.Byte, Sizing: elucidator.SingletonSizing()},
				{Identifier: "bar", Dtype: elucidator.F32, Sizing: elucidator.FixedSizing(3)},
				{Identifier: "xs", Dtype: elucidator.U32, Sizing: elucidator.DynamicSizing()},
			}}
			Expect(d.String()).To(Equal("foo: u8, bar: f32[3], xs: u32[]"))
		})
	})

	Context("math sanity", func() {
		It("f32 1.0 matches the IEEE-754 bit pattern used in S2", func() {
			Expect(math.Float32bits(1.0)).To(Equal(uint32(0x3F800000)))
		})
	})
})

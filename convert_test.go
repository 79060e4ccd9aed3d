// Copyright (c) 2026 Neomantra Corp

package elucidator_test

import (
	"github.com/neomantra/elucidator-go"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Value conversions (invariant 4)", func() {
	Context("widening succeeds", func() {
		It("widens u8 up through u16/u32/u64", func() {
			v := elucidator.NewByteValue(200)
			u16, err := v.AsU16()
			Expect(err).NotTo(HaveOccurred())
			Expect(u16).To(Equal(uint16(200)))
			u32, err := v.AsU32()
			Expect(err).NotTo(HaveOccurred())
			Expect(u32).To(Equal(uint32(200)))
			u64, err := v.AsU64()
			Expect(err).NotTo(HaveOccurred())
			Expect(u64).To(Equal(uint64(200)))
		})

		It("widens i32 up to i64 and to f64", func() {
			v := elucidator.NewI32Value(-42)
			i64, err := v.AsI64()
			Expect(err).NotTo(HaveOccurred())
			Expect(i64).To(Equal(int64(-42)))
			f64, err := v.AsF64()
			Expect(err).NotTo(HaveOccurred())
			Expect(f64).To(Equal(float64(-42)))
		})

		It("widens f32 to f64", func() {
			v := elucidator.NewF32Value(1.5)
			f64, err := v.AsF64()
			Expect(err).NotTo(HaveOccurred())
			Expect(f64).To(Equal(float64(1.5)))
		})

		It("every dtype converts to itself", func() {
			v := elucidator.NewU64Value(9999999999)
			got, err := v.AsU64()
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(uint64(9999999999)))
		})

		It("widening extends elementwise to vectors", func() {
			v := elucidator.NewU16ArrayValue([]uint16{1, 2, 3})
			got, err := v.AsVecU32()
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal([]uint32{1, 2, 3}))
		})
	})

	Context("narrowing fails", func() {
		It("u64 cannot narrow to u32", func() {
			v := elucidator.NewU64Value(1)
			_, err := v.AsU32()
			Expect(err).To(HaveOccurred())
			_, ok := err.(*elucidator.NarrowingError)
			Expect(ok).To(BeTrue())
		})

		It("u64 cannot widen into f64 (exceeds the mantissa rule)", func() {
			v := elucidator.NewU64Value(1)
			_, err := v.AsF64()
			Expect(err).To(HaveOccurred())
			_, ok := err.(*elucidator.NarrowingError)
			Expect(ok).To(BeTrue())
		})

		It("i64 cannot widen into f64", func() {
			v := elucidator.NewI64Value(1)
			_, err := v.AsF64()
			Expect(err).To(HaveOccurred())
		})

		It("signed never converts to unsigned", func() {
			v := elucidator.NewI16Value(1)
			_, err := v.AsU16()
			Expect(err).To(HaveOccurred())
		})
	})

	Context("cross-kind conversions fail with ConversionError", func() {
		It("rejects string to numeric", func() {
			v := elucidator.NewStrValue("x")
			_, err := v.AsU8()
			Expect(err).To(HaveOccurred())
			_, ok := err.(*elucidator.ConversionError)
			Expect(ok).To(BeTrue())
		})

		It("rejects scalar to array", func() {
			v := elucidator.NewByteValue(5)
			_, err := v.AsVecU8()
			Expect(err).To(HaveOccurred())
			_, ok := err.(*elucidator.ConversionError)
			Expect(ok).To(BeTrue())
		})

		It("rejects array to scalar", func() {
			v := elucidator.NewByteArrayValue([]uint8{1, 2})
			_, err := v.AsU8()
			Expect(err).To(HaveOccurred())
		})
	})
})

// Copyright (c) 2026 Neomantra Corp

package elucidator_test

import (
	"os"

	"github.com/neomantra/elucidator-go"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func mustEncode(d elucidator.Designation, values map[string]elucidator.Value) []byte {
	buf, err := d.Encode(values)
	Expect(err).NotTo(HaveOccurred())
	return buf
}

var _ = Describe("Store", func() {
	var store *elucidator.Store
	var fooDesig elucidator.Designation

	BeforeEach(func() {
		store = elucidator.NewStore()
		var err error
		fooDesig, err = elucidator.FromText("foo: u8")
		Expect(err).NotTo(HaveOccurred())
		Expect(store.InsertSpecText("foo", "foo: u8")).To(Succeed())
	})

	Context("registry", func() {
		It("registers and retrieves a designation by name", func() {
			d, ok := store.Designation("foo")
			Expect(ok).To(BeTrue())
			Expect(d).To(Equal(fooDesig))
		})

		It("reports unknown designations", func() {
			_, ok := store.Designation("nope")
			Expect(ok).To(BeFalse())
		})

		It("lists every registered name", func() {
			Expect(store.InsertSpecText("bar", "bar: u16")).To(Succeed())
			Expect(store.DesignationNames()).To(ConsistOf("foo", "bar"))
		})
	})

	Context("S1: single record, exact match", func() {
		It("finds a record whose envelope touches the query box", func() {
			Expect(store.Insert(elucidator.Record{
				Designation: "foo",
				Buffer:      mustEncode(fooDesig, map[string]elucidator.Value{"foo": elucidator.NewByteValue(100)}),
			})).To(Succeed())

			results, err := store.GetInBB(elucidator.Box{XMax: 1, YMax: 1, ZMax: 1, TMax: 1}, "foo", 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(1))
			v, err := results[0]["foo"].AsU8()
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(uint8(100)))
		})
	})

	Context("S3: designation filter", func() {
		It("only returns records tagged with the queried designation", func() {
			Expect(store.InsertSpecText("other", "foo: u8")).To(Succeed())
			Expect(store.InsertN([]elucidator.Record{
				{Designation: "foo", Buffer: mustEncode(fooDesig, map[string]elucidator.Value{"foo": elucidator.NewByteValue(1)})},
				{Designation: "other", Buffer: mustEncode(fooDesig, map[string]elucidator.Value{"foo": elucidator.NewByteValue(2)})},
			})).To(Succeed())

			blobs := store.GetBlobsInBB(elucidator.Box{}, "foo", 0)
			Expect(blobs).To(HaveLen(1))
		})
	})

	Context("S8: epsilon inflation", func() {
		BeforeEach(func() {
			Expect(store.Insert(elucidator.Record{
				Designation: "foo",
				Buffer:      mustEncode(fooDesig, map[string]elucidator.Value{"foo": elucidator.NewByteValue(1)}),
			})).To(Succeed())
		})

		It("misses at epsilon zero", func() {
			bb := elucidator.Box{XMin: -0.5, XMax: -0.5, YMin: -0.5, YMax: -0.5, ZMin: -0.5, ZMax: -0.5, TMin: 0, TMax: 0}
			blobs := store.GetBlobsInBB(bb, "foo", 0)
			Expect(blobs).To(BeEmpty())
		})

		It("hits at epsilon 1.0 (invariant 7: epsilon-inflation is monotone)", func() {
			bb := elucidator.Box{XMin: -0.5, XMax: -0.5, YMin: -0.5, YMax: -0.5, ZMin: -0.5, ZMax: -0.5, TMin: 0, TMax: 0}
			blobsSmall := store.GetBlobsInBB(bb, "foo", 0.1)
			blobsLarge := store.GetBlobsInBB(bb, "foo", 1.0)
			Expect(len(blobsLarge)).To(BeNumerically(">=", len(blobsSmall)))
			Expect(blobsLarge).To(HaveLen(1))
		})
	})

	Context("insert paths", func() {
		It("rejects inserting against an unregistered designation", func() {
			err := store.Insert(elucidator.Record{Designation: "missing", Buffer: []byte{1}})
			Expect(err).To(HaveOccurred())
			Expect(store.Len()).To(Equal(0))
		})

		It("BulkLoad is all-or-nothing: a bad record leaves the store unchanged", func() {
			Expect(store.Insert(elucidator.Record{
				Designation: "foo",
				Buffer:      mustEncode(fooDesig, map[string]elucidator.Value{"foo": elucidator.NewByteValue(1)}),
			})).To(Succeed())
			err := store.BulkLoad([]elucidator.Record{{Designation: "unregistered", Buffer: []byte{1}}})
			Expect(err).To(HaveOccurred())
			Expect(store.Len()).To(Equal(1))
		})

		It("BulkLoad replaces the prior record set on success", func() {
			Expect(store.BulkLoad([]elucidator.Record{
				{Designation: "foo", Buffer: mustEncode(fooDesig, map[string]elucidator.Value{"foo": elucidator.NewByteValue(1)})},
				{Designation: "foo", Buffer: mustEncode(fooDesig, map[string]elucidator.Value{"foo": elucidator.NewByteValue(2)})},
			})).To(Succeed())
			Expect(store.Len()).To(Equal(2))
		})
	})

	Context("Save/Load (invariant 6)", func() {
		It("round-trips the registry and record multiset", func() {
			Expect(store.Insert(elucidator.Record{
				XMin: 1, XMax: 2, YMin: 3, YMax: 4, ZMin: 5, ZMax: 6, TMin: 7, TMax: 8,
				Designation: "foo",
				Buffer:      mustEncode(fooDesig, map[string]elucidator.Value{"foo": elucidator.NewByteValue(42)}),
			})).To(Succeed())

			f, err := os.CreateTemp("", "elucidator-store-*.gob")
			Expect(err).NotTo(HaveOccurred())
			path := f.Name()
			f.Close()
			defer os.Remove(path)

			Expect(store.Save(path)).To(Succeed())
			loaded, err := elucidator.Load(path)
			Expect(err).NotTo(HaveOccurred())

			Expect(loaded.DesignationNames()).To(ConsistOf("foo"))
			Expect(loaded.Len()).To(Equal(1))
			results, err := loaded.GetInBB(elucidator.Box{XMin: 1, XMax: 2, YMin: 3, YMax: 4, ZMin: 5, ZMax: 6, TMin: 7, TMax: 8}, "foo", 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(1))
			v, _ := results[0]["foo"].AsU8()
			Expect(v).To(Equal(uint8(42)))
		})

		It("round-trips through a zstd-compressed snapshot", func() {
			Expect(store.Insert(elucidator.Record{
				Designation: "foo",
				Buffer:      mustEncode(fooDesig, map[string]elucidator.Value{"foo": elucidator.NewByteValue(7)}),
			})).To(Succeed())

			f, err := os.CreateTemp("", "elucidator-store-*.gob.zst")
			Expect(err).NotTo(HaveOccurred())
			path := f.Name()
			f.Close()
			defer os.Remove(path)

			Expect(store.Save(path)).To(Succeed())
			loaded, err := elucidator.Load(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.Len()).To(Equal(1))
		})
	})
})

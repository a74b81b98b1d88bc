package rule

import (
	"github.com/abacgo/abac/types"

	. "github.com/onsi/ginkgo"
	"github.com/onsi/gomega"
)

var _ = Describe("logic rules", func() {
	var inq types.Inquiry

	It("And is true on empty and short-circuits on false", func() {
		gomega.Expect(NewAnd().Satisfied(nil, inq)).To(gomega.BeTrue())
		gomega.Expect(NewAnd(NewAny(), NewAny()).Satisfied(nil, inq)).To(gomega.BeTrue())
		gomega.Expect(NewAnd(NewAny(), NewNeither()).Satisfied(nil, inq)).To(gomega.BeFalse())
	})

	It("Or is false on empty and short-circuits on true", func() {
		gomega.Expect(NewOr().Satisfied(nil, inq)).To(gomega.BeFalse())
		gomega.Expect(NewOr(NewNeither(), NewNeither()).Satisfied(nil, inq)).To(gomega.BeFalse())
		gomega.Expect(NewOr(NewNeither(), NewAny()).Satisfied(nil, inq)).To(gomega.BeTrue())
	})

	It("Not inverts its operand", func() {
		gomega.Expect(NewNot(NewAny()).Satisfied(nil, inq)).To(gomega.BeFalse())
		gomega.Expect(NewNot(NewNeither()).Satisfied(nil, inq)).To(gomega.BeTrue())
	})

	It("IsTrue/IsFalse only accept booleans", func() {
		gomega.Expect(NewIsTrue().Satisfied(true, inq)).To(gomega.BeTrue())
		gomega.Expect(NewIsTrue().Satisfied(false, inq)).To(gomega.BeFalse())
		gomega.Expect(NewIsTrue().Satisfied("true", inq)).To(gomega.BeFalse())
		gomega.Expect(NewIsFalse().Satisfied(false, inq)).To(gomega.BeTrue())
	})

	It("composes and round-trips nested rules through JSON", func() {
		r := NewAnd(NewGreater(50), NewLess(999))
		data, err := r.MarshalJSON()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		decoded, err := Decode(data)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(decoded.Satisfied(80, inq)).To(gomega.BeTrue())
		gomega.Expect(decoded.Satisfied(1000, inq)).To(gomega.BeFalse())
	})

	It("rejects an unknown discriminator", func() {
		_, err := Decode([]byte(`{"rule":"logic.DoesNotExist"}`))
		gomega.Expect(err).To(gomega.MatchError(types.ErrUnknownDiscriminator))
	})
})

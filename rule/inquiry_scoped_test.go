package rule

import (
	"github.com/abacgo/abac/types"

	. "github.com/onsi/ginkgo"
	"github.com/onsi/gomega"
)

var _ = Describe("inquiry-scoped rules", func() {
	inq := types.Inquiry{
		Subject:  "alice",
		Action:   "read",
		Resource: "/reports/q3",
	}

	It("SubjectEqual reads the inquiry's subject, ignoring value", func() {
		gomega.Expect(NewSubjectEqual("alice").Satisfied("anything", inq)).To(gomega.BeTrue())
		gomega.Expect(NewSubjectEqual("bob").Satisfied(nil, inq)).To(gomega.BeFalse())
	})

	It("ActionEqual reads the inquiry's action, ignoring value", func() {
		gomega.Expect(NewActionEqual("read").Satisfied(nil, inq)).To(gomega.BeTrue())
		gomega.Expect(NewActionEqual("write").Satisfied(nil, inq)).To(gomega.BeFalse())
	})

	It("ResourceIn matches an exact or substring resource", func() {
		gomega.Expect(NewResourceIn("/reports/q3").Satisfied(nil, inq)).To(gomega.BeTrue())
		gomega.Expect(NewResourceIn("reports").Satisfied(nil, inq)).To(gomega.BeTrue())
		gomega.Expect(NewResourceIn("/billing").Satisfied(nil, inq)).To(gomega.BeFalse())
	})

	It("round-trips SubjectEqual through JSON", func() {
		data, err := NewSubjectEqual("alice").MarshalJSON()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		decoded, err := Decode(data)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(decoded.Satisfied(nil, inq)).To(gomega.BeTrue())
	})
})

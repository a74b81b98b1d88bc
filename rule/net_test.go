package rule

import (
	"github.com/abacgo/abac/types"

	. "github.com/onsi/ginkgo"
	"github.com/onsi/gomega"
)

var _ = Describe("CIDR", func() {
	var inq types.Inquiry

	It("matches an address within the block", func() {
		r, err := NewCIDR("192.168.1.0/24")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(r.Satisfied("192.168.1.42", inq)).To(gomega.BeTrue())
		gomega.Expect(r.Satisfied("10.0.0.1", inq)).To(gomega.BeFalse())
	})

	It("matches any of several comma-separated blocks", func() {
		r, err := NewCIDR("192.168.1.0/24, 10.0.0.0/8")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(r.Satisfied("10.1.2.3", inq)).To(gomega.BeTrue())
		gomega.Expect(r.Satisfied("172.16.0.1", inq)).To(gomega.BeFalse())
	})

	It("is false, not a panic, on a non-IP value", func() {
		r, err := NewCIDR("192.168.1.0/24")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(r.Satisfied("not-an-ip", inq)).To(gomega.BeFalse())
		gomega.Expect(r.Satisfied(42, inq)).To(gomega.BeFalse())
	})

	It("rejects a malformed block at construction", func() {
		_, err := NewCIDR("not-a-cidr")
		gomega.Expect(err).To(gomega.MatchError(types.ErrInvalidArgument))
	})

	It("round-trips through JSON, reparsing the blocks", func() {
		r, err := NewCIDR("192.168.1.0/24")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		data, err := r.MarshalJSON()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		decoded, err := Decode(data)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(decoded.Satisfied("192.168.1.1", inq)).To(gomega.BeTrue())
	})
})

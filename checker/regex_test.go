package checker

import (
	"github.com/abacgo/abac/types"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Regex", func() {
	It("matches the delimited interior anchored around escaped literal text", func() {
		c := NewRegex(8)
		Expect(c.Fits("/reports/<[0-9]+>", "/reports/42", "<", ">")).To(BeTrue())
		Expect(c.Fits("/reports/<[0-9]+>", "/reports/abc", "<", ">")).To(BeFalse())
		Expect(c.Fits("/reports/<[0-9]+>", "/reports/42/extra", "<", ">")).To(BeFalse())
	})

	It("falls back to exact equality when no delimited section is present", func() {
		c := NewRegex(8)
		Expect(c.Fits("reports", "reports", "<", ">")).To(BeTrue())
		Expect(c.Fits("reports", "report", "<", ">")).To(BeFalse())
	})

	It("respects custom start/end tags", func() {
		c := NewRegex(8)
		Expect(c.Fits("/reports/{[0-9]+}", "/reports/42", "{", "}")).To(BeTrue())
	})

	It("surfaces a malformed interior regex as a panic carrying ErrPolicyEvaluation", func() {
		c := NewRegex(8)
		Expect(func() { c.Fits("/reports/<(unterminated>", "/reports/x", "<", ">") }).To(PanicWith(MatchError(types.ErrPolicyEvaluation)))
	})

	It("evicts the least-recently-used entry once the cache is full", func() {
		c := NewRegex(1)
		Expect(c.Fits("/a/<[0-9]+>", "/a/1", "<", ">")).To(BeTrue())
		Expect(c.Fits("/b/<[0-9]+>", "/b/2", "<", ">")).To(BeTrue())
		Expect(c.cache.Len()).To(Equal(1))
		Expect(c.cache.Contains("<\x00>\x00/a/<[0-9]+>")).To(BeFalse())
		Expect(c.cache.Contains("<\x00>\x00/b/<[0-9]+>")).To(BeTrue())
	})
})

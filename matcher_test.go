package abac

import (
	"github.com/abacgo/abac/checker"
	"github.com/abacgo/abac/rule"
	"github.com/abacgo/abac/types"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("FieldMatcher", func() {
	var inq types.Inquiry

	It("a literal matcher defers to the checker and requires a string value", func() {
		m := NewLiteralMatcher("read")
		Expect(m.IsLiteral()).To(BeTrue())
		Expect(m.Fits("read", inq, checker.StringExact{}, "<", ">")).To(BeTrue())
		Expect(m.Fits("write", inq, checker.StringExact{}, "<", ">")).To(BeFalse())
		Expect(m.Fits(42, inq, checker.StringExact{}, "<", ">")).To(BeFalse())
	})

	It("a rule matcher applies the rule directly to the value", func() {
		m := NewRuleMatcher(rule.NewEq("fork"))
		Expect(m.IsLiteral()).To(BeFalse())
		Expect(m.Fits("fork", inq, checker.StringExact{}, "<", ">")).To(BeTrue())
		Expect(m.Fits("clone", inq, checker.StringExact{}, "<", ">")).To(BeFalse())
	})

	It("a mapping matcher requires every key present and satisfied", func() {
		m := NewMappingMatcher(map[string]rule.Rule{
			"name":  rule.NewAny(),
			"stars": rule.NewGreater(50),
		})
		Expect(m.Fits(map[string]any{"name": "Brin", "stars": 80}, inq, checker.StringExact{}, "<", ">")).To(BeTrue())
		Expect(m.Fits(map[string]any{"name": "Brin", "stars": 10}, inq, checker.StringExact{}, "<", ">")).To(BeFalse())
		Expect(m.Fits(map[string]any{"name": "Brin"}, inq, checker.StringExact{}, "<", ">")).To(BeFalse())
		Expect(m.Fits("not-a-mapping", inq, checker.StringExact{}, "<", ">")).To(BeFalse())
	})

	It("round-trips a literal matcher through JSON as a plain string", func() {
		m := NewLiteralMatcher("reports")
		data, err := m.MarshalJSON()
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal(`"reports"`))

		var decoded FieldMatcher
		Expect(decoded.UnmarshalJSON(data)).To(Succeed())
		Expect(decoded.IsLiteral()).To(BeTrue())
		Expect(decoded.Literal).To(Equal("reports"))
	})

	It("round-trips a rule matcher through JSON", func() {
		m := NewRuleMatcher(rule.NewEq("fork"))
		data, err := m.MarshalJSON()
		Expect(err).NotTo(HaveOccurred())

		var decoded FieldMatcher
		Expect(decoded.UnmarshalJSON(data)).To(Succeed())
		Expect(decoded.Fits("fork", inq, checker.StringExact{}, "<", ">")).To(BeTrue())
	})

	It("round-trips a mapping matcher through JSON", func() {
		m := NewMappingMatcher(map[string]rule.Rule{"stars": rule.NewGreater(50)})
		data, err := m.MarshalJSON()
		Expect(err).NotTo(HaveOccurred())

		var decoded FieldMatcher
		Expect(decoded.UnmarshalJSON(data)).To(Succeed())
		Expect(decoded.Fits(map[string]any{"stars": 80}, inq, checker.StringExact{}, "<", ">")).To(BeTrue())
		Expect(decoded.Fits(map[string]any{"stars": 10}, inq, checker.StringExact{}, "<", ">")).To(BeFalse())
	})
})

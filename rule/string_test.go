package rule

import (
	"github.com/abacgo/abac/types"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	"github.com/onsi/gomega"
)

var _ = Describe("string rules", func() {
	var inq types.Inquiry

	DescribeTable("Equal honours case-insensitivity",
		func(value string, ci bool, want bool) {
			gomega.Expect(NewEqual("Google", ci).Satisfied(value, inq)).To(gomega.Equal(want))
		},
		Entry("exact match", "Google", false, true),
		Entry("case mismatch, sensitive", "google", false, false),
		Entry("case mismatch, insensitive", "google", true, true),
	)

	DescribeTable("StartsWith/EndsWith/Contains",
		func(value string, ci bool, wantStart, wantEnd, wantContains bool) {
			gomega.Expect(NewStartsWith("Google", ci).Satisfied(value, inq)).To(gomega.Equal(wantStart))
			gomega.Expect(NewEndsWith("sub", ci).Satisfied(value, inq)).To(gomega.Equal(wantEnd))
			gomega.Expect(NewContains("oo", ci).Satisfied(value, inq)).To(gomega.Equal(wantContains))
		},
		Entry("matching case", "Googlesub", false, true, true, true),
		Entry("case sensitive miss", "googlesub", false, false, true, true),
		Entry("case insensitive hit", "googlesub", true, true, true, true),
	)

	It("string rules only accept string values", func() {
		gomega.Expect(NewEqual("5", false).Satisfied(5, inq)).To(gomega.BeFalse())
		gomega.Expect(NewContains("o", false).Satisfied(nil, inq)).To(gomega.BeFalse())
	})

	Describe("PairsEqual", func() {
		It("is satisfied when every pair's members are equal", func() {
			value := []any{[]any{"a", "a"}, []any{"b", "b"}}
			gomega.Expect(NewPairsEqual().Satisfied(value, inq)).To(gomega.BeTrue())
		})

		It("is false on a mismatched pair", func() {
			value := []any{[]any{"a", "a"}, []any{"b", "c"}}
			gomega.Expect(NewPairsEqual().Satisfied(value, inq)).To(gomega.BeFalse())
		})

		It("is false, not a panic, on an unexpected shape", func() {
			gomega.Expect(NewPairsEqual().Satisfied("not a list", inq)).To(gomega.BeFalse())
			gomega.Expect(NewPairsEqual().Satisfied([]any{[]any{"a"}}, inq)).To(gomega.BeFalse())
		})
	})

	Describe("RegexMatch", func() {
		It("compiles once and matches", func() {
			r, err := NewRegexMatch(`^[A-Z][a-z]+$`)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(r.Satisfied("Alice", inq)).To(gomega.BeTrue())
			gomega.Expect(r.Satisfied("alice", inq)).To(gomega.BeFalse())
		})

		It("rejects a malformed pattern at construction", func() {
			_, err := NewRegexMatch(`(unterminated`)
			gomega.Expect(err).To(gomega.MatchError(types.ErrInvalidArgument))
		})

		It("round-trips through JSON, recompiling the pattern", func() {
			r, err := NewRegexMatch(`^ab+c$`)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			data, err := r.MarshalJSON()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			decoded, err := Decode(data)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(decoded.Satisfied("abbbc", inq)).To(gomega.BeTrue())
		})
	})
})

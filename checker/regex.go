package checker

import (
	"fmt"
	"regexp"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/abacgo/abac/types"
)

// DefaultRegexCacheSize is the compiled-pattern cache size used when a
// caller does not specify one.
const DefaultRegexCacheSize = 1024

// Regex extracts the delimited interior of a pattern (bounded by a
// policy's start/end tag) and matches it as an anchored, full-string regex
// around the escaped literal prefix and suffix. A pattern with no delimited
// section falls back to exact equality. Compiled patterns are cached in an
// LRU keyed by the pattern plus its tags, since the same literal interior
// compiles differently under different delimiters.
type Regex struct {
	cache *lru.Cache[string, *regexp.Regexp]
}

// NewRegex builds a Regex checker with a compiled-pattern cache holding up
// to size entries. A non-positive size falls back to DefaultRegexCacheSize.
func NewRegex(size int) *Regex {
	if size <= 0 {
		size = DefaultRegexCacheSize
	}
	c, err := lru.New[string, *regexp.Regexp](size)
	if err != nil {
		// only returned by lru.New for a non-positive size, which we've
		// already ruled out above.
		panic(err)
	}
	return &Regex{cache: c}
}

func (r *Regex) Kind() Kind { return KindRegex }

func (r *Regex) Fits(pattern, value, startTag, endTag string) bool {
	re, ok := r.compiled(pattern, startTag, endTag)
	if !ok {
		return pattern == value
	}
	return re.MatchString(value)
}

func (r *Regex) compiled(pattern, startTag, endTag string) (*regexp.Regexp, bool) {
	key := startTag + "\x00" + endTag + "\x00" + pattern
	if re, ok := r.cache.Get(key); ok {
		return re, re != nil
	}

	re, ok := r.compile(pattern, startTag, endTag)
	if !ok {
		// cache the miss too, so a non-delimited pattern isn't
		// recompiled-and-rejected on every call.
		r.cache.Add(key, nil)
		return nil, false
	}
	r.cache.Add(key, re)
	return re, true
}

// compile locates the first startTag...endTag span in pattern and builds
// ^escaped-prefix(?:interior)escaped-suffix$. Returns ok=false when no
// delimited section is present. Panics (recovered by Policy.Fits, per
// types.ErrPolicyEvaluation) on a malformed interior regex, so a single bad
// pattern fails only the policy that carries it.
func (r *Regex) compile(pattern, startTag, endTag string) (*regexp.Regexp, bool) {
	start := strings.Index(pattern, startTag)
	if start < 0 {
		return nil, false
	}
	end := strings.Index(pattern[start+len(startTag):], endTag)
	if end < 0 {
		return nil, false
	}
	end += start + len(startTag)

	prefix := pattern[:start]
	interior := pattern[start+len(startTag) : end]
	suffix := pattern[end+len(endTag):]

	expr := "^" + regexp.QuoteMeta(prefix) + "(?:" + interior + ")" + regexp.QuoteMeta(suffix) + "$"
	re, err := regexp.Compile(expr)
	if err != nil {
		panic(fmt.Errorf("%w: regex pattern %q: %v", types.ErrPolicyEvaluation, pattern, err))
	}
	return re, true
}

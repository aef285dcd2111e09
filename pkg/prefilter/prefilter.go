// Package prefilter rules out content that cannot match before any line is
// tested.
package prefilter

import (
	"github.com/cloudflare/ahocorasick"
)

// Prefilter uses Aho-Corasick for efficient keyword matching.
// Content passes when at least one keyword occurs in it.
type Prefilter struct {
	matcher  *ahocorasick.Matcher
	keywords []string
}

// New creates a prefilter from keywords. Empty keywords are ignored; a
// prefilter without keywords passes all content.
func New(keywords ...string) *Prefilter {
	pf := &Prefilter{}

	seen := make(map[string]bool)
	for _, k := range keywords {
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		pf.keywords = append(pf.keywords, k)
	}

	if len(pf.keywords) > 0 {
		pf.matcher = ahocorasick.NewStringMatcher(pf.keywords)
	}
	return pf
}

// Pass reports whether content might match.
func (pf *Prefilter) Pass(content []byte) bool {
	if pf == nil || pf.matcher == nil {
		return true
	}
	return len(pf.matcher.Match(content)) > 0
}

// Keywords returns the deduplicated keyword list.
func (pf *Prefilter) Keywords() []string {
	return pf.keywords
}

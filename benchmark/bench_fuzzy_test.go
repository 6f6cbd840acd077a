//nolint:testpackage // using package name 'benchmark' for parity with the other bench files
package benchmark

import (
	"testing"

	fuzzy "github.com/davrn/go-argv/internal/fuzzy"
)

// Category: fuzzy (exported paths only)

var fuzzyCandidates = []string{
	"help", "version", "verbose", "quiet", "jobs", "out",
	"force", "debug", "hash-algo", "include", "timeout", "dry-run",
}

func BenchmarkMatcherBest(b *testing.B) {
	matcher := fuzzy.NewMatcher(2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		matcher.Best("hep", fuzzyCandidates)
	}
}

func BenchmarkMatcherBestNoMatch(b *testing.B) {
	matcher := fuzzy.NewMatcher(2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		matcher.Best("zzzzzzzz", fuzzyCandidates)
	}
}

func BenchmarkFindBestFlag(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		fuzzy.FindBestFlag("verbsoe", fuzzyCandidates, 2)
	}
}

package ingest

import (
	"fmt"
	"regexp"
	"strings"
)

var wordPattern = regexp.MustCompile(`\w+`)

// SentimentScore sums the valence of every known token in the text. Unknown
// tokens contribute zero, so the score of neutral text is 0.
func SentimentScore(text string) float64 {
	score := 0.0
	for _, token := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		score += valence[token]
	}
	return score
}

// SegmentTimestamp renders a segment start offset as MM:SS using the floored
// second count, e.g. 125.7 -> "02:05".
func SegmentTimestamp(startSeconds float64) string {
	total := int(startSeconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// KeywordCounts tokenizes the text into maximal alphanumeric/underscore runs,
// case-folded, and counts occurrences. Iteration order of the result is
// undefined.
func KeywordCounts(text string) map[string]int {
	counts := make(map[string]int)
	for _, token := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		counts[token]++
	}
	return counts
}

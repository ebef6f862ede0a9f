package ingest

import "testing"

func TestKeywordCounts(t *testing.T) {
	counts := KeywordCounts("Rain, rain go away! rain RAIN.")

	want := map[string]int{"rain": 4, "go": 1, "away": 1}
	if len(counts) != len(want) {
		t.Fatalf("KeywordCounts() len = %d, want %d (%v)", len(counts), len(want), counts)
	}
	for keyword, count := range want {
		if counts[keyword] != count {
			t.Fatalf("KeywordCounts()[%q] = %d, want %d", keyword, counts[keyword], count)
		}
	}
}

func TestKeywordCountsKeepsUnderscoresAndDigits(t *testing.T) {
	counts := KeywordCounts("covid_19 update covid_19")

	if counts["covid_19"] != 2 {
		t.Fatalf("KeywordCounts()[covid_19] = %d, want 2", counts["covid_19"])
	}
	if counts["update"] != 1 {
		t.Fatalf("KeywordCounts()[update] = %d, want 1", counts["update"])
	}
}

func TestSegmentTimestamp(t *testing.T) {
	cases := []struct {
		start float64
		want  string
	}{
		{0, "00:00"},
		{59.9, "00:59"},
		{60, "01:00"},
		{125.7, "02:05"},
		{3599.2, "59:59"},
	}

	for _, tc := range cases {
		if got := SegmentTimestamp(tc.start); got != tc.want {
			t.Fatalf("SegmentTimestamp(%v) = %q, want %q", tc.start, got, tc.want)
		}
	}
}

func TestSentimentScoreIsDeterministic(t *testing.T) {
	text := "great win for the brave team despite the terrible loss before"

	first := SentimentScore(text)
	second := SentimentScore(text)
	if first != second {
		t.Fatalf("SentimentScore() not deterministic: %v vs %v", first, second)
	}

	// great(3) + win(4) + brave(2) + terrible(-3) + loss(-3) = 3
	if first != 3 {
		t.Fatalf("SentimentScore() = %v, want 3", first)
	}
}

func TestSentimentScoreNeutralTextIsZero(t *testing.T) {
	if got := SentimentScore("the minister spoke at the podium"); got != 0 {
		t.Fatalf("SentimentScore() = %v, want 0", got)
	}
}

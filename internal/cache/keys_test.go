package cache

import "testing"

func TestKeysAreDeterministic(t *testing.T) {
	if TrendingKey("day", 2) != TrendingKey("day", 2) {
		t.Error("trending key not deterministic")
	}
	if TrendingKey("day", 1) == TrendingKey("week", 1) {
		t.Error("different windows must not share a key")
	}
	if PopularKey(1) == PopularKey(2) {
		t.Error("different pages must not share a key")
	}
	if DetailsKey(550) != "movie_details_550" {
		t.Errorf("unexpected details key %q", DetailsKey(550))
	}
}

func TestSearchKeyNormalizesQuery(t *testing.T) {
	if SearchKey("  Matrix ", 1) != SearchKey("matrix", 1) {
		t.Error("expected trimmed, lower-cased queries to share a key")
	}
	if SearchKey("matrix", 1) == SearchKey("matrix", 2) {
		t.Error("different pages must not share a key")
	}
}

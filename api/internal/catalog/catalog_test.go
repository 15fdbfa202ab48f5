package catalog

import "testing"

func TestDefaultCatalog(t *testing.T) {
	cat := Default()

	wantIDs := []string{"raw_fish", "raw_meat", "raw_egg", "soft_cheese", "alcohol"}
	if len(cat) != len(wantIDs) {
		t.Fatalf("len(cat) = %d, want %d", len(cat), len(wantIDs))
	}

	seen := map[string]bool{}
	for i, c := range cat {
		if c.ID != wantIDs[i] {
			t.Errorf("cat[%d].ID = %q, want %q", i, c.ID, wantIDs[i])
		}
		if seen[c.ID] {
			t.Errorf("duplicate category id %q", c.ID)
		}
		seen[c.ID] = true
		if len(c.Keywords) == 0 {
			t.Errorf("category %q has no keywords", c.ID)
		}
		if c.Message == "" || c.Details == "" {
			t.Errorf("category %q is missing display texts", c.ID)
		}
	}
}

func TestMatchKeyword(t *testing.T) {
	cat := Default()

	tests := []struct {
		name   string
		wantID string
		ok     bool
	}{
		{"サーモン", "raw_fish", true},
		{"サーモンの刺身", "raw_fish", true},
		{"生ハムメロン", "raw_meat", true},
		{"カルボナーラ", "raw_egg", true},
		{"赤ワイン", "alcohol", true},
		{"サラダ", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := cat.MatchKeyword(tt.name)
		if ok != tt.ok || got.ID != tt.wantID {
			t.Errorf("MatchKeyword(%q) = (%q, %v), want (%q, %v)", tt.name, got.ID, ok, tt.wantID, tt.ok)
		}
	}
}

func TestByID(t *testing.T) {
	cat := Default()
	m := cat.ByID()
	if len(m) != len(cat) {
		t.Fatalf("len(m) = %d, want %d", len(m), len(cat))
	}
	if _, ok := m["soft_cheese"]; !ok {
		t.Error("soft_cheese missing from id map")
	}
}

package badges

import "testing"

func TestMilestoneRarity(t *testing.T) {
	tests := []struct {
		count int
		want  Rarity
	}{
		{5, RarityCommon},
		{9, RarityCommon},
		{10, RarityRare},
		{24, RarityRare},
		{25, RarityEpic},
		{49, RarityEpic},
		{50, RarityLegendary},
		{100, RarityLegendary},
	}

	for _, tt := range tests {
		got := MilestoneRarity(tt.count)
		if got != tt.want {
			t.Errorf("MilestoneRarity(%d) = %q, want %q", tt.count, got, tt.want)
		}
	}
}

func TestAllRarities(t *testing.T) {
	rarities := AllRarities()
	if len(rarities) != 4 {
		t.Errorf("expected 4 rarities, got %d", len(rarities))
	}
	if rarities[0] != RarityCommon || rarities[3] != RarityLegendary {
		t.Errorf("unexpected order: %v", rarities)
	}
}

func TestRarity_DisplayName(t *testing.T) {
	tests := []struct {
		rarity Rarity
		want   string
	}{
		{RarityCommon, "Common"},
		{RarityRare, "Rare"},
		{RarityEpic, "Epic"},
		{RarityLegendary, "Legendary"},
		{"unknown", "unknown"},
	}

	for _, tt := range tests {
		got := tt.rarity.DisplayName()
		if got != tt.want {
			t.Errorf("Rarity(%q).DisplayName() = %q, want %q", tt.rarity, got, tt.want)
		}
	}
}

func TestBadgeType_DisplayName(t *testing.T) {
	if got := BadgeTopic.DisplayName(); got != "Topic" {
		t.Errorf("DisplayName = %q, want Topic", got)
	}
	if got := BadgeType("custom").DisplayName(); got != "custom" {
		t.Errorf("DisplayName = %q, want custom", got)
	}
}

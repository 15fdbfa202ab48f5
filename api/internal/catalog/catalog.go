package catalog

import "strings"

// Category is one class of food a pregnant person should avoid, with the
// user-facing explanation texts shown to clients.
type Category struct {
	ID       string   `json:"-"`
	Keywords []string `json:"keywords"`
	Message  string   `json:"message"`
	Details  string   `json:"details"`
}

// Catalog is the ordered, immutable set of hazard categories. It is built
// once at startup and passed to the components that need it.
type Catalog []Category

// Default returns the built-in catalog.
func Default() Catalog {
	return Catalog{
		{
			ID:       "raw_fish",
			Keywords: []string{"刺身", "さしみ", "sashimi", "生魚", "寿司", "sushi", "マグロ", "サーモン"},
			Message:  "生魚が含まれており、妊娠中は避けることをお勧めします",
			Details:  "生魚にはリステリア菌や寄生虫のリスクがあります。詳しくは医師にご相談ください",
		},
		{
			ID:       "raw_meat",
			Keywords: []string{"ユッケ", "レアステーキ", "生ハム", "生肉"},
			Message:  "生肉が含まれており、妊娠中は避けることをお勧めします",
			Details:  "トキソプラズマやリステリア菌のリスクがあります。詳しくは医師にご相談ください",
		},
		{
			ID:       "raw_egg",
			Keywords: []string{"生卵", "半熟卵", "カルボナーラ"},
			Message:  "生卵が含まれており、妊娠中は注意が必要です",
			Details:  "サルモネラ菌のリスクがあります。詳しくは医師にご相談ください",
		},
		{
			ID:       "soft_cheese",
			Keywords: []string{"ナチュラルチーズ", "カマンベール", "ブルーチーズ"},
			Message:  "ナチュラルチーズが含まれており、妊娠中は避けることをお勧めします",
			Details:  "リステリア菌のリスクがあります。詳しくは医師にご相談ください",
		},
		{
			ID:       "alcohol",
			Keywords: []string{"アルコール", "ワイン", "ビール", "日本酒", "焼酎"},
			Message:  "アルコールが含まれており、妊娠中は摂取を避けてください",
			Details:  "胎児の発育に影響を与える可能性があります。詳しくは医師にご相談ください",
		},
	}
}

// MatchKeyword returns the first category whose keyword list matches the
// given food name, by substring in either direction.
func (c Catalog) MatchKeyword(name string) (Category, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Category{}, false
	}
	for _, cat := range c {
		for _, kw := range cat.Keywords {
			if strings.Contains(name, kw) || strings.Contains(kw, name) {
				return cat, true
			}
		}
	}
	return Category{}, false
}

// ByID maps categories by id for the /foods/avoid listing.
func (c Catalog) ByID() map[string]Category {
	m := make(map[string]Category, len(c))
	for _, cat := range c {
		m[cat.ID] = cat
	}
	return m
}

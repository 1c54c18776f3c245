package progression

// Tier is a dungeon difficulty: the defense it expects and the gold it pays
type Tier struct {
	Key                string `yaml:"key" validate:"required"`
	Name               string `yaml:"name" validate:"required,savefield"`
	RecommendedDefense int    `yaml:"recommended_defense" validate:"gte=0"`
	BaseReward         int    `yaml:"base_reward" validate:"gte=0"`
}

// DefaultTiers returns the easy, normal and hard dungeons
func DefaultTiers() []Tier {
	return []Tier{
		{Key: "easy", Name: "쉬운 던전", RecommendedDefense: 5, BaseReward: 1000},
		{Key: "normal", Name: "일반 던전", RecommendedDefense: 11, BaseReward: 1700},
		{Key: "hard", Name: "어려운 던전", RecommendedDefense: 17, BaseReward: 2500},
	}
}

package data

import "strings"

// Weapon describes one attack option on a sheet. Ability names which score
// drives the attack bonus; BonusFormula optionally overrides the standard
// composition with a CEL expression evaluated by the rules registry.
type Weapon struct {
	Name         string `yaml:"name"`
	Ability      string `yaml:"ability"`
	Proficient   bool   `yaml:"proficient"`
	Bonus        int    `yaml:"bonus"` // flat enhancement, e.g. a +1 blade
	DamageDice   string `yaml:"damage_dice"`
	BonusFormula string `yaml:"bonus_formula,omitempty"`
}

// Character represents a player character sheet loaded via YAML.
type Character struct {
	Index            string   `yaml:"index"`
	Name             string   `yaml:"name"`
	Level            int      `yaml:"level"`
	Strength         int      `yaml:"strength"`
	Dexterity        int      `yaml:"dexterity"`
	Constitution     int      `yaml:"constitution"`
	Intelligence     int      `yaml:"intelligence"`
	Wisdom           int      `yaml:"wisdom"`
	Charisma         int      `yaml:"charisma"`
	ProficiencyBonus int      `yaml:"proficiency_bonus"`
	SkillProfs       []string `yaml:"skill_proficiencies"`
	SaveProfs        []string `yaml:"save_proficiencies"`
	Expertise        []string `yaml:"expertise"`
	Weapons          []Weapon `yaml:"weapons"`
}

// GetStats exposes ability scores under their short names.
func (c *Character) GetStats() map[string]int {
	return map[string]int{
		"str": c.Strength,
		"dex": c.Dexterity,
		"con": c.Constitution,
		"int": c.Intelligence,
		"wis": c.Wisdom,
		"cha": c.Charisma,
	}
}

// Score returns the raw ability score for a short or long ability name.
func (c *Character) Score(ability string) (int, bool) {
	short, ok := NormalizeAbility(ability)
	if !ok {
		return 0, false
	}
	score, ok := c.GetStats()[short]
	return score, ok
}

// IsSkillProficient reports whether the sheet lists the skill.
func (c *Character) IsSkillProficient(skill string) bool {
	return containsFold(c.SkillProfs, skill)
}

// HasExpertise reports whether the sheet doubles proficiency for the skill.
func (c *Character) HasExpertise(skill string) bool {
	return containsFold(c.Expertise, skill)
}

// IsSaveProficient reports whether the sheet lists the saving throw.
func (c *Character) IsSaveProficient(ability string) bool {
	short, ok := NormalizeAbility(ability)
	if !ok {
		return false
	}
	return containsFold(c.SaveProfs, short)
}

// FindWeapon resolves a weapon by name, case-insensitively.
func (c *Character) FindWeapon(name string) (*Weapon, bool) {
	for i := range c.Weapons {
		if strings.EqualFold(c.Weapons[i].Name, name) {
			return &c.Weapons[i], true
		}
	}
	return nil, false
}

func containsFold(list []string, want string) bool {
	for _, v := range list {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}

// CalculateModifier returns the standard D&D 5e ability modifier for a given score.
func CalculateModifier(score int) int {
	if score < 10 {
		// Go truncates toward zero; ability modifiers round down instead
		return -((11 - score) / 2)
	}
	return (score - 10) / 2
}

package data

import "strings"

// defaultSkillAbilities maps every SRD skill to the ability score that
// drives it. The init command can overwrite this mapping with downloaded
// SRD data; these built-ins keep the tool working offline.
var defaultSkillAbilities = map[string]string{
	"acrobatics":      "dex",
	"animal handling": "wis",
	"arcana":          "int",
	"athletics":       "str",
	"deception":       "cha",
	"history":         "int",
	"insight":         "wis",
	"intimidation":    "cha",
	"investigation":   "int",
	"medicine":        "wis",
	"nature":          "int",
	"perception":      "wis",
	"performance":     "cha",
	"persuasion":      "cha",
	"religion":        "int",
	"sleight of hand": "dex",
	"stealth":         "dex",
	"survival":        "wis",
}

var abilityAliases = map[string]string{
	"str": "str", "strength": "str",
	"dex": "dex", "dexterity": "dex",
	"con": "con", "constitution": "con",
	"int": "int", "intelligence": "int",
	"wis": "wis", "wisdom": "wis",
	"cha": "cha", "charisma": "cha",
}

// NormalizeAbility maps long or short ability names to their short form.
func NormalizeAbility(name string) (string, bool) {
	short, ok := abilityAliases[strings.ToLower(strings.TrimSpace(name))]
	return short, ok
}

// IsAbility reports whether the name denotes an ability score rather than a skill.
func IsAbility(name string) bool {
	_, ok := NormalizeAbility(name)
	return ok
}

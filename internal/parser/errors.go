package parser

import (
	"fmt"
	"strings"
)

// MapError takes a raw input and a participle error, and returns a human-friendly guidance message.
func MapError(input string, err error) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return fmt.Errorf("I wasn't able to understand your command")
	}

	parts := strings.Fields(strings.ToLower(input))
	cmd := parts[0]

	switch cmd {
	case "roll":
		return fmt.Errorf("The command roll must be: roll [by: Actor] <dice> [target: N]")
	case "check":
		return fmt.Errorf("The command check must be: check [by: Actor] <skill or ability> [target: N] [adv|dis]")
	case "save":
		return fmt.Errorf("The command save must be: save [by: Actor] <ability> [target: N] [adv|dis]")
	case "attack":
		return fmt.Errorf("The command attack must be: attack [by: Actor] with: Weapon [target: N] [adv|dis]")
	case "stats":
		return fmt.Errorf("The command stats takes no arguments")
	case "help":
		return fmt.Errorf("The command help must be: help [command]")
	}

	return fmt.Errorf("I wasn't able to understand your command")
}

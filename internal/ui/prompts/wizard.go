package prompts

import (
	"fmt"
	"strings"
)

// PromptFirstUser runs on a fresh ledger and asks for the owner's name and home currency.
func PromptFirstUser(defaultCurrency string) (name, homeCurrency string, err error) {
	name, err = PromptInput("Welcome to tally! What is your name?", "", func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("name is required")
		}
		return nil
	})
	if err != nil {
		return "", "", err
	}

	homeCurrency, err = PromptCurrency("Home currency, every amount is also reported in it", defaultCurrency)
	if err != nil {
		return "", "", err
	}
	return name, homeCurrency, nil
}

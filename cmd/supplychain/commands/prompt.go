package commands

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"

	signersvc "supplychain/internal/services/signer"
)

// askPassphrase returns the -p value, prompting on the terminal when it is empty.
func askPassphrase() signersvc.PassphraseFunc {
	return func() (string, error) {
		if passphrase != "" {
			return passphrase, nil
		}
		var p string
		err := survey.AskOne(&survey.Password{Message: "Key store passphrase:"}, &p)
		return p, err
	}
}

// newPassphrase prompts twice for a passphrase that will protect a new key.
func newPassphrase() (string, error) {
	if passphrase != "" {
		return passphrase, nil
	}
	var answers struct {
		Pass    string
		Confirm string
	}
	qs := []*survey.Question{
		{Name: "pass", Prompt: &survey.Password{Message: "New passphrase:"}, Validate: survey.Required},
		{Name: "confirm", Prompt: &survey.Password{Message: "Repeat passphrase:"}, Validate: survey.Required},
	}
	if err := survey.Ask(qs, &answers); err != nil {
		return "", err
	}
	if answers.Pass != answers.Confirm {
		return "", errPassphraseMismatch
	}
	return answers.Pass, nil
}

var errPassphraseMismatch = errors.New("passphrases do not match")

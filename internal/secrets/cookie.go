package secrets

import (
	"errors"
	"strings"

	"github.com/zalando/go-keyring"
)

// KeyringService groups this app's secrets in the OS keychain.
const KeyringService = "jobsearch"

// LinkedIn shows full search results only to signed-in sessions. The
// li_at session cookie is optional; without it the scraper still works
// against the public results page. The cookie lives in the OS keychain,
// never in the config file.

func GetLinkedInCookie(account string) (string, error) {
	if strings.TrimSpace(account) == "" {
		return "", errors.New("keyring account name is empty")
	}
	v, err := keyring.Get(KeyringService, account)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(v) == "" {
		return "", errors.New("LinkedIn cookie not set")
	}
	return v, nil
}

func SetLinkedInCookie(account, cookie string) error {
	if strings.TrimSpace(account) == "" {
		return errors.New("keyring account name is empty")
	}
	if strings.TrimSpace(cookie) == "" {
		return errors.New("cookie is empty")
	}
	return keyring.Set(KeyringService, account, cookie)
}

func DeleteLinkedInCookie(account string) error {
	if strings.TrimSpace(account) == "" {
		return errors.New("keyring account name is empty")
	}
	return keyring.Delete(KeyringService, account)
}

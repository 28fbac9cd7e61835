package wallet

import (
	"fmt"
	"strings"

	"github.com/gosimple/slug"
)

// AccountKind selects which dashboard and flows a profile uses.
type AccountKind string

const (
	AccountPersonal AccountKind = "personal"
	AccountMerchant AccountKind = "merchant"
)

// ParseAccountKind parses "personal" or "merchant".
func ParseAccountKind(s string) (AccountKind, error) {
	switch AccountKind(strings.ToLower(strings.TrimSpace(s))) {
	case AccountPersonal, "":
		return AccountPersonal, nil
	case AccountMerchant:
		return AccountMerchant, nil
	default:
		return "", fmt.Errorf("invalid account type %q (want personal or merchant)", s)
	}
}

// Profile is the account shown in headers and share sheets.
type Profile struct {
	Kind          AccountKind
	Username      string
	ZapsID        string
	WalletAddress string
	Balance       string
	SecretKey     string
}

const (
	defaultUsername      = "Ejembiii"
	defaultWalletAddress = "GABC...1234"
	defaultBalance       = "$15,046.12"
	// Shown on the backup screen; there is no key material behind it.
	placeholderSecretKey = "SBXX-XXXX-XXXX-XXXX-XXXX-XXXX-XXXX-XXXX"
)

// ZapsIDSuffix is appended to the slugged username.
const ZapsIDSuffix = ".zaps"

// ZapsID derives a Zaps ID from a username, e.g. "Ada Obi" -> "ada-obi.zaps".
// An empty or unsluggable username yields an empty ID.
func ZapsID(username string) string {
	s := slug.Make(username)
	if s == "" {
		return ""
	}
	return s + ZapsIDSuffix
}

// DefaultProfile returns the built-in profile for the given account kind.
// A non-empty username overrides the default one.
func DefaultProfile(kind AccountKind, username string) Profile {
	if strings.TrimSpace(username) == "" {
		username = defaultUsername
	}
	return Profile{
		Kind:          kind,
		Username:      username,
		ZapsID:        ZapsID(username),
		WalletAddress: defaultWalletAddress,
		Balance:       defaultBalance,
		SecretKey:     placeholderSecretKey,
	}
}

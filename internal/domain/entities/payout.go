package entities

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// PayoutBatch is a DLO bank batch-payment file paying invoiced suppliers.
type PayoutBatch struct {
	Date       time.Time    `json:"date"`
	FileName   string       `json:"fileName"`
	Content    string       `json:"content"`
	Count      int          `json:"count"`
	TotalCents int64        `json:"totalCents"`
	HashTotal  string       `json:"hashTotal"`
	Included   []string     `json:"included"`
	Skipped    []PayoutSkip `json:"skipped,omitempty"`
	MarkedPaid bool         `json:"markedPaid"`
}

type PayoutSkip struct {
	Ref    string `json:"ref"`
	Reason string `json:"reason"`
}

// BankAccount is a New Zealand bank account number:
// bank(2)-branch(4)-account(7)-suffix(2 or 3).
type BankAccount struct {
	Bank    string
	Branch  string
	Account string
	Suffix  string
}

var ErrInvalidBankAccount = errors.New("invalid bank account number")

func ParseBankAccount(s string) (BankAccount, error) {
	var digits strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
		case r == '-' || r == ' ':
		default:
			return BankAccount{}, ErrInvalidBankAccount
		}
	}
	d := digits.String()
	if len(d) != 15 && len(d) != 16 {
		return BankAccount{}, ErrInvalidBankAccount
	}
	return BankAccount{Bank: d[0:2], Branch: d[2:6], Account: d[6:13], Suffix: d[13:]}, nil
}

// Digits renders the 16-digit form with a 3-digit suffix.
func (b BankAccount) Digits() string {
	suffix := b.Suffix
	if len(suffix) == 2 {
		suffix = "0" + suffix
	}
	return b.Bank + b.Branch + b.Account + suffix
}

func (b BankAccount) String() string {
	return b.Bank + "-" + b.Branch + "-" + b.Account + "-" + b.Suffix
}

// HashComponent is branch and account as one 11-digit number, the value
// summed into a batch file's hash total.
func (b BankAccount) HashComponent() int64 {
	n, _ := strconv.ParseInt(b.Branch+b.Account, 10, 64)
	return n
}

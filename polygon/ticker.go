package polygon

import (
	"regexp"
	"strings"

	"cloud.google.com/go/civil"
)

// TickerClass is the class of security a ticker identifies.
type TickerClass int

// List of ticker classes
const (
	ClassUnrecognized TickerClass = iota
	ClassEquity
	ClassOption
	ClassIndex
	ClassForex
	ClassCrypto
)

func (c TickerClass) String() string {
	switch c {
	case ClassEquity:
		return "equity"
	case ClassOption:
		return "option"
	case ClassIndex:
		return "index"
	case ClassForex:
		return "forex"
	case ClassCrypto:
		return "crypto"
	}
	return "unrecognized"
}

const (
	optionPrefix = "O:"
	indexPrefix  = "I:"
	forexPrefix  = "C:"
	cryptoPrefix = "X:"
)

// Static patterns; compiled once when the package is loaded.
var (
	equityTicker = regexp.MustCompile(`^[A-Z]{1,6}$`)
	optionTicker = regexp.MustCompile(`^O:[A-Z]{1,4}[0-9]{2}(0[1-9]|1[0-2])(0[1-9]|[12][0-9]|3[01])[CP][0-9]{8}$`)
	indexTicker  = regexp.MustCompile(`^I:[A-Z0-9]+$`)
	forexTicker  = regexp.MustCompile(`^C:[A-Z]{6}$`)
	cryptoTicker = regexp.MustCompile(`^X:[A-Z0-9]+$`)
	apiKey       = regexp.MustCompile(`^\S{32}$`)
	epochDigits  = regexp.MustCompile(`^[0-9]{1,19}$`)
)

// Classify returns the class of the ticker. Prefixes are checked in the order
// O:, I:, C:, X:; a prefixed ticker must also match the layout of its class.
// Anything else that is not 1-6 uppercase letters is ClassUnrecognized.
func Classify(ticker string) TickerClass {
	switch {
	case strings.HasPrefix(ticker, optionPrefix):
		if optionTicker.MatchString(ticker) {
			return ClassOption
		}
	case strings.HasPrefix(ticker, indexPrefix):
		if indexTicker.MatchString(ticker) {
			return ClassIndex
		}
	case strings.HasPrefix(ticker, forexPrefix):
		if forexTicker.MatchString(ticker) {
			return ClassForex
		}
	case strings.HasPrefix(ticker, cryptoPrefix):
		if cryptoTicker.MatchString(ticker) {
			return ClassCrypto
		}
	case equityTicker.MatchString(ticker):
		return ClassEquity
	}
	return ClassUnrecognized
}

// IsValidDate reports whether s is a calendar date in YYYY-MM-DD format
// with a year between 1900 and 2099.
func IsValidDate(s string) bool {
	if len(s) != len("2006-01-02") {
		return false
	}
	d, err := civil.ParseDate(s)
	if err != nil {
		return false
	}
	return d.Year >= 1900 && d.Year <= 2099
}

// IsValidTimestamp reports whether s is either a valid date or an epoch
// timestamp made of digits only (milliseconds or nanoseconds).
func IsValidTimestamp(s string) bool {
	return IsValidDate(s) || epochDigits.MatchString(s)
}

// IsValidAPIKey reports whether s has the shape of a Polygon API key.
func IsValidAPIKey(s string) bool {
	return apiKey.MatchString(s)
}

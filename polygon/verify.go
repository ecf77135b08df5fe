package polygon

import "fmt"

// TickerClasses is the set of ticker classes an endpoint accepts.
type TickerClasses struct {
	Equity bool
	Option bool
	Index  bool
	Forex  bool
	Crypto bool
}

// AllClasses accepts every recognized ticker class.
func AllClasses() TickerClasses {
	return TickerClasses{Equity: true, Option: true, Index: true, Forex: true, Crypto: true}
}

// Only accepts the given ticker classes.
func Only(classes ...TickerClass) TickerClasses {
	var tc TickerClasses
	for _, c := range classes {
		switch c {
		case ClassEquity:
			tc.Equity = true
		case ClassOption:
			tc.Option = true
		case ClassIndex:
			tc.Index = true
		case ClassForex:
			tc.Forex = true
		case ClassCrypto:
			tc.Crypto = true
		}
	}
	return tc
}

// Allows reports whether the class is in the set. ClassUnrecognized is never allowed.
func (tc TickerClasses) Allows(c TickerClass) bool {
	switch c {
	case ClassEquity:
		return tc.Equity
	case ClassOption:
		return tc.Option
	case ClassIndex:
		return tc.Index
	case ClassForex:
		return tc.Forex
	case ClassCrypto:
		return tc.Crypto
	}
	return false
}

// Requirement marks a parameter of an endpoint as required or optional.
type Requirement struct {
	Parameter Parameter
	Required  bool
}

func required(p Parameter) Requirement { return Requirement{Parameter: p, Required: true} }
func optional(p Parameter) Requirement { return Requirement{Parameter: p} }

// Verify checks p against an endpoint's requirements and accepted ticker
// classes. It returns the first failure; parameters that are not listed in
// requirements are ignored. Verify performs no I/O.
func Verify(allowed TickerClasses, requirements []Requirement, p *Params) error {
	if p.APIKey == "" {
		return ErrAPIKeyNotSet
	}

	if p.Ticker != "" {
		if class := Classify(p.Ticker); !allowed.Allows(class) {
			return fmt.Errorf("%w: %q is %s", ErrTickerTypeNotValid, p.Ticker, class)
		}
	} else if isRequired(requirements, ParamTicker) {
		return ErrTickerNotSet
	}

	if p.TickerType != "" && listed(requirements, ParamTickerType) && !allowed.Allows(p.TickerType.Class()) {
		return fmt.Errorf("%w: %q", ErrTickerTypeNotValid, p.TickerType)
	}

	for _, r := range requirements {
		if r.Required && !p.Has(r.Parameter) {
			return &ParameterNotSetError{Parameter: r.Parameter}
		}
	}

	for _, r := range requirements {
		if !p.Has(r.Parameter) {
			continue
		}
		if err := checkFormat(r.Parameter, p); err != nil {
			return err
		}
	}
	return nil
}

func listed(requirements []Requirement, param Parameter) bool {
	for _, r := range requirements {
		if r.Parameter == param {
			return true
		}
	}
	return false
}

func isRequired(requirements []Requirement, param Parameter) bool {
	for _, r := range requirements {
		if r.Parameter == param {
			return r.Required
		}
	}
	return false
}

func checkFormat(param Parameter, p *Params) error {
	var (
		value string
		ok    bool
	)
	switch param {
	case ParamDate:
		value, ok = p.Date, IsValidDate(p.Date)
	case ParamExpirationDate:
		value, ok = p.ExpirationDate, IsValidDate(p.ExpirationDate)
	case ParamFrom:
		value, ok = p.From, IsValidTimestamp(p.From)
	case ParamTo:
		value, ok = p.To, IsValidTimestamp(p.To)
	case ParamTimestamp:
		value, ok = p.Timestamp, IsValidTimestamp(p.Timestamp)
	default:
		return nil
	}
	if !ok {
		return &InvalidParameterError{Parameter: param, Value: value}
	}
	return nil
}

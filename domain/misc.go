package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

type SortDir int8

const (
	SortDirAsc  = 1
	SortDirDesc = -1
)

const (
	maxNameLen    = 12
	maxSymbolCode = 7
	MaxPrecision  = 18
	// MaxAssetAmount is the largest amount an asset may carry, 2^62-1
	MaxAssetAmount = int64(1)<<62 - 1
)

// Name is an on-ledger account name: 1 to 12 chars of a-z, 1-5 and '.', not ending with '.'
type Name string

func (n Name) String() string {
	return string(n)
}

func (n Name) IsEmpty() bool {
	return len(n) == 0
}

func (n Name) Validate() error {
	s := string(n)
	if len(s) == 0 || len(s) > maxNameLen {
		return nameError(s, "length must be 1 to 12")
	}
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= '1' && r <= '5' || r == '.') {
			return nameError(s, "only a-z, 1-5 and '.' are allowed")
		}
	}
	if strings.HasSuffix(s, ".") {
		return nameError(s, "must not end with '.'")
	}
	return nil
}

func nameError(s, reason string) error {
	return Errorf(ErrValidation, "%s %q: %s", ErrInvalidName, s, reason)
}

// ParseName trims and validates an account name
func ParseName(s string) (Name, error) {
	n := Name(strings.TrimSpace(s))
	if err := n.Validate(); err != nil {
		return "", err
	}
	return n, nil
}

// Symbol identifies a token by its uppercase code and decimal precision, written as "4,PURPLE"
type Symbol struct {
	Code      string `json:"code" bson:"code"`
	Precision uint8  `json:"precision" bson:"precision"`
}

func NewSymbol(code string, precision uint8) Symbol {
	return Symbol{Code: code, Precision: precision}
}

// ParseSymbol parses "4,PURPLE"
func ParseSymbol(s string) (Symbol, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 2 {
		return Symbol{}, Errorf(ErrValidation, "%s %q: expect <precision>,<code>", ErrInvalidSymbol, s)
	}
	p, err := strconv.ParseUint(parts[0], 10, 8)
	if err != nil {
		return Symbol{}, Errorf(ErrValidation, "%s %q: bad precision", ErrInvalidSymbol, s)
	}
	sym := Symbol{Code: parts[1], Precision: uint8(p)}
	if err := sym.Validate(); err != nil {
		return Symbol{}, err
	}
	return sym, nil
}

func (s Symbol) IsEmpty() bool {
	return s.Code == ""
}

// ValidateCode checks a bare symbol code
func ValidateCode(code string) error {
	if len(code) == 0 || len(code) > maxSymbolCode {
		return Errorf(ErrValidation, "%s code %q: length must be 1 to 7", ErrInvalidSymbol, code)
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return Errorf(ErrValidation, "%s code %q: only A-Z are allowed", ErrInvalidSymbol, code)
		}
	}
	return nil
}

func (s Symbol) Validate() error {
	if err := ValidateCode(s.Code); err != nil {
		return err
	}
	if s.Precision > MaxPrecision {
		return Errorf(ErrValidation, "%s %s: precision must be at most %d", ErrInvalidSymbol, s, MaxPrecision)
	}
	return nil
}

func (s Symbol) String() string {
	return fmt.Sprintf("%d,%s", s.Precision, s.Code)
}

func (s Symbol) MarshalJSON() ([]byte, error) {
	if s.IsEmpty() {
		return json.Marshal("")
	}
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts "4,PURPLE", or "" for an empty symbol
func (s *Symbol) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	if str == "" {
		*s = Symbol{}
		return nil
	}
	sym, err := ParseSymbol(str)
	if err != nil {
		return err
	}
	*s = sym
	return nil
}

// ExtendedSymbol is a symbol together with the contract issuing it
type ExtendedSymbol struct {
	Contract Name   `json:"contract" bson:"contract"`
	Symbol   Symbol `json:"symbol" bson:"symbol"`
}

func (e ExtendedSymbol) String() string {
	return e.Symbol.String() + "@" + e.Contract.String()
}

// Asset is an amount in minor units of a symbol, written as "100.0000 PURPLE"
type Asset struct {
	Amount int64  `json:"amount" bson:"amount"`
	Symbol Symbol `json:"symbol" bson:"symbol"`
}

func NewAsset(amount int64, sym Symbol) Asset {
	return Asset{Amount: amount, Symbol: sym}
}

// ParseAsset parses "100.0000 PURPLE", the number of decimals sets the precision
func ParseAsset(s string) (Asset, error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return Asset{}, Errorf(ErrValidation, "%s %q: expect <amount> <code>", ErrInvalidAsset, s)
	}
	precision := 0
	if idx := strings.IndexByte(parts[0], '.'); idx >= 0 {
		precision = len(parts[0]) - idx - 1
		if precision == 0 {
			return Asset{}, Errorf(ErrValidation, "%s %q: missing decimals", ErrInvalidAsset, s)
		}
	}
	if precision > MaxPrecision {
		return Asset{}, Errorf(ErrValidation, "%s %q: too many decimals", ErrInvalidAsset, s)
	}
	sym := Symbol{Code: parts[1], Precision: uint8(precision)}
	if err := sym.Validate(); err != nil {
		return Asset{}, err
	}

	d, err := decimal.NewFromString(parts[0])
	if err != nil {
		return Asset{}, Errorf(ErrValidation, "%s %q: %s", ErrInvalidAsset, s, err)
	}
	minor := d.Shift(int32(precision))
	if !minor.Equal(minor.Truncate(0)) || minor.Abs().GreaterThan(decimal.NewFromInt(MaxAssetAmount)) {
		return Asset{}, Errorf(ErrValidation, "%s %q: amount out of range", ErrInvalidAsset, s)
	}
	return Asset{Amount: minor.IntPart(), Symbol: sym}, nil
}

func (a Asset) IsValid() bool {
	return a.Amount >= -MaxAssetAmount && a.Amount <= MaxAssetAmount && a.Symbol.Validate() == nil
}

func (a Asset) Decimal() decimal.Decimal {
	return decimal.New(a.Amount, -int32(a.Symbol.Precision))
}

func (a Asset) String() string {
	return a.Decimal().StringFixed(int32(a.Symbol.Precision)) + " " + a.Symbol.Code
}

// Units is the whole number of tokens, fractions are truncated
func (a Asset) Units() uint64 {
	if a.Amount <= 0 {
		return 0
	}
	return uint64(a.Decimal().Truncate(0).IntPart())
}

func (a Asset) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Asset) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	asset, err := ParseAsset(str)
	if err != nil {
		return err
	}
	*a = asset
	return nil
}

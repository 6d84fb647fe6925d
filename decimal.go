package num

import (
	"github.com/shopspring/decimal"
)

// U128FromDecimal creates a U128 from the integer part of d. Negative values
// and values above MaxU128 set accurate to 'false', as does a discarded
// fraction.
func U128FromDecimal(d decimal.Decimal) (out U128, accurate bool) {
	out, accurate = U128FromBigInt(d.BigInt())
	return out, accurate && d.IsInteger()
}

// I128FromDecimal creates an I128 from the integer part of d, truncating
// towards zero. Out of range values clamp to MinI128/MaxI128.
func I128FromDecimal(d decimal.Decimal) (out I128, accurate bool) {
	out, accurate = I128FromBigInt(d.BigInt())
	return out, accurate && d.IsInteger()
}

func (u U128) AsDecimal() decimal.Decimal {
	return decimal.NewFromBigInt(u.AsBigInt(), 0)
}

func (i I128) AsDecimal() decimal.Decimal {
	return decimal.NewFromBigInt(i.AsBigInt(), 0)
}

package analytics

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// Precision is the number of decimals every metric is rounded to
const Precision = 2

// round2 rounds the exact binary value of v to the nearest 2-decimal value,
// ties to even, so 2.675 (stored as 2.67499...) becomes 2.67 and 0.125
// becomes 0.12. Non-finite values resolve to 0.
func round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return exactDecimal(v).RoundBank(Precision).InexactFloat64()
}

// exactDecimal returns the decimal expansion of v with no loss. Every finite
// float64 is mant * 2^exp, and 2^-k == 5^k / 10^k.
func exactDecimal(v float64) decimal.Decimal {
	frac, exp := math.Frexp(v)
	mant := big.NewInt(int64(math.Ldexp(frac, 53)))
	exp -= 53

	if exp >= 0 {
		return decimal.NewFromBigInt(mant.Lsh(mant, uint(exp)), 0)
	}
	k := int64(-exp)
	pow := new(big.Int).Exp(big.NewInt(5), big.NewInt(k), nil)
	return decimal.NewFromBigInt(mant.Mul(mant, pow), int32(-k))
}

// safeDiv returns num/den, or 0 when den is zero or negative
func safeDiv(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den
}

// percent returns num/den*100 rounded, guarded on den
func percent(num, den float64) float64 {
	return round2(safeDiv(num, den) * 100)
}

// days returns num/den*365 rounded, guarded on den
func days(num, den float64) float64 {
	return round2(safeDiv(num, den) * DaysPerYear)
}

// ratio returns num/den rounded, guarded on den
func ratio(num, den float64) float64 {
	return round2(safeDiv(num, den))
}

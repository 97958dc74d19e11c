package domain

import (
	"encoding/json"
	"fmt"
	"math"
)

// StregCents is an amount of money in minor units (1/100 kr).
type StregCents int64

func (sc StregCents) Add(other StregCents) (StregCents, error) {
	if (other > 0 && sc > math.MaxInt64-other) || (other < 0 && sc < math.MinInt64-other) {
		return 0, &StregCentsOverflowError{Msg: fmt.Sprintf("%d + %d overflows", sc, other)}
	}

	return sc + other, nil
}

func (sc StregCents) Sub(other StregCents) (StregCents, error) {
	if (other < 0 && sc > math.MaxInt64+other) || (other > 0 && sc < math.MinInt64+other) {
		return 0, &StregCentsOverflowError{Msg: fmt.Sprintf("%d - %d overflows", sc, other)}
	}

	return sc - other, nil
}

func (sc StregCents) Mul(amount uint32) (StregCents, error) {
	factor := int64(amount)
	if factor == 0 || sc == 0 {
		return 0, nil
	}

	if int64(sc) > math.MaxInt64/factor || int64(sc) < math.MinInt64/factor {
		return 0, &StregCentsOverflowError{Msg: fmt.Sprintf("%d * %d overflows", sc, amount)}
	}

	return sc * StregCents(factor), nil
}

// SumStregCents adds values left to right and stops at the first overflow.
func SumStregCents(values ...StregCents) (StregCents, error) {
	var sum StregCents
	for _, v := range values {
		var err error
		sum, err = sum.Add(v)
		if err != nil {
			return 0, err
		}
	}

	return sum, nil
}

func (sc StregCents) String() string {
	sign := ""
	v := uint64(sc)
	if sc < 0 {
		sign = "-"
		v = uint64(-(sc + 1)) + 1
	}

	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

func (sc StregCents) MarshalJSON() ([]byte, error) {
	return json.Marshal(sc.String())
}

// Package relative buckets charge counts and induced-charge displacements into the coarse
// qualitative amounts used when describing objects.
package relative

import (
	"errors"
	"fmt"
	"math"
)

// ErrNoBucket is returned for charge counts outside every bucket.
var ErrNoBucket = errors.New("charge outside relative description ranges")

// MaxCharge is the largest charge magnitude any object can carry.
const MaxCharge = 57

// Amount describes how many charges an object shows.
type Amount int

const (
	None Amount = iota
	AFew
	Several
	Many
)

func (a Amount) String() string {
	switch a {
	case None:
		return "none"
	case AFew:
		return "a_few"
	case Several:
		return "several"
	case Many:
		return "many"
	}
	return fmt.Sprintf("amount(%d)", int(a))
}

type amountBand struct {
	amount Amount
	lo, hi int
}

var amountBands = []amountBand{
	{None, 0, 0},
	{AFew, 1, 14},
	{Several, 15, 39},
	{Many, 40, MaxCharge},
}

// ForCharge returns the bucket for the magnitude of n. The first band containing |n| wins.
func ForCharge(n int) (Amount, error) {
	b, err := bandOf(n)
	if err != nil {
		return None, err
	}
	return b.amount, nil
}

// RangeOf returns the closed range of the bucket containing |n|. Two charges describe the same
// when their ranges are equal.
func RangeOf(n int) (lo, hi int, err error) {
	b, err := bandOf(n)
	if err != nil {
		return 0, 0, err
	}
	return b.lo, b.hi, nil
}

// SameBucket reports whether a and b fall into the same bucket.
func SameBucket(a, b int) bool {
	la, _, errA := RangeOf(a)
	lb, _, errB := RangeOf(b)
	return errA == nil && errB == nil && la == lb
}

func bandOf(n int) (amountBand, error) {
	if n < 0 {
		n = -n
	}
	for _, b := range amountBands {
		if n >= b.lo && n <= b.hi {
			return b, nil
		}
	}
	return amountBand{}, fmt.Errorf("charge %d: %w", n, ErrNoBucket)
}

// Induction describes how far the wall's movable charges have been pushed.
type Induction int

const (
	ALittleBit Induction = iota
	ALot
	QuiteALot
)

func (i Induction) String() string {
	switch i {
	case ALittleBit:
		return "a_little_bit"
	case ALot:
		return "a_lot"
	case QuiteALot:
		return "quite_a_lot"
	}
	return fmt.Sprintf("induction(%d)", int(i))
}

type inductionBand struct {
	induction Induction
	lo, hi    float64
}

var inductionBands = []inductionBand{
	{ALittleBit, 0, 10},
	{ALot, 10, 20},
	{QuiteALot, 20, math.Inf(1)},
}

// ForDisplacement buckets a displacement magnitude. On a shared edge the later band wins.
// Negative displacements count as a little bit.
func ForDisplacement(d float64) Induction {
	found := ALittleBit
	for _, b := range inductionBands {
		if d >= b.lo && d <= b.hi {
			found = b.induction
		}
	}
	return found
}

// Package curmax provides a current/maximum pair whose current value is
// clamped to the maximum after every write.
package curmax

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

var ErrDivisionByZero = errors.New("curmax: division by zero")

// CurMax holds a current value that never exceeds Max. Arithmetic saturates at
// the bounds of T before the result is clamped to Max.
type CurMax[T constraints.Integer] struct {
	Cur T `json:"cur"`
	Max T `json:"max"`
}

// New clamps cur down to max. It never raises cur.
func New[T constraints.Integer](cur, max T) CurMax[T] {
	return CurMax[T]{Cur: min(cur, max), Max: max}
}

func (c *CurMax[T]) Set(value T) {
	c.Cur = min(value, c.Max)
}

func (c CurMax[T]) Get() (T, T) {
	return c.Cur, c.Max
}

func (c CurMax[T]) Add(n T) CurMax[T] {
	return New(SaturatingAdd(c.Cur, n), c.Max)
}

func (c *CurMax[T]) AddAssign(n T) {
	c.Cur = c.Add(n).Cur
}

func (c CurMax[T]) Sub(n T) CurMax[T] {
	return New(SaturatingSub(c.Cur, n), c.Max)
}

func (c *CurMax[T]) SubAssign(n T) {
	c.Cur = c.Sub(n).Cur
}

func (c CurMax[T]) Mul(n T) CurMax[T] {
	return New(SaturatingMul(c.Cur, n), c.Max)
}

func (c *CurMax[T]) MulAssign(n T) {
	c.Cur = c.Mul(n).Cur
}

// Div returns ErrDivisionByZero for n == 0 and leaves c unchanged.
func (c CurMax[T]) Div(n T) (CurMax[T], error) {
	if n == 0 {
		return c, ErrDivisionByZero
	}
	lo, hi := bounds[T]()
	if lo < 0 {
		if neg := lo - lo - 1; n == neg && c.Cur == lo {
			return New(hi, c.Max), nil
		}
	}
	return New(c.Cur/n, c.Max), nil
}

func (c *CurMax[T]) DivAssign(n T) error {
	next, err := c.Div(n)
	if err != nil {
		return err
	}
	c.Cur = next.Cur
	return nil
}

func (c CurMax[T]) String() string {
	return fmt.Sprintf("%d/%d", c.Cur, c.Max)
}

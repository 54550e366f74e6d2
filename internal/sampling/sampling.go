// Package sampling holds the random primitives every generation stage draws from.
package sampling

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/Rana718/vitalgen/internal/model"
)

// ErrInvalidArgument reports a malformed sampling domain or date range.
var ErrInvalidArgument = errors.New("invalid argument")

// NewRand returns a source seeded from the clock. Runs are not reproducible
// unless the caller supplies its own *rand.Rand.
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// IndexSequence yields every index of [0,n) once in random order and then
// keeps yielding uniformly random indices forever.
type IndexSequence struct {
	rnd     *rand.Rand
	indices []int
	pos     int
}

func NewIndexSequence(rnd *rand.Rand, n int) (*IndexSequence, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: index sequence over %d elements", ErrInvalidArgument, n)
	}
	return &IndexSequence{rnd: rnd, indices: rnd.Perm(n)}, nil
}

func (s *IndexSequence) Next() int {
	if s.pos < len(s.indices) {
		idx := s.indices[s.pos]
		s.pos++
		return idx
	}
	return s.indices[s.rnd.Intn(len(s.indices))]
}

// RandomDateBetween draws a day uniformly from [start, end]. A zero end
// means today.
func RandomDateBetween(rnd *rand.Rand, start, end model.Date) (model.Date, error) {
	if start.IsZero() {
		return model.Date{}, fmt.Errorf("%w: missing start date", ErrInvalidArgument)
	}
	if end.IsZero() {
		end = model.DateOf(time.Now())
	}
	if end.Before(start) {
		return model.Date{}, fmt.Errorf("%w: end %s before start %s", ErrInvalidArgument, end, start)
	}
	span := model.DaysBetween(start, end)
	return start.AddDays(rnd.Intn(span + 1)), nil
}

// OrderedDates returns a and b with the earlier one first.
func OrderedDates(a, b model.Date) (model.Date, model.Date) {
	if b.Before(a) {
		return b, a
	}
	return a, b
}

// AgeFromDays decomposes a day count as 365-day years and 30-day months.
func AgeFromDays(days int) model.Age {
	years := floorDiv(days, 365)
	months := floorDiv(days-years*365, 30)
	return model.Age{
		Years:  years,
		Months: months,
		Days:   days - years*365 - months*30,
	}
}

// AgeAt is AgeFromDays over the days between birth and at.
func AgeAt(birth, at model.Date) model.Age {
	return AgeFromDays(model.DaysBetween(birth, at))
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

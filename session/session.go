// Package session implements a two slot workspace of analyzed polynomials
// combined with the arithmetic operations.
package session

import (
	"errors"
	"fmt"

	"github.com/tuneinsight/polyan/analysis"
	"github.com/tuneinsight/polyan/polynomial"
	"github.com/tuneinsight/polyan/xreal"
)

// MessageTooBig is the message set when a polynomial is rejected by the validity gate.
const MessageTooBig = "Polynomial too big"

// ErrUndefined is returned by the operations reading a slot that holds no polynomial.
var ErrUndefined = errors.New("polynomial not defined")

// Slot identifies one of the two polynomials of a Session.
type Slot int

const (
	First = Slot(iota)
	Second
)

// Other returns the slot that is not s.
func (s Slot) Other() Slot {
	if s == First {
		return Second
	}
	return First
}

func (s Slot) String() string {
	switch s {
	case First:
		return "First"
	case Second:
		return "Second"
	default:
		return fmt.Sprintf("Slot(%d)", int(s))
	}
}

func (s Slot) valid() bool {
	return s == First || s == Second
}

// Op is an arithmetic operation between the two slots.
type Op int

const (
	Add = Op(iota)
	Subtract
	Multiply
	Divide
)

func (op Op) String() string {
	switch op {
	case Add:
		return "Add"
	case Subtract:
		return "Subtract"
	case Multiply:
		return "Multiply"
	case Divide:
		return "Divide"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// Session holds two analyzed polynomials, the selected slot and the
// message of the last operation.
// A Session is not safe for concurrent use.
type Session struct {
	cache    *analysis.Cache
	slots    [2]*analysis.Analysis
	selected Slot
	message  string
}

// NewSession creates a new Session whose polynomials are analyzed by analyzer.
// Analyses are memoized in a Cache of default capacity.
func NewSession(analyzer *analysis.Analyzer) *Session {
	return &Session{
		cache: analysis.NewCache(analyzer, analysis.DefaultCacheCapacity),
	}
}

// Set builds the polynomial of the given coefficients, lowest degree first,
// and stores its analysis in slot. If the polynomial does not pass the
// validity gate, the slot is left unchanged and the message is MessageTooBig.
func (s *Session) Set(slot Slot, coeffs []float64) (err error) {

	if !slot.valid() {
		return fmt.Errorf("cannot Set: invalid slot %s", slot)
	}

	s.message = ""

	if err = s.store(slot, polynomial.NewPolynomial(coeffs)); err != nil {
		return fmt.Errorf("cannot Set: %w", err)
	}

	return
}

// Apply replaces target with target op other, where other is the other slot.
// Both slots must be defined. For Divide, the quotient is stored and a non
// zero remainder is reported in the message as "Rest: <formula>".
// If the result does not pass the validity gate, target is left unchanged
// and the message is MessageTooBig.
func (s *Session) Apply(op Op, target Slot) (err error) {

	if !target.valid() {
		return fmt.Errorf("cannot Apply: invalid slot %s", target)
	}

	a, b := s.slots[target], s.slots[target.Other()]

	if a == nil || b == nil {
		return fmt.Errorf("cannot Apply: %w", ErrUndefined)
	}

	var result, remainder *polynomial.Polynomial

	switch op {
	case Add:
		result = polynomial.Add(a.Polynomial, b.Polynomial)
	case Subtract:
		result = polynomial.Sub(a.Polynomial, b.Polynomial)
	case Multiply:
		result = polynomial.Mul(a.Polynomial, b.Polynomial)
	case Divide:
		result, remainder = polynomial.Div(a.Polynomial, b.Polynomial)
	default:
		return fmt.Errorf("cannot Apply: invalid operation %s", op)
	}

	s.message = ""

	if err = s.store(target, result); err != nil {
		return fmt.Errorf("cannot Apply: %s: %w", op, err)
	}

	if remainder != nil && !remainder.IsZero() {
		s.message = fmt.Sprintf("Rest: %s", remainder)
	}

	return
}

func (s *Session) store(slot Slot, p *polynomial.Polynomial) (err error) {

	if err = s.cache.Parameters().Validate(p); err != nil {
		s.message = MessageTooBig
		return
	}

	an, err := s.cache.Get(p)
	if err != nil {
		s.message = err.Error()
		return
	}

	s.slots[slot] = an

	return
}

// Select sets the selected slot.
func (s *Session) Select(slot Slot) {
	if slot.valid() {
		s.selected = slot
	}
}

// Selected returns the selected slot.
func (s *Session) Selected() Slot {
	return s.selected
}

// Get returns the analysis stored in slot and true, or nil and false if the slot is empty.
func (s *Session) Get(slot Slot) (an *analysis.Analysis, ok bool) {
	if !slot.valid() {
		return nil, false
	}
	an = s.slots[slot]
	return an, an != nil
}

// Limit returns the limit of the polynomial of slot when x approaches the given value.
func (s *Session) Limit(slot Slot, approach xreal.Value) (xreal.Value, error) {

	an, ok := s.Get(slot)
	if !ok {
		return xreal.Undefined(), fmt.Errorf("cannot Limit: %s: %w", slot, ErrUndefined)
	}

	return an.Polynomial.Limit(approach), nil
}

// Message returns the message of the last operation, empty if there is none.
func (s *Session) Message() string {
	return s.message
}

// Reset empties both slots and the message. The selected slot is kept.
func (s *Session) Reset() {
	s.slots = [2]*analysis.Analysis{}
	s.message = ""
}

// Package wizard drives the guest booking flow:
// home → guest → booking → payment → bill, search → bill for returning guests,
// and back to home from the bill.
//
// A Wizard belongs to one user session and is not safe for concurrent use.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/example/oceanview/internal/domain/pricing"
	"github.com/example/oceanview/internal/domain/reservation"
	"github.com/example/oceanview/internal/domain/room"
	"github.com/example/oceanview/internal/internaltypes"
)

type Wizard struct {
	gateway reservation.Gateway
	catalog room.Catalog
	log     *zap.Logger

	step         Step
	draft        reservation.Draft
	reservation  *reservation.Reservation
	searchNumber string
	loading      bool
	err          error
}

type Option func(*Wizard)

func WithLogger(l *zap.Logger) Option {
	return func(w *Wizard) {
		if l != nil {
			w.log = l
		}
	}
}

func WithCatalog(c room.Catalog) Option {
	return func(w *Wizard) { w.catalog = c }
}

func New(gw reservation.Gateway, opts ...Option) *Wizard {
	w := &Wizard{
		gateway: gw,
		catalog: room.Default(),
		log:     zap.NewNop(),
		step:    StepHome,
		draft:   reservation.NewDraft(),
	}
	for _, o := range opts {
		o(w)
	}
	return w
}

func (w *Wizard) Step() Step { return w.step }
func (w *Wizard) Draft() reservation.Draft { return w.draft }
func (w *Wizard) Catalog() room.Catalog { return w.catalog }
func (w *Wizard) SearchNumber() string { return w.searchNumber }
func (w *Wizard) Loading() bool { return w.loading }
func (w *Wizard) Err() error { return w.err }
func (w *Wizard) Quote() pricing.Quote { return pricing.QuoteDraft(w.catalog, w.draft) }
func (w *Wizard) Nights() int { return w.Quote().Nights }
func (w *Wizard) Total() float64 { return w.Quote().Total }
func (w *Wizard) CanContinueToBooking() bool { return w.draft.GuestDetailsComplete() }
func (w *Wizard) CanSubmitBooking() bool { return w.draft.StayDatesComplete() }

// Reservation returns the server-confirmed reservation, if one is held.
func (w *Wizard) Reservation() (reservation.Reservation, bool) {
	if w.reservation == nil {
		return reservation.Reservation{}, false
	}
	return *w.reservation, true
}

// SetField updates one draft field by its wire name. Room types must exist in
// the catalog.
func (w *Wizard) SetField(name, value string) error {
	if name == "roomType" && !w.catalog.Has(strings.TrimSpace(value)) {
		return fmt.Errorf("unknown room type %q", value)
	}
	return w.draft.Set(name, value)
}

// SetFields applies every field and reports all rejected ones together.
func (w *Wizard) SetFields(fields map[string]string) error {
	var errs []error
	for name, value := range fields {
		if err := w.SetField(name, value); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (w *Wizard) SetSearchNumber(number string) { w.searchNumber = strings.TrimSpace(number) }

// BeginBooking starts a new booking from the home step.
func (w *Wizard) BeginBooking() error {
	if err := w.expect(StepHome, "begin booking"); err != nil {
		return err
	}
	return w.move(StepGuest)
}

// BeginSearch opens the reservation lookup from the home step.
func (w *Wizard) BeginSearch() error {
	if err := w.expect(StepHome, "begin search"); err != nil {
		return err
	}
	return w.move(StepSearch)
}

// ContinueToBooking leaves guest details once guest name and email are set.
func (w *Wizard) ContinueToBooking() error {
	if err := w.expect(StepGuest, "continue to booking"); err != nil {
		return err
	}
	if !w.draft.GuestDetailsComplete() {
		return w.fail(fmt.Errorf("%w: guest name and email", internaltypes.ErrValidationBlocked))
	}
	return w.move(StepBooking)
}

// BackToGuest returns to the guest form. Draft values are kept.
func (w *Wizard) BackToGuest() error {
	if err := w.expect(StepBooking, "back to guest"); err != nil {
		return err
	}
	return w.move(StepGuest)
}

// SubmitBooking creates the reservation on the server and advances to payment.
// On failure the wizard stays on the booking step with no reservation held.
func (w *Wizard) SubmitBooking(ctx context.Context) error {
	if err := w.expect(StepBooking, "submit booking"); err != nil {
		return err
	}
	if !w.draft.StayDatesComplete() {
		return w.fail(fmt.Errorf("%w: check-in and check-out dates", internaltypes.ErrValidationBlocked))
	}

	w.loading = true
	res, err := w.gateway.Create(ctx, w.draft)
	w.loading = false
	if err != nil {
		w.log.Warn("create reservation failed", zap.String("guest", w.draft.GuestName), zap.Error(err))
		return w.fail(fmt.Errorf("create reservation: %w", err))
	}

	w.reservation = &res
	w.log.Info("reservation created",
		zap.String("reservation_number", res.ReservationNumber),
		zap.Float64("total_bill", res.TotalBill))
	return w.move(StepPayment)
}

// CompletePayment marks the held reservation PAID on the server, with the
// payment method currently selected in the draft, and advances to the bill.
func (w *Wizard) CompletePayment(ctx context.Context) error {
	if err := w.expect(StepPayment, "complete payment"); err != nil {
		return err
	}
	if w.reservation == nil {
		return w.fail(fmt.Errorf("%w: no reservation to pay", internaltypes.ErrIllegalTransition))
	}

	// The method picked on the payment step replaces the one sent at create
	// time. Every other field is the server's record as fetched.
	patch := w.reservation.WithPaymentStatus(reservation.PaymentPaid)
	patch.PaymentMethod = w.draft.PaymentMethod

	w.loading = true
	res, err := w.gateway.Update(ctx, patch.ReservationNumber, patch)
	w.loading = false
	if err != nil {
		w.log.Warn("complete payment failed",
			zap.String("reservation_number", patch.ReservationNumber), zap.Error(err))
		return w.fail(fmt.Errorf("complete payment: %w", err))
	}

	w.reservation = &res
	w.log.Info("payment completed",
		zap.String("reservation_number", res.ReservationNumber),
		zap.String("payment_status", string(res.PaymentStatus)))
	return w.move(StepBill)
}

// Search looks up an existing reservation by its number and shows its bill.
func (w *Wizard) Search(ctx context.Context, number string) error {
	if err := w.expect(StepSearch, "search"); err != nil {
		return err
	}
	w.SetSearchNumber(number)
	if w.searchNumber == "" {
		return w.fail(fmt.Errorf("%w: reservation number", internaltypes.ErrValidationBlocked))
	}

	w.loading = true
	res, err := w.gateway.FetchByNumber(ctx, w.searchNumber)
	w.loading = false
	if err != nil {
		w.log.Info("reservation lookup failed", zap.String("reservation_number", w.searchNumber), zap.Error(err))
		return w.fail(fmt.Errorf("find reservation %s: %w", w.searchNumber, err))
	}

	w.reservation = &res
	return w.move(StepBill)
}

// Reset starts over from the bill, discarding the draft and reservation.
func (w *Wizard) Reset() error {
	if err := w.expect(StepBill, "reset"); err != nil {
		return err
	}
	w.clear()
	return nil
}

// Cancel abandons the flow from any step between home and the bill.
func (w *Wizard) Cancel() error {
	switch w.step {
	case StepGuest, StepBooking, StepPayment, StepSearch:
		w.clear()
		return nil
	case StepHome, StepBill:
	}
	return fmt.Errorf("%w: cancel from %s", internaltypes.ErrIllegalTransition, w.step)
}

// Bill summarizes the held reservation. ok is false when there is none.
func (w *Wizard) Bill() (Bill, bool) {
	r, ok := w.Reservation()
	if !ok {
		return Bill{}, false
	}
	return NewBill(w.catalog, r), true
}

func (w *Wizard) expect(want Step, op string) error {
	if w.step != want {
		return fmt.Errorf("%w: %s from %s", internaltypes.ErrIllegalTransition, op, w.step)
	}
	return nil
}

func (w *Wizard) move(to Step) error {
	if !canMove(w.step, to) {
		return fmt.Errorf("%w: %s -> %s", internaltypes.ErrIllegalTransition, w.step, to)
	}
	w.log.Debug("wizard step", zap.Stringer("from", w.step), zap.Stringer("to", to))
	w.step = to
	w.err = nil
	return nil
}

func (w *Wizard) fail(err error) error {
	w.err = err
	return err
}

func (w *Wizard) clear() {
	w.log.Debug("wizard reset", zap.Stringer("from", w.step))
	w.step = StepHome
	w.draft = reservation.NewDraft()
	w.reservation = nil
	w.searchNumber = ""
	w.loading = false
	w.err = nil
}

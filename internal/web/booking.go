package web

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/example/oceanview/internal/domain/pricing"
	"github.com/example/oceanview/internal/domain/reservation"
	"github.com/example/oceanview/internal/domain/room"
	"github.com/example/oceanview/internal/domain/wizard"
	"github.com/example/oceanview/internal/internaltypes"
)

const wizardCookie = "oceanview_wizard"

var (
	guestFields   = []string{"guestName", "email", "contactNumber", "address", "idNumber"}
	bookingFields = []string{"roomType", "numberOfGuests", "checkInDate", "checkOutDate", "specialRequests"}
	paymentFields = []string{"paymentMethod"}
)

type wizardView struct {
	Step         wizard.Step
	Steps        []wizard.Step
	Draft        reservation.Draft
	Quote        pricing.Quote
	Rooms        []room.Entry
	RoomLabel    string
	Reservation  reservation.Reservation
	Bill         wizard.Bill
	HasBill      bool
	SearchNumber string
	CanContinue  bool
	CanSubmit    bool
	Methods      []reservation.PaymentMethod
}

func newWizardView(w *wizard.Wizard) wizardView {
	v := wizardView{
		Step:         w.Step(),
		Steps:        []wizard.Step{wizard.StepGuest, wizard.StepBooking, wizard.StepPayment, wizard.StepBill},
		Draft:        w.Draft(),
		Quote:        w.Quote(),
		Rooms:        w.Catalog().All(),
		RoomLabel:    w.Catalog().Label(w.Draft().RoomType),
		SearchNumber: w.SearchNumber(),
		CanContinue:  w.CanContinueToBooking(),
		CanSubmit:    w.CanSubmitBooking(),
		Methods:      []reservation.PaymentMethod{reservation.PaymentCash, reservation.PaymentCard},
	}
	v.Reservation, _ = w.Reservation()
	v.Bill, v.HasBill = w.Bill()
	return v
}

func stepTemplate(s wizard.Step) string {
	switch s {
	case wizard.StepHome:
		return "templates/wizard_home.html"
	case wizard.StepGuest:
		return "templates/wizard_guest.html"
	case wizard.StepBooking:
		return "templates/wizard_booking.html"
	case wizard.StepPayment:
		return "templates/wizard_payment.html"
	case wizard.StepBill:
		return "templates/wizard_bill.html"
	case wizard.StepSearch:
		return "templates/wizard_search.html"
	}
	return "templates/wizard_home.html"
}

// acquireWizard locks the browser's wizard for the rest of the request.
func (s *Server) acquireWizard(w http.ResponseWriter, r *http.Request) (*wizard.Wizard, func()) {
	var id string
	if c, err := r.Cookie(wizardCookie); err == nil {
		id = c.Value
	}
	got, wz, release := s.Wizards.Acquire(id)
	if got != id {
		http.SetCookie(w, &http.Cookie{
			Name:     wizardCookie,
			Value:    got,
			Path:     "/booking",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			Secure:   r.TLS != nil,
		})
	}
	return wz, release
}

func (s *Server) renderWizard(w http.ResponseWriter, r *http.Request, status int, wz *wizard.Wizard, flash string) {
	if flash == "" && wz.Err() != nil {
		flash = wizardMessage(wz.Step(), wz.Err())
	}
	s.render(w, r, status, stepTemplate(wz.Step()), tmplData{
		Title:  wz.Step().Title(),
		Flash:  flash,
		Wizard: newWizardView(wz),
	})
}

func (s *Server) handleBooking(w http.ResponseWriter, r *http.Request) {
	wz, release := s.acquireWizard(w, r)
	defer release()
	s.renderWizard(w, r, http.StatusOK, wz, "")
}

func (s *Server) handleBookingAction(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	wz, release := s.acquireWizard(w, r)
	defer release()

	// The backend call outlives a client that navigates away; the result is
	// still applied to this browser's wizard.
	ctx := context.WithoutCancel(r.Context())
	action := r.PathValue("action")

	var err error
	switch action {
	case "begin":
		err = wz.BeginBooking()
	case "find":
		err = wz.BeginSearch()
	case "update":
		err = s.applyForm(wz, r, guestFields, bookingFields, paymentFields)
	case "continue":
		if err = s.applyForm(wz, r, guestFields); err == nil {
			err = wz.ContinueToBooking()
		}
	case "back":
		if err = s.applyForm(wz, r, bookingFields); err == nil {
			err = wz.BackToGuest()
		}
	case "submit":
		if err = s.applyForm(wz, r, bookingFields); err == nil {
			err = wz.SubmitBooking(ctx)
		}
	case "pay":
		if err = s.applyForm(wz, r, paymentFields); err == nil {
			err = wz.CompletePayment(ctx)
		}
	case "search":
		err = wz.Search(ctx, r.PostFormValue("reservationNumber"))
	case "reset":
		err = wz.Reset()
	case "cancel":
		err = wz.Cancel()
	default:
		http.NotFound(w, r)
		return
	}

	if err != nil {
		s.logger().Info("booking action rejected",
			zap.String("action", action),
			zap.Stringer("step", wz.Step()),
			zap.Error(err))
		s.renderWizard(w, r, actionStatus(err), wz, wizardMessage(wz.Step(), err))
		return
	}
	http.Redirect(w, r, "/booking", http.StatusSeeOther)
}

// applyForm copies the posted values of the listed fields into the draft.
// Fields absent from the form are left alone.
func (s *Server) applyForm(wz *wizard.Wizard, r *http.Request, groups ...[]string) error {
	fields := map[string]string{}
	for _, g := range groups {
		for _, name := range g {
			if vs, ok := r.PostForm[name]; ok && len(vs) > 0 {
				fields[name] = vs[0]
			}
		}
	}
	return wz.SetFields(fields)
}

func actionStatus(err error) int {
	switch {
	case errors.Is(err, internaltypes.ErrIllegalTransition):
		return http.StatusConflict
	case errors.Is(err, internaltypes.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, internaltypes.ErrRequestFailed):
		return http.StatusBadGateway
	}
	return http.StatusUnprocessableEntity
}

func wizardMessage(step wizard.Step, err error) string {
	switch {
	case errors.Is(err, internaltypes.ErrNotFound):
		return "Reservation not found"
	case errors.Is(err, internaltypes.ErrIllegalTransition):
		return "That action is not available on this step."
	case errors.Is(err, internaltypes.ErrRequestFailed) && step == wizard.StepBooking:
		return "Failed to create reservation"
	case errors.Is(err, internaltypes.ErrRequestFailed) && step == wizard.StepPayment:
		return "Failed to complete payment. Please try again."
	case errors.Is(err, internaltypes.ErrRequestFailed):
		return "Unable to connect to server. Please try again."
	}
	return "Error: " + err.Error()
}

package wizard

import "fmt"

// Step is one stage of the booking flow. The set is closed; every switch over
// Step in this module lists all of them.
type Step uint8

const (
	StepHome Step = iota
	StepGuest
	StepBooking
	StepPayment
	StepBill
	StepSearch
)

// Steps lists every step in flow order.
func Steps() []Step {
	return []Step{StepHome, StepGuest, StepBooking, StepPayment, StepBill, StepSearch}
}

func (s Step) String() string {
	switch s {
	case StepHome:
		return "home"
	case StepGuest:
		return "guest"
	case StepBooking:
		return "booking"
	case StepPayment:
		return "payment"
	case StepBill:
		return "bill"
	case StepSearch:
		return "search"
	}
	return fmt.Sprintf("Step(%d)", uint8(s))
}

// Title is the heading shown for the step.
func (s Step) Title() string {
	switch s {
	case StepHome:
		return "Welcome"
	case StepGuest:
		return "Guest Information"
	case StepBooking:
		return "Room & Dates"
	case StepPayment:
		return "Payment"
	case StepBill:
		return "Your Bill"
	case StepSearch:
		return "Find Reservation"
	}
	return s.String()
}

func ParseStep(name string) (Step, error) {
	for _, s := range Steps() {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown step %q", name)
}

// canMove reports whether the flow allows going from one step to another.
func canMove(from, to Step) bool {
	switch from {
	case StepHome:
		return to == StepGuest || to == StepSearch
	case StepGuest:
		return to == StepBooking || to == StepHome
	case StepBooking:
		return to == StepPayment || to == StepGuest || to == StepHome
	case StepPayment:
		return to == StepBill || to == StepHome
	case StepBill:
		return to == StepHome
	case StepSearch:
		return to == StepBill || to == StepHome
	}
	return false
}

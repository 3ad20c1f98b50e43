package models

// Booking wizard steps. The flow is strictly linear; Back re-enters the prior
// step and discards the deeper selection.
const (
	StepSelectDate = "select-date"
	StepSelectTime = "select-time"
	StepConfirm    = "confirm"
)

// WizardSession holds the progress of one booking wizard between requests.
type WizardSession struct {
	ID             string     `json:"id"`
	PatientID      string     `json:"patientId"`
	TherapistID    string     `json:"therapistId"`
	Step           string     `json:"step"`
	WindowFrom     string     `json:"windowFrom"` // "2024-06-01"
	WindowTo       string     `json:"windowTo"`
	AvailableDates []string   `json:"availableDates,omitempty"`
	SelectedDate   string     `json:"selectedDate,omitempty"`
	DateSlots      []TimeSlot `json:"dateSlots,omitempty"`
	SelectedSlot   *TimeSlot  `json:"selectedSlot,omitempty"`
}

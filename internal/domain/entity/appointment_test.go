package entity

import "testing"

func TestAppointmentStatusTransitions(t *testing.T) {
	all := []AppointmentStatus{
		AppointmentStatusPending,
		AppointmentStatusApproved,
		AppointmentStatusRejected,
		AppointmentStatusHeld,
		AppointmentStatusCompleted,
		AppointmentStatusCancelled,
	}

	legal := map[AppointmentStatus]map[AppointmentStatus]bool{
		AppointmentStatusPending: {
			AppointmentStatusApproved: true,
			AppointmentStatusHeld:     true,
			AppointmentStatusRejected: true,
		},
		AppointmentStatusHeld: {
			AppointmentStatusApproved: true,
			AppointmentStatusRejected: true,
		},
	}

	for _, from := range all {
		for _, to := range all {
			a := &Appointment{Status: from}
			got := a.CanTransitionTo(to)
			want := legal[from][to]
			if got != want {
				t.Errorf("transition %s -> %s: got %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestParseAppointmentStatus(t *testing.T) {
	tests := []struct {
		in    string
		want  AppointmentStatus
		valid bool
	}{
		{"pending", AppointmentStatusPending, true},
		{"approved", AppointmentStatusApproved, true},
		{"rejected", AppointmentStatusRejected, true},
		{"held", AppointmentStatusHeld, true},
		{"completed", AppointmentStatusCompleted, true},
		{"cancelled", AppointmentStatusCancelled, true},
		{"", "", false},
		{"APPROVED", "", false},
		{"confirmed", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseAppointmentStatus(tt.in)
		if ok != tt.valid || got != tt.want {
			t.Errorf("ParseAppointmentStatus(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.valid)
		}
	}
}

func TestIsPaid(t *testing.T) {
	a := &Appointment{PaymentStatus: PaymentStatusPending}
	if a.IsPaid() {
		t.Error("pending payment reported as paid")
	}
	a.PaymentStatus = PaymentStatusCompleted
	if !a.IsPaid() {
		t.Error("completed payment not reported as paid")
	}
	a.PaymentStatus = PaymentStatusFailed
	if a.IsPaid() {
		t.Error("failed payment reported as paid")
	}
}

package models

import "testing"

func TestIsForwardTransition(t *testing.T) {
	tests := []struct {
		from, to ShippingStatus
		want     bool
	}{
		{ShippingAwaiting, ShippingInTransit, true},
		{ShippingAwaiting, ShippingDelivered, true},
		{ShippingInTransit, ShippingDelivered, true},
		{ShippingAwaiting, ShippingAwaiting, true},
		{ShippingDelivered, ShippingDelivered, true},
		{ShippingInTransit, ShippingAwaiting, false},
		{ShippingDelivered, ShippingInTransit, false},
		{ShippingDelivered, ShippingAwaiting, false},
	}

	for _, tt := range tests {
		if got := IsForwardTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("IsForwardTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestShippableNow(t *testing.T) {
	tests := []struct {
		name   string
		record Alumni
		want   bool
	}{
		{"approved mail", Alumni{Status: StatusApproved, DeliveryOption: DeliveryMail}, true},
		{"approved pickup", Alumni{Status: StatusApproved, DeliveryOption: DeliveryPickup}, false},
		{"pending mail", Alumni{Status: StatusPending, DeliveryOption: DeliveryMail}, false},
		{"rejected mail", Alumni{Status: StatusRejected, DeliveryOption: DeliveryMail}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.record.ShippableNow(); got != tt.want {
				t.Errorf("ShippableNow() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusApproved, StatusRejected} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%s) = false", s)
		}
	}
	if ValidStatus(Status("archived")) {
		t.Error("ValidStatus(archived) = true")
	}
}

func TestValidShippingStatus(t *testing.T) {
	for _, s := range []ShippingStatus{ShippingAwaiting, ShippingInTransit, ShippingDelivered} {
		if !ValidShippingStatus(s) {
			t.Errorf("ValidShippingStatus(%s) = false", s)
		}
	}
	if ValidShippingStatus(ShippingStatus("returned")) {
		t.Error("ValidShippingStatus(returned) = true")
	}
}

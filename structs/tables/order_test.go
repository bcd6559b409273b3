package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOrderStatus(t *testing.T) {
	tests := []struct {
		input    string
		expected OrderStatus
		ok       bool
	}{
		{"pending", OrderStatusPending, true},
		{"confirmed", OrderStatusConfirmed, true},
		{"shipped", OrderStatusShipped, true},
		{"delivered", OrderStatusDelivered, true},
		{"cancelled", OrderStatusCancelled, true},

		// French back-office aliases
		{"en_attente", OrderStatusPending, true},
		{"confirmee", OrderStatusConfirmed, true},
		{"en_cours", OrderStatusConfirmed, true},
		{"expediee", OrderStatusShipped, true},
		{"livree", OrderStatusDelivered, true},
		{"annulee", OrderStatusCancelled, true},

		{"", "", false},
		{"PENDING", "", false},
		{"unknown", "", false},
		{"shipped ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			status, ok := ParseOrderStatus(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, status)
		})
	}
}

func TestOrderStatusTransitions(t *testing.T) {
	all := []OrderStatus{
		OrderStatusPending,
		OrderStatusConfirmed,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}

	allowed := map[OrderStatus][]OrderStatus{
		OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
		OrderStatusConfirmed: {OrderStatusShipped, OrderStatusCancelled},
		OrderStatusShipped:   {OrderStatusDelivered},
		OrderStatusDelivered: {},
		OrderStatusCancelled: {},
	}

	for from, nexts := range allowed {
		legal := map[OrderStatus]bool{from: true} // same-status updates are no-ops
		for _, n := range nexts {
			legal[n] = true
		}

		for _, to := range all {
			assert.Equal(t, legal[to], from.CanTransitionTo(to),
				"transition %s -> %s", from, to)
		}
	}
}

package policy

import (
	"testing"

	"github.com/Iyedchebbi/SofaSteam2026/models"
)

func TestTransitionGraph(t *testing.T) {
	cases := []struct {
		from, to models.OrderStatus
		ok       bool
	}{
		{models.OrderStatusPending, models.OrderStatusConfirmed, true},
		{models.OrderStatusPending, models.OrderStatusCancelled, true},
		{models.OrderStatusConfirmed, models.OrderStatusCancelled, true},
		{models.OrderStatusConfirmed, models.OrderStatusCompleted, true},
		{models.OrderStatusConfirmed, models.OrderStatusPending, false},
		{models.OrderStatusCancelled, models.OrderStatusPending, false},
		{models.OrderStatusCancelled, models.OrderStatusConfirmed, false},
		{models.OrderStatusCompleted, models.OrderStatusCancelled, false},
		{models.OrderStatusPending, models.OrderStatusCompleted, false},
	}
	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.ok {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.ok)
		}
	}
}

func TestCustomerMayOnlyCancelOwnPending(t *testing.T) {
	if err := CanUpdateStatus(models.RoleCustomer, true, models.OrderStatusPending, models.OrderStatusCancelled); err != nil {
		t.Fatalf("owner cancelling pending booking: %v", err)
	}
	if err := CanUpdateStatus(models.RoleCustomer, true, models.OrderStatusConfirmed, models.OrderStatusCancelled); err != ErrNotAllowed {
		t.Fatalf("expected ErrNotAllowed for customer cancelling confirmed booking, got %v", err)
	}
	if err := CanUpdateStatus(models.RoleCustomer, false, models.OrderStatusPending, models.OrderStatusCancelled); err != ErrNotOwner {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	if err := CanUpdateStatus(models.RoleCustomer, true, models.OrderStatusPending, models.OrderStatusConfirmed); err != ErrNotAllowed {
		t.Fatalf("expected ErrNotAllowed for customer confirming, got %v", err)
	}
}

func TestAdminTransitions(t *testing.T) {
	if err := CanUpdateStatus(models.RoleAdmin, false, models.OrderStatusPending, models.OrderStatusConfirmed); err != nil {
		t.Fatalf("admin confirm: %v", err)
	}
	if err := CanUpdateStatus(models.RoleAdmin, false, models.OrderStatusConfirmed, models.OrderStatusCancelled); err != nil {
		t.Fatalf("admin cancel confirmed: %v", err)
	}
	if err := CanUpdateStatus(models.RoleAdmin, false, models.OrderStatusConfirmed, models.OrderStatusPending); err != ErrIllegalTransition {
		t.Fatalf("expected ErrIllegalTransition for confirmed -> pending, got %v", err)
	}
}

func TestDeletionGates(t *testing.T) {
	if err := CanDeleteOrder(models.RoleAdmin, false, models.OrderStatusPending); err != nil {
		t.Fatalf("admin delete pending: %v", err)
	}
	if err := CanDeleteOrder(models.RoleCustomer, true, models.OrderStatusCancelled); err != nil {
		t.Fatalf("owner delete cancelled: %v", err)
	}
	if err := CanDeleteOrder(models.RoleCustomer, true, models.OrderStatusCompleted); err != nil {
		t.Fatalf("owner delete completed: %v", err)
	}
	if err := CanDeleteOrder(models.RoleCustomer, true, models.OrderStatusPending); err != ErrNotTerminal {
		t.Fatalf("expected ErrNotTerminal, got %v", err)
	}
	if err := CanDeleteOrder(models.RoleCustomer, true, models.OrderStatusConfirmed); err != ErrNotTerminal {
		t.Fatalf("expected ErrNotTerminal, got %v", err)
	}
	if err := CanDeleteOrder(models.RoleCustomer, false, models.OrderStatusCancelled); err != ErrNotOwner {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
}

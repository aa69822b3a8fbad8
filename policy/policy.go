// Package policy centralizes who may do what to a booking. Handlers never
// branch on roles directly; they ask this package.
package policy

import (
	"errors"

	"github.com/Iyedchebbi/SofaSteam2026/models"
)

var (
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrNotAllowed        = errors.New("not allowed for this role")
	ErrNotOwner          = errors.New("booking belongs to another user")
	ErrNotTerminal       = errors.New("booking is not cancelled or completed")
)

// transitions is the legal status graph: pending -> confirmed|cancelled,
// confirmed -> completed|cancelled. Completed and cancelled are terminal.
var transitions = map[models.OrderStatus][]models.OrderStatus{
	models.OrderStatusPending:   {models.OrderStatusConfirmed, models.OrderStatusCancelled},
	models.OrderStatusConfirmed: {models.OrderStatusCompleted, models.OrderStatusCancelled},
}

// CanTransition reports whether the status graph permits from -> to,
// regardless of actor.
func CanTransition(from, to models.OrderStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CanUpdateStatus checks both the status graph and the actor. Admins may make
// any legal transition. A customer may only cancel their own booking, and only
// while it is still pending.
func CanUpdateStatus(role models.Role, isOwner bool, from, to models.OrderStatus) error {
	if !CanTransition(from, to) {
		return ErrIllegalTransition
	}
	if role == models.RoleAdmin {
		return nil
	}
	if !isOwner {
		return ErrNotOwner
	}
	if to == models.OrderStatusCancelled && from == models.OrderStatusPending {
		return nil
	}
	return ErrNotAllowed
}

// CanDeleteOrder gates destructive deletion. Admins may delete any booking in
// any state. A customer may only remove their own booking from history once it
// has reached a terminal display state.
func CanDeleteOrder(role models.Role, isOwner bool, status models.OrderStatus) error {
	if role == models.RoleAdmin {
		return nil
	}
	if !isOwner {
		return ErrNotOwner
	}
	if status == models.OrderStatusCancelled || status == models.OrderStatusCompleted {
		return nil
	}
	return ErrNotTerminal
}

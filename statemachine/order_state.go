package statemachine

import (
	"errors"

	"food-ordering-api/models"
)

// Transition defines a valid state change and the operation that drives it
type Transition struct {
	From    models.OrderStatus
	To      models.OrderStatus
	Trigger string // "checkout", "cancel", "fulfillment"
}

// validTransitions is the authoritative state machine definition.
// No in-process operation drives the fulfillment transitions; they are listed
// so the machine documents the full lifecycle, but only checkout and cancel
// are reachable through the API.
var validTransitions = []Transition{
	// Checkout confirms a pending order
	{From: models.StatusPending, To: models.StatusConfirmed, Trigger: "checkout"},
	// Cancel is allowed from any non-terminal status
	{From: models.StatusPending, To: models.StatusCancelled, Trigger: "cancel"},
	{From: models.StatusConfirmed, To: models.StatusCancelled, Trigger: "cancel"},
	{From: models.StatusPreparing, To: models.StatusCancelled, Trigger: "cancel"},
	// Fulfillment progression, external/administrative only
	{From: models.StatusConfirmed, To: models.StatusPreparing, Trigger: "fulfillment"},
	{From: models.StatusPreparing, To: models.StatusDelivered, Trigger: "fulfillment"},
}

type transitionKey struct {
	From    models.OrderStatus
	To      models.OrderStatus
	Trigger string
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Trigger}] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransition checks whether a trigger may move an order between two states
func CanTransition(from, to models.OrderStatus, trigger string) error {
	if transitionMap[transitionKey{From: from, To: to, Trigger: trigger}] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " -> " + string(to) +
			" is not allowed via '" + trigger + "'. " +
			"Valid transitions from " + string(from) + " are: " + describeValidFrom(from),
	)
}

// CanCancel checks the cancel rules: already-cancelled and delivered orders
// are terminal and stay put.
func CanCancel(status models.OrderStatus) error {
	if status == models.StatusCancelled {
		return errors.New("order is already cancelled")
	}
	if status == models.StatusDelivered {
		return errors.New("cannot cancel a delivered order")
	}
	return CanTransition(status, models.StatusCancelled, "cancel")
}

// CanCheckout reports whether checkout would be a legal transition from the
// given status. The checkout handler deliberately does not enforce this
// today; paying confirms an order no matter what state it was in.
func CanCheckout(status models.OrderStatus) error {
	return CanTransition(status, models.StatusConfirmed, "checkout")
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}

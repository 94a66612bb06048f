package statemachine

import (
	"errors"

	"github.com/Ashik0101/food-delivery-app/models"
)

// Transition defines a valid state change
type Transition struct {
	From models.OrderStatus
	To   models.OrderStatus
}

// validTransitions is the authoritative state machine definition. The order
// lifecycle moves forward only, one step at a time; DELIVERED is terminal.
var validTransitions = []Transition{
	{From: models.StatusPlaced, To: models.StatusPreparing},
	{From: models.StatusPreparing, To: models.StatusOnTheWay},
	{From: models.StatusOnTheWay, To: models.StatusDelivered},
}

// allStatuses is the closed enumeration of order states
var allStatuses = []models.OrderStatus{
	models.StatusPlaced,
	models.StatusPreparing,
	models.StatusOnTheWay,
	models.StatusDelivered,
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[Transition]bool {
	m := make(map[Transition]bool)
	for _, t := range validTransitions {
		m[t] = true
	}
	return m
}()

// IsValid reports whether status is a member of the enumeration
func IsValid(status models.OrderStatus) bool {
	for _, s := range allStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// AllStatuses returns the full enumeration in lifecycle order
func AllStatuses() []models.OrderStatus {
	return allStatuses
}

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	for _, t := range validTransitions {
		if t.From == status {
			nexts = append(nexts, t.To)
		}
	}
	return nexts
}

// CanTransition checks if an order may move from one state to another
func CanTransition(from, to models.OrderStatus) error {
	if transitionMap[Transition{From: from, To: to}] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " -> " + string(to) +
			" is not allowed. Valid transitions from " + string(from) +
			" are: " + describeValidFrom(from),
	)
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

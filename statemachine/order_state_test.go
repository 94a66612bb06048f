package statemachine

import (
	"strings"
	"testing"

	"github.com/Ashik0101/food-delivery-app/models"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to models.OrderStatus
		wantOK   bool
	}{
		{models.StatusPlaced, models.StatusPreparing, true},
		{models.StatusPreparing, models.StatusOnTheWay, true},
		{models.StatusOnTheWay, models.StatusDelivered, true},

		// no skipping ahead
		{models.StatusPlaced, models.StatusOnTheWay, false},
		{models.StatusPlaced, models.StatusDelivered, false},
		{models.StatusPreparing, models.StatusDelivered, false},

		// no going backward
		{models.StatusPreparing, models.StatusPlaced, false},
		{models.StatusOnTheWay, models.StatusPreparing, false},
		{models.StatusDelivered, models.StatusOnTheWay, false},

		// self transitions are not defined
		{models.StatusPlaced, models.StatusPlaced, false},
		{models.StatusDelivered, models.StatusDelivered, false},

		// delivered is terminal
		{models.StatusDelivered, models.StatusPlaced, false},

		{"", models.StatusPlaced, false},
		{models.StatusPlaced, "", false},
	}
	for _, tt := range tests {
		err := CanTransition(tt.from, tt.to)
		if (err == nil) != tt.wantOK {
			t.Errorf("CanTransition(%q, %q) = %v, want ok=%v", tt.from, tt.to, err, tt.wantOK)
		}
	}
}

func TestCanTransitionErrorNamesValidNextStates(t *testing.T) {
	err := CanTransition(models.StatusPlaced, models.StatusDelivered)
	if err == nil {
		t.Fatal("expected error for placed -> delivered")
	}
	if !strings.Contains(err.Error(), string(models.StatusPreparing)) {
		t.Errorf("error should name the valid next state: %s", err.Error())
	}

	err = CanTransition(models.StatusDelivered, models.StatusPlaced)
	if err == nil {
		t.Fatal("expected error for transition out of delivered")
	}
	if !strings.Contains(err.Error(), "terminal") {
		t.Errorf("error should mention terminal state: %s", err.Error())
	}
}

func TestIsValid(t *testing.T) {
	for _, s := range AllStatuses() {
		if !IsValid(s) {
			t.Errorf("IsValid(%q) = false, want true", s)
		}
	}
	for _, s := range []models.OrderStatus{"", "PLACED", "cancelled", "on the  way", "shipped"} {
		if IsValid(s) {
			t.Errorf("IsValid(%q) = true, want false", s)
		}
	}
}

func TestValidTransitionsFrom(t *testing.T) {
	if got := ValidTransitionsFrom(models.StatusPlaced); len(got) != 1 || got[0] != models.StatusPreparing {
		t.Errorf("ValidTransitionsFrom(placed) = %v", got)
	}
	if got := ValidTransitionsFrom(models.StatusDelivered); len(got) != 0 {
		t.Errorf("ValidTransitionsFrom(delivered) = %v, want none", got)
	}
}

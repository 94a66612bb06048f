package handlers

import (
	"net/http"

	"github.com/Ashik0101/food-delivery-app/statemachine"

	"github.com/gin-gonic/gin"
)

// GetStateMachineInfo returns the order lifecycle for informational purposes
func GetStateMachineInfo(c *gin.Context) {
	transitions := statemachine.GetAllTransitions()
	info := make([]gin.H, 0, len(transitions))
	for _, t := range transitions {
		info = append(info, gin.H{"from": t.From, "to": t.To})
	}
	c.JSON(http.StatusOK, gin.H{
		"statuses":        statemachine.AllStatuses(),
		"state_machine":   info,
		"terminal_states": []string{"delivered"},
		"description":     "Food Delivery Order Lifecycle State Machine",
	})
}

package delivery

import (
	"strings"

	"tracker/internal/entities"
)

func isValidText(value string) bool {
	return strings.TrimSpace(value) != ""
}

func isValidStatus(status entities.DeliveryStatusType) bool {
	switch status {
	case entities.DeliveryNew,
		entities.DeliveryOnDelivery,
		entities.DeliveryPending,
		entities.DeliveryDelivered:
		return true
	default:
		return false
	}
}

func isValidBranch(branch entities.BranchType) bool {
	switch branch {
	case entities.BranchNikol, entities.BranchSardarPatelChowk:
		return true
	default:
		return false
	}
}

package service

import (
	"math"

	"lookupdesk/internal/lookup/models"
)

// found decides whether a decoded upstream payload represents a hit.
// Phone needs a truthy "success" or "data"; vehicle and national ID also
// accept any non-empty object.
func found(domain models.Domain, body any) bool {
	obj, ok := body.(map[string]any)
	if !ok {
		// Non-empty arrays carry keys too.
		arr, isArr := body.([]any)
		return isArr && len(arr) > 0 && domain != models.DomainPhone
	}
	if truthy(obj["success"]) || truthy(obj["data"]) {
		return true
	}
	if domain == models.DomainPhone {
		return false
	}
	return len(obj) > 0
}

func notFoundMessage(domain models.Domain, body any) string {
	switch domain {
	case models.DomainPhone:
		if obj, ok := body.(map[string]any); ok && truthy(obj["message"]) {
			if msg, isStr := obj["message"].(string); isStr {
				return msg
			}
		}
		return "Phone number not found"
	case models.DomainVehicle:
		return "Vehicle information not found"
	case models.DomainNationalID:
		return "National ID information not found"
	}
	return "Not found"
}

// truthy follows JSON-in-JavaScript truthiness: null, false, 0 and "" are
// false, objects and arrays are true even when empty.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0 && !math.IsNaN(t)
	case string:
		return t != ""
	default:
		return true
	}
}

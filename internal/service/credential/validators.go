package credential

import "strings"

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidRole(role string) bool {
	switch role {
	case "ADMIN", "VENDOR":
		return true
	default:
		return false
	}
}

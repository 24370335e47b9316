package security

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/sgaunet/bullets"
)

// DebugAuth logs which authentication is used against a service.
// All details are sanitized before logging to prevent token leakage.
//
// Example:
//
//	DebugAuth(logger, "Confluence", map[string]string{
//	    "method": "basic",
//	    "source": "keyring",
//	})
func DebugAuth(logger *bullets.Logger, service string, details map[string]string) {
	if logger == nil {
		return
	}

	detailsInterface := make(map[string]any, len(details))
	for k, v := range details {
		detailsInterface[k] = v
	}
	sanitized := SanitizeMap(detailsInterface)

	parts := make([]string, 0, len(sanitized))
	for _, k := range slices.Sorted(maps.Keys(sanitized)) {
		parts = append(parts, fmt.Sprintf("%s=%v", k, sanitized[k]))
	}
	logger.Debug(fmt.Sprintf("Using %s authentication: %s", service, strings.Join(parts, " ")))
}

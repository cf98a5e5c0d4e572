package permission

import (
	"fmt"

	"helpdesk/internal/shared/logger"
)

// SeedPolicies installs the default role policies. AddPolicy is idempotent in
// casbin, so seeding runs safely on every startup.
func SeedPolicies(e *Enforcer, log logger.Interface) error {
	policies := [][]string{
		// Admins manage the whole helpdesk
		{"admin", "ticket", "create"},
		{"admin", "ticket", "read"},
		{"admin", "ticket", "update"},
		{"admin", "ticket", "delete"},
		{"admin", "ticket", "archive"},
		{"admin", "ticket", "reply"},
		{"admin", "user", "create"},
		{"admin", "user", "read"},
		{"admin", "user", "update"},
		{"admin", "user", "delete"},
		{"admin", "user", "import"},
		{"admin", "activity_log", "read"},
		{"admin", "dashboard", "read"},
		{"admin", "notification", "read"},
		{"admin", "notification", "update"},
		{"admin", "session", "read"},
		{"admin", "session", "revoke"},
		{"admin", "guide", "create"},
		{"admin", "guide", "read"},
		{"admin", "guide", "update"},
		{"admin", "guide", "delete"},

		// Users work their own tickets and inbox
		{"user", "ticket", "create"},
		{"user", "ticket", "read"},
		{"user", "ticket", "reply"},
		{"user", "notification", "read"},
		{"user", "notification", "update"},
		{"user", "session", "read"},
		{"user", "session", "revoke"},
		{"user", "guide", "read"},
	}

	for _, policy := range policies {
		if _, err := e.enforcer.AddPolicy(policy); err != nil {
			log.Errorw("failed to add permission policy",
				"error", err,
				"role", policy[0],
				"resource", policy[1],
				"action", policy[2])
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
				policy[0], policy[1], policy[2], err)
		}
	}

	if err := e.enforcer.SavePolicy(); err != nil {
		return fmt.Errorf("failed to save policies: %w", err)
	}

	log.Info("permission policies seeded")
	return nil
}

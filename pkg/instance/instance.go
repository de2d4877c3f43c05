package instance

import "github.com/angelmondragon/storefront-backend/pkg/env"

// GetID returns the process identifier used to tag log lines. The dyno name
// wins over the explicit override so platform logs line up.
func GetID() string {
	return env.First("local", "DYNO", "STOREFRONT_INSTANCE_ID")
}

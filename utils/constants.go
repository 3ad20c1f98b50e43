// File: utils/constants.go
package utils

import "time"

// SessionKeyPrefix is the prefix used for Redis browser session keys.
const SessionKeyPrefix = "session:"

// WizardKeyPrefix is the prefix used for Redis booking wizard keys.
const WizardKeyPrefix = "wizard:"

// VerifyInterval is how long a token verification result is trusted before
// the auth service is asked again.
const VerifyInterval = 5 * time.Minute

// SPDX-License-Identifier: MIT
package history

import "time"

// SetClock replaces the time source of s.
func SetClock(s *Store, now func() time.Time) { s.now = now }

// SPDX-License-Identifier: MIT

package store

import "time"

// SetClock replaces the time source used for created_at and updated_at.
func (s *Store) SetClock(now func() time.Time) { s.now = now }

package testutil

import (
	"time"

	"github.com/google/uuid"
)

// Fixed IDs and clock for deterministic tests.
var (
	TestPropertyID1 = uuid.MustParse("00000000-0000-0000-0000-000000000101")
	TestPropertyID2 = uuid.MustParse("00000000-0000-0000-0000-000000000102")

	TestNow = time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)
)

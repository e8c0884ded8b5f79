package calculation

import (
	"time"

	"github.com/google/uuid"
)

// nowFunc returns the current time (override in tests for determinism).
var nowFunc = time.Now

// SetNowFunc overrides the time provider (use only in tests).
func SetNowFunc(f func() time.Time) { nowFunc = f }

// reportIDFunc returns the identifier stamped on a filing comparison.
var reportIDFunc = uuid.NewString

// SetReportIDFunc overrides the report id generator (use only in tests).
func SetReportIDFunc(f func() string) { reportIDFunc = f }

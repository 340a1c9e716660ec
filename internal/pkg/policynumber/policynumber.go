package policynumber

import (
	"fmt"
	"time"
)

// Prefix starts every generated policy number.
const Prefix = "POL"

// Next derives the policy number for a brand-new record: "POL" + YYMMDD of
// the given time in UTC + a 4-digit zero-padded sequence equal to the current
// record count plus one.
//
// The sequence is computed from a client-observed count, so two creates
// racing on the same count produce the same number; the unique index on the
// policies table rejects the loser instead of silently overwriting. Numbers
// are never recomputed on update.
func Next(now time.Time, existing int64) string {
	return fmt.Sprintf("%s%s%04d", Prefix, now.UTC().Format("060102"), existing+1)
}

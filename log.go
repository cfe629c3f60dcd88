package molmass

import (
	"github.com/pterm/pterm"
)

var log = pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled)

// UseLogger uses a specified Logger to output package logging info. It is not
// safe to call UseLogger concurrently with other functions in this package.
func UseLogger(logger *pterm.Logger) {
	log = logger
}

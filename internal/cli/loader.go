package cli

import (
	"github.com/MatthewFletcher/openrocket/internal/loader"
	"github.com/MatthewFletcher/openrocket/internal/motordb"
)

// openFinder returns the motor finder to use for a load: the configured
// catalog database, or an empty catalog when none is set. The returned
// close function releases the database, if one was opened.
func openFinder(opts *RootOptions) (loader.MotorFinder, func() error, error) {
	if opts.MotorDB == "" {
		return loader.NoMotors, func() error { return nil }, nil
	}
	db, err := motordb.Open(opts.MotorDB)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "open motor database", err)
	}
	return db, db.Close, nil
}

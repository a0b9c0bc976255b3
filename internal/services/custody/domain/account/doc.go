// Package account implements the custody account aggregate: the owner and
// guardian registry, recovery voting, the allowance ledger and the execution
// gate.
//
// Decide is pure. It reads State and a command and returns events or a
// rejection. Fold applies one event and returns a new State without touching
// the maps of the previous value, so callers can keep the previous State as an
// undo point.
package account

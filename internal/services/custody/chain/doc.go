// Package chain is an in-process execution environment for the custody
// account: a balance ledger, a contract registry and a call primitive with
// per-frame savepoints.
//
// Requests run one at a time through Env.Transact. Every mutation made inside
// a request records an undo entry on the Tx, so a failing call frame rolls
// back to its savepoint and a failing request rolls back entirely.
package chain

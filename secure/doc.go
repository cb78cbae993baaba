// Package secure defines the validated scalar types of the core data
// model. Every value here is created by a single fallible constructor
// that sanitizes and validates raw caller input; once constructed, the
// invariants documented on each type hold for the value's lifetime.
//
// Types come in two classes:
//
//   - Semi-sensitive (names, ids, address parts): stored as plain
//     strings, rendered masked as "K******N" by default, raw content
//     available via Value.
//
//   - Highly sensitive (PAN, CVV, expiry, account and routing numbers,
//     tokens): backed by an erase-on-release container, rendered as the
//     fixed "***" by default, raw content reachable only through Expose
//     or UnsafeRaw, and cleared with Wipe when the owner releases the
//     value.
//
// All constructors return *apperror.Error with KindInvalidInput on
// failure and never produce a value whose invariants do not hold.
package secure

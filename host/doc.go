// Package host is the runtime boundary between generated bindings and the
// process that exports the native functions.
//
// The only thing a host has to provide is a Resolver: given a symbol name it
// returns the symbol's address, or 0 when the symbol is not exported. For
// REAPER that is the plugin's GetFunc entry point (see FromGetFunc); for a
// plain shared library it is dlsym (see Open).
//
// Bind and Constant are the only places that turn a raw address into
// something callable. Nothing in this package checks pointer lifetime,
// string encoding or buffer sizes of the arguments passed through a bound
// function; that is the caller's obligation.
//
// A loaded binding is never written to again, so it can be shared between
// goroutines. Whether the native functions tolerate concurrent calls is up
// to the native library; ReaImGui expects every call to come from REAPER's
// UI thread.
package host

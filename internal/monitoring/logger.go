// Package monitoring holds the package-level diagnostic logger shared by the
// dataset library and its command-line tools.
package monitoring

import "log"

// Logf is the diagnostic logger used for verification, download and
// extraction progress. It defaults to log.Printf; replace it with SetLogger
// to redirect or mute output.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil installs a no-op
// logger, which is useful in tests that exercise the download path.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

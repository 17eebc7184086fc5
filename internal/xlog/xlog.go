// Package xlog provides the shared logrus plumbing used across this
// module's packages. It replaces the Rust implementation's
// cfg(feature = "verbose_*") compile-time debug prints with an ordinary
// runtime log level, silent by default.
package xlog

import "github.com/sirupsen/logrus"

// New returns a fresh logger at logrus.WarnLevel, matching the default a
// library consumer gets when they do not ask for diagnostics.
func New() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return l
}

// Default is shared by constructors that accept no explicit logger via
// their functional-options, following core.Graph's "sane defaults without
// configuration" philosophy.
var Default = New()

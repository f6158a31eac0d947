// Package modules runs the long-lived servers of the application inside a
// shared errgroup.
package modules

import "dealfinder/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

//go:build rastdebug

package raster

const debugChecks = true

//go:build !rastdebug

package raster

const debugChecks = false

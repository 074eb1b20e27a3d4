//go:build solar_debug_assertions

package diag

const buildTagDebugAssertions = true

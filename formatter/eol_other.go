//go:build !windows

package formatter

const eol = "\n"

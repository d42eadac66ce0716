package core

import (
	"path/filepath"
	"runtime"
)

// CallerInfo contains the call site of a log call
type CallerInfo struct {
	File      string
	ShortFile string
	Line      int
	Defined   bool
}

// GetCaller retrieves caller information. skip has the runtime.Caller
// meaning: 0 is the function calling GetCaller.
func GetCaller(skip int) CallerInfo {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return CallerInfo{}
	}

	return CallerInfo{
		File:      file,
		ShortFile: filepath.Base(file),
		Line:      line,
		Defined:   true,
	}
}

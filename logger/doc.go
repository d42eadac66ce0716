// Package logger is the public API of seglog. Most users only need to
// import this package.
//
// A Logger appends fixed-layout text records to a rotating sequence of
// segment files named <prefix>.<index>.log:
//
//	2024-05-17T13:45:09| INF |0x1a2b|(main.go,42)  server ready
//
// Construct one from a Config or with the Builder:
//
//	log, err := logger.NewBuilder().
//	    WithFolder("/var/log/app").
//	    WithPrefix("api").
//	    WithMaxSizeKB(50_000).
//	    WithMaxFiles(10).
//	    Build()
//	if err != nil {
//	    return err
//	}
//	defer log.Close()
//
//	log.Info("server ready")
//
// The call site is taken from the caller of Info, Warning and the other
// emission methods. Records below the level set with SetLevel are
// dropped before any formatting; the check is one atomic load.
//
// Close must be called once before the process exits. It writes out
// records still held in the buffered backend and truncates the active
// segment to its written length.
//
// Programs that log through log/slog or zap can send their records into
// the same files with SlogHandler and ZapCore.
package logger

// Package log provides register transaction tracing for mdrive-go.
//
// Every fieldbus call made by package regio, and every session state
// change, can be captured as an Event. This is separate from operational
// logging (slog): a trace is a complete, machine-readable record of what
// was sent to the amplifier and what came back.
//
// # Basic Usage
//
//	// For development: trace to the console via slog
//	cfg.Trace = log.NewSlogAdapter(slog.Default())
//
//	// For field diagnostics: write a binary trace file
//	cfg.Trace, _ = log.NewFileLogger("/var/log/mdrive/axis1.mtrace")
//
//	// Both
//	cfg.Trace = log.NewMultiLogger(console, file)
//
// # Event Types
//
//   - Register: one request (OUT) or response (IN) per transport call
//   - StateChange: session connect and disconnect
//   - Error: failures that never reached the transport, such as calls
//     made while disconnected
//
// # File Format
//
// Trace files are a stream of CBOR-encoded events with integer keys. The
// mdrive-log tool views and summarizes them.
package log

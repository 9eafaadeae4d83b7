// Package profile loads register address profiles.
//
// A profile is a plain text file that binds the symbolic registers of
// package register to device-specific addresses:
//
//	# LMD P42
//	[registers]
//	position = 0x0057
//	moving-flag = 0x004A
//	initial-velocity = 0x0089
//	max-velocity = 0x008A
//	microstep-resolution = 0x0048
//	save-settings = 0x0076
//	read-axis-velocity = 0x0085
//
// The input is read as whitespace separated tokens. A token starting with
// '[' opens a section; only [registers] is interpreted and every other
// section is skipped without comment. Inside [registers] tokens come as
// key, optional '=', value. Values are hexadecimal with an optional 0x
// prefix and must fit in 16 bits. A '#' starts a comment that runs to the
// end of the line.
//
// Unknown keys inside [registers] are logged as warnings and skipped, so a
// profile written for a larger device still loads. Missing values, bad
// numbers and unreadable files are returned as *ConfigError.
//
// By default a profile may bind only some registers; resolving an unbound
// symbol later fails with *register.UnboundError. Set Loader.Strict to
// require all of them at load time.
package profile

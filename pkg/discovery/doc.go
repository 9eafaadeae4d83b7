// Package discovery finds Modbus/TCP amplifiers that announce themselves
// over mDNS as _modbus._tcp services.
//
// Browsing runs for a bounded time and returns one Amplifier per service
// instance, with addresses from every interface merged:
//
//	amps, err := discovery.NewBrowser(discovery.Config{}).Discover(ctx)
//
// Optional TXT records:
//
//	model=<model name>
//	unit=<modbus unit id>
package discovery

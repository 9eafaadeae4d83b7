package discovery

import (
	"context"
	"net"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/enbility/zeroconf/v3"
)

const (
	// ServiceType is the mDNS service type browsed for.
	ServiceType = "_modbus._tcp"

	// Domain is the mDNS domain.
	Domain = "local"

	// DefaultTimeout bounds a Discover call.
	DefaultTimeout = 3 * time.Second
)

// Amplifier is one discovered device.
type Amplifier struct {
	Instance  string
	Host      string
	Port      int
	Addresses []string
	Model     string

	// UnitID is 0 when the service did not announce one.
	UnitID uint8
}

// DialHost returns the address to connect to. The first IPv4 address is
// preferred, then the first address of any family, then the host name.
func (a Amplifier) DialHost() string {
	for _, addr := range a.Addresses {
		if ip := net.ParseIP(addr); ip != nil && ip.To4() != nil {
			return addr
		}
	}
	if len(a.Addresses) > 0 {
		return a.Addresses[0]
	}
	return strings.TrimSuffix(a.Host, ".")
}

// Endpoint returns DialHost joined with the port.
func (a Amplifier) Endpoint() string {
	return net.JoinHostPort(a.DialHost(), strconv.Itoa(a.Port))
}

// Config configures a Browser.
type Config struct {
	// Interface restricts browsing to one network interface by name.
	Interface string

	// Timeout bounds Discover. Zero means DefaultTimeout.
	Timeout time.Duration
}

// Browser discovers amplifiers.
type Browser struct {
	config Config
}

// NewBrowser creates a Browser.
func NewBrowser(config Config) *Browser {
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	return &Browser{config: config}
}

// Discover browses until the timeout or ctx ends and returns the
// amplifiers seen, sorted by instance name.
func (b *Browser) Discover(ctx context.Context) ([]Amplifier, error) {
	ctx, cancel := context.WithTimeout(ctx, b.config.Timeout)
	defer cancel()

	entries := make(chan *zeroconf.ServiceEntry)
	removed := make(chan *zeroconf.ServiceEntry)

	done := make(chan error, 1)
	go func() {
		done <- zeroconf.Browse(ctx, ServiceType, Domain, entries, removed, b.options()...)
	}()
	var errCh <-chan error = done

	found := make(map[string]*Amplifier)
	for {
		select {
		case entry, ok := <-entries:
			if !ok {
				entries = nil
				continue
			}
			amp := entryToAmplifier(entry)
			if existing, seen := found[amp.Instance]; seen {
				existing.Addresses = mergeAddresses(existing.Addresses, amp.Addresses)
			} else {
				found[amp.Instance] = &amp
			}

		case entry, ok := <-removed:
			if !ok {
				removed = nil
				continue
			}
			if existing, seen := found[entry.Instance]; seen {
				existing.Addresses = removeAddresses(existing.Addresses, entry)
				if len(existing.Addresses) == 0 {
					delete(found, entry.Instance)
				}
			}

		case err := <-errCh:
			errCh = nil
			if err != nil && ctx.Err() == nil {
				return nil, err
			}

		case <-ctx.Done():
			return collect(found), nil
		}
	}
}

func (b *Browser) options() []zeroconf.ClientOption {
	var opts []zeroconf.ClientOption
	if b.config.Interface != "" {
		if iface, err := net.InterfaceByName(b.config.Interface); err == nil {
			opts = append(opts, zeroconf.SelectIfaces([]net.Interface{*iface}))
		}
	}
	return opts
}

func collect(found map[string]*Amplifier) []Amplifier {
	out := make([]Amplifier, 0, len(found))
	for _, a := range found {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Instance < out[j].Instance })
	return out
}

func entryToAmplifier(entry *zeroconf.ServiceEntry) Amplifier {
	addrs := make([]string, 0, len(entry.AddrIPv4)+len(entry.AddrIPv6))
	for _, ip := range entry.AddrIPv4 {
		addrs = append(addrs, ip.String())
	}
	for _, ip := range entry.AddrIPv6 {
		addrs = append(addrs, ip.String())
	}

	amp := Amplifier{
		Instance:  entry.Instance,
		Host:      entry.HostName,
		Port:      entry.Port,
		Addresses: addrs,
	}
	for _, kv := range entry.Text {
		key, value, _ := strings.Cut(kv, "=")
		switch strings.ToLower(key) {
		case "model":
			amp.Model = value
		case "unit":
			if n, err := strconv.ParseUint(value, 10, 8); err == nil {
				amp.UnitID = uint8(n)
			}
		}
	}
	return amp
}

func mergeAddresses(existing, added []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, a := range existing {
		seen[a] = true
	}
	for _, a := range added {
		if !seen[a] {
			existing = append(existing, a)
			seen[a] = true
		}
	}
	return existing
}

func removeAddresses(addresses []string, entry *zeroconf.ServiceEntry) []string {
	drop := make(map[string]bool)
	for _, ip := range entry.AddrIPv4 {
		drop[ip.String()] = true
	}
	for _, ip := range entry.AddrIPv6 {
		drop[ip.String()] = true
	}
	out := make([]string, 0, len(addresses))
	for _, a := range addresses {
		if !drop[a] {
			out = append(out, a)
		}
	}
	return out
}

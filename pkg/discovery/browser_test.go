package discovery

import (
	"net"
	"testing"

	"github.com/enbility/zeroconf/v3"
	"github.com/stretchr/testify/assert"
)

func newEntry(instance string, port int, ips []string, txt ...string) *zeroconf.ServiceEntry {
	e := &zeroconf.ServiceEntry{
		ServiceRecord: zeroconf.ServiceRecord{Instance: instance, Service: ServiceType, Domain: Domain},
		HostName:      instance + ".local.",
		Port:          port,
		Text:          txt,
	}
	for _, ip := range ips {
		parsed := net.ParseIP(ip)
		if parsed.To4() != nil {
			e.AddrIPv4 = append(e.AddrIPv4, parsed)
		} else {
			e.AddrIPv6 = append(e.AddrIPv6, parsed)
		}
	}
	return e
}

func TestEntryToAmplifier(t *testing.T) {
	e := newEntry("axis-1", 502, []string{"10.0.0.5", "fe80::1"}, "model=MDI-23", "unit=3", "fw=1.2")

	amp := entryToAmplifier(e)
	assert.Equal(t, "axis-1", amp.Instance)
	assert.Equal(t, "axis-1.local.", amp.Host)
	assert.Equal(t, 502, amp.Port)
	assert.Equal(t, []string{"10.0.0.5", "fe80::1"}, amp.Addresses)
	assert.Equal(t, "MDI-23", amp.Model)
	assert.Equal(t, uint8(3), amp.UnitID)
	assert.Equal(t, "10.0.0.5:502", amp.Endpoint())
}

func TestEntryToAmplifierBadUnit(t *testing.T) {
	amp := entryToAmplifier(newEntry("axis-2", 502, nil, "unit=900"))
	assert.Zero(t, amp.UnitID)
	assert.Equal(t, "axis-2", amp.DialHost())
}

func TestMergeAndRemoveAddresses(t *testing.T) {
	addrs := mergeAddresses([]string{"10.0.0.5"}, []string{"10.0.0.5", "fe80::1"})
	assert.Equal(t, []string{"10.0.0.5", "fe80::1"}, addrs)

	addrs = removeAddresses(addrs, newEntry("axis-1", 502, []string{"fe80::1"}))
	assert.Equal(t, []string{"10.0.0.5"}, addrs)
}

func TestDialHostPrefersIPv4(t *testing.T) {
	amp := entryToAmplifier(newEntry("axis-3", 502, []string{"fe80::1"}))
	later := entryToAmplifier(newEntry("axis-3", 502, []string{"192.168.1.20"}))
	amp.Addresses = mergeAddresses(amp.Addresses, later.Addresses)

	assert.Equal(t, []string{"fe80::1", "192.168.1.20"}, amp.Addresses)
	assert.Equal(t, "192.168.1.20", amp.DialHost())
	assert.Equal(t, "192.168.1.20:502", amp.Endpoint())
}

func TestDialHostFallbacks(t *testing.T) {
	v6 := Amplifier{Host: "axis-4.local.", Port: 502, Addresses: []string{"fd00::7"}}
	assert.Equal(t, "fd00::7", v6.DialHost())
	assert.Equal(t, "[fd00::7]:502", v6.Endpoint())

	named := Amplifier{Host: "axis-4.local.", Port: 502}
	assert.Equal(t, "axis-4.local", named.DialHost())
}

func TestCollectSorted(t *testing.T) {
	found := map[string]*Amplifier{
		"b": {Instance: "b"},
		"a": {Instance: "a"},
	}
	out := collect(found)
	assert.Equal(t, "a", out[0].Instance)
	assert.Equal(t, "b", out[1].Instance)
}

func TestNewBrowserDefaults(t *testing.T) {
	b := NewBrowser(Config{})
	assert.Equal(t, DefaultTimeout, b.config.Timeout)
	assert.Empty(t, b.options())
}

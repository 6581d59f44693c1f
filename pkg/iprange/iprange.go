package iprange

import (
	"encoding/binary"
	"fmt"
	"net/netip"

	"github.com/hansthienpondt/nipam/pkg/table"
	"github.com/henderiw/intervalset/pkg/interval"
	"github.com/henderiw/intervalset/pkg/intervaldict"
	"go4.org/netipx"
	"k8s.io/apimachinery/pkg/labels"
)

// Table claims contiguous IPv4 ranges out of a bounded address pool.
// A claim key is either a single address ("10.0.0.10") or a range
// ("10.0.0.10-10.0.0.20"); claims never overlap.
type Table interface {
	Get(rangeStr string) (table.Route, error)
	Claim(rangeStr string, d table.Route) error
	Release(rangeStr string) error
	Update(rangeStr string, d table.Route) error

	Count() int
	Has(rangeStr string) bool

	IsFree(rangeStr string) bool
	FindFree(size uint32) (netipx.IPRange, error)

	GetAll() table.Routes
	GetByLabel(selector labels.Selector) table.Routes
}

func New(from, to netip.Addr) (Table, error) {
	if !from.Is4() || !to.Is4() {
		return nil, fmt.Errorf("range from %s to %s is not ipv4", from, to)
	}
	ipRange := netipx.IPRangeFrom(from, to)
	if !ipRange.IsValid() {
		return nil, fmt.Errorf("range from %s to %s is invalid", from, to)
	}
	return &ipRangeTable{
		ipRange: ipRange,
		claims:  intervaldict.NewMutable[uint32, table.Route](nil),
		claimed: interval.NewMutableSet[uint32](),
	}, nil
}

type ipRangeTable struct {
	ipRange netipx.IPRange
	// claims holds the route per claimed range, claimed the occupancy
	// of the pool; both are keyed by the numeric address index.
	claims  *intervaldict.MutableDict[uint32, table.Route]
	claimed *interval.MutableSet[uint32]
}

func (r *ipRangeTable) Get(rangeStr string) (table.Route, error) {
	iv, err := r.validateRange(rangeStr)
	if err != nil {
		return table.Route{}, err
	}
	it := r.claims.Select(iv, false)
	for it.Next() {
		if it.Interval().Equal(iv) {
			return it.Value(), nil
		}
	}
	return table.Route{}, fmt.Errorf("range %s: %w", rangeStr, interval.ErrNotFound)
}

func (r *ipRangeTable) Claim(rangeStr string, d table.Route) error {
	iv, err := r.validateRange(rangeStr)
	if err != nil {
		return err
	}
	if !r.claimed.IsDisjoint(interval.NewSet(iv)) {
		return fmt.Errorf("claim failed range %s overlaps an existing claim", rangeStr)
	}
	r.claims.Set(iv, d)
	r.claimed.Add(iv)
	return nil
}

func (r *ipRangeTable) Release(rangeStr string) error {
	iv, err := r.validateRange(rangeStr)
	if err != nil {
		return err
	}
	if !r.hasExact(iv) {
		return fmt.Errorf("release failed range %s: %w", rangeStr, interval.ErrNotFound)
	}
	r.claims.Delete(iv)
	r.claimed.SubWith(interval.NewSet(iv))
	return nil
}

func (r *ipRangeTable) Update(rangeStr string, d table.Route) error {
	iv, err := r.validateRange(rangeStr)
	if err != nil {
		return err
	}
	if !r.hasExact(iv) {
		return fmt.Errorf("update failed range %s not claimed", rangeStr)
	}
	r.claims.Set(iv, d)
	return nil
}

func (r *ipRangeTable) Count() int {
	return r.claims.Len()
}

func (r *ipRangeTable) Has(rangeStr string) bool {
	iv, err := r.validateRange(rangeStr)
	if err != nil {
		return false
	}
	return r.hasExact(iv)
}

func (r *ipRangeTable) IsFree(rangeStr string) bool {
	iv, err := r.validateRange(rangeStr)
	if err != nil {
		return false
	}
	return r.claimed.IsDisjoint(interval.NewSet(iv))
}

// FindFree returns the first gap of at least size addresses.
func (r *ipRangeTable) FindFree(size uint32) (netipx.IPRange, error) {
	if size == 0 {
		return netipx.IPRange{}, fmt.Errorf("find free failed, size must be positive")
	}
	pool := interval.NewSet(r.poolInterval())
	it := pool.Sub(r.claimed.Freeze()).Iterate()
	for it.Next() {
		lo, hi, ok := boundsOf(it.Value())
		if !ok {
			continue
		}
		if hi-lo+1 >= size {
			return netipx.IPRangeFrom(indexAddr(lo), indexAddr(lo+size-1)), nil
		}
	}
	return netipx.IPRange{}, fmt.Errorf("find free failed, no gap of %d addresses", size)
}

func (r *ipRangeTable) GetAll() table.Routes {
	var routes table.Routes
	it := r.claims.Iterate()
	for it.Next() {
		routes = append(routes, it.Value())
	}
	return routes
}

func (r *ipRangeTable) GetByLabel(selector labels.Selector) table.Routes {
	var routes table.Routes
	it := r.claims.Iterate()
	for it.Next() {
		route := it.Value()
		if selector.Matches(route.Labels()) {
			routes = append(routes, route)
		}
	}
	return routes
}

// hasExact reports whether iv is claimed as-is, not merely covered.
func (r *ipRangeTable) hasExact(iv interval.Interval[uint32]) bool {
	it := r.claims.Select(iv, false)
	for it.Next() {
		if it.Interval().Equal(iv) {
			return true
		}
	}
	return false
}

func (r *ipRangeTable) poolInterval() interval.Interval[uint32] {
	iv, _ := interval.Closed(addrIndex(r.ipRange.From()), addrIndex(r.ipRange.To()))
	return iv
}

// validateRange parses a single address or a from-to range and checks
// it fits the pool.
func (r *ipRangeTable) validateRange(rangeStr string) (interval.Interval[uint32], error) {
	ipRange, err := netipx.ParseIPRange(rangeStr)
	if err != nil {
		addr, addrErr := netip.ParseAddr(rangeStr)
		if addrErr != nil {
			return interval.Empty[uint32](), fmt.Errorf("ip range %s: %w", rangeStr, interval.ErrInvalidInterval)
		}
		ipRange = netipx.IPRangeFrom(addr, addr)
	}
	if !ipRange.From().Is4() {
		return interval.Empty[uint32](), fmt.Errorf("ip range %s is not ipv4", rangeStr)
	}
	if !r.ipRange.Contains(ipRange.From()) || !r.ipRange.Contains(ipRange.To()) {
		return interval.Empty[uint32](), fmt.Errorf("ip range %s does not fit in the range from %s to %s",
			rangeStr, r.ipRange.From(), r.ipRange.To())
	}
	iv, err := interval.Closed(addrIndex(ipRange.From()), addrIndex(ipRange.To()))
	if err != nil {
		return interval.Empty[uint32](), fmt.Errorf("ip range %s is invalid: %w", rangeStr, err)
	}
	return iv, nil
}

// boundsOf normalizes an interval over the address index to inclusive
// bounds. Gaps between closed claims carry open bounds, so an open
// side moves inward by one address.
func boundsOf(iv interval.Interval[uint32]) (lo, hi uint32, ok bool) {
	lo, ok = iv.LowerValue()
	if !ok {
		return 0, 0, false
	}
	hi, ok = iv.UpperValue()
	if !ok {
		return 0, 0, false
	}
	if !iv.LowerClosed() {
		lo++
	}
	if !iv.UpperClosed() {
		hi--
	}
	if hi < lo {
		return 0, 0, false
	}
	return lo, hi, true
}

func addrIndex(a netip.Addr) uint32 {
	b := a.As4()
	return binary.BigEndian.Uint32(b[:])
}

func indexAddr(i uint32) netip.Addr {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], i)
	return netip.AddrFrom4(b)
}

package rule

import (
	"encoding/json"
	"fmt"
	"net"
	"strings"

	"github.com/abacgo/abac/types"
)

// CIDR is satisfied when value is a textual IP address contained in any of
// one or more comma-separated CIDR blocks.
type CIDR struct {
	Raw  string `json:"cidr"`
	nets []*net.IPNet
}

// NewCIDR parses cidrs (one or more CIDR blocks, comma-separated) and
// returns a CIDR rule, or types.ErrInvalidArgument if any block fails to
// parse.
func NewCIDR(cidrs string) (*CIDR, error) {
	nets, err := parseCIDRList(cidrs)
	if err != nil {
		return nil, err
	}
	return &CIDR{Raw: cidrs, nets: nets}, nil
}

func (r *CIDR) Discriminator() string { return "net.CIDR" }

func (r *CIDR) Satisfied(value any, _ types.Inquiry) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	ip := net.ParseIP(s)
	if ip == nil {
		return false
	}
	for _, n := range r.nets {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}

func (r *CIDR) MarshalJSON() ([]byte, error) {
	return marshalWithTag(r.Discriminator(), struct {
		Raw string `json:"cidr"`
	}{r.Raw})
}

func (r *CIDR) UnmarshalJSON(data []byte) error {
	var raw struct {
		Raw string `json:"cidr"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	nets, err := parseCIDRList(raw.Raw)
	if err != nil {
		return err
	}
	r.Raw = raw.Raw
	r.nets = nets
	return nil
}

func parseCIDRList(cidrs string) ([]*net.IPNet, error) {
	parts := strings.Split(cidrs, ",")
	nets := make([]*net.IPNet, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		_, ipNet, err := net.ParseCIDR(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", types.ErrInvalidArgument, err)
		}
		nets = append(nets, ipNet)
	}
	return nets, nil
}

func init() {
	register("net.CIDR", func(data []byte) (Rule, error) {
		var r CIDR
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, err
		}
		return &r, nil
	})
}

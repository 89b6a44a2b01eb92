package state

import (
	"fmt"
	"net/netip"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"slices"
)

var namePattern, _ = regexp.Compile("^[0-9a-z._-]+$")

func PathValidator(s string) error {
	_, err := os.Stat(path.Dir(s))
	if err != nil {
		return err
	}
	_, err = filepath.Abs(s)
	return err
}

func NameValidator(s string) error {
	if !namePattern.MatchString(s) {
		return fmt.Errorf("%s is not a valid name, must match pattern %s", s, namePattern.String())
	}
	if len(s) > 100 {
		return fmt.Errorf("len(\"%s\") = %d > 100 is too long", s, len(s))
	}
	return nil
}

func BindValidator(s string) error {
	_, err := netip.ParseAddrPort(s)
	return err
}

func TopologyValidator(cfg *TopologyCfg) error {
	if len(cfg.Nodes) == 0 {
		return fmt.Errorf("topology must declare at least one node")
	}
	seen := make([]NodeId, 0, len(cfg.Nodes))
	for _, node := range cfg.Nodes {
		err := NameValidator(string(node))
		if err != nil {
			return err
		}
		if slices.Contains(seen, node) {
			return fmt.Errorf("duplicate node found: %s", node)
		}
		seen = append(seen, node)
	}
	links, err := cfg.AllLinks()
	if err != nil {
		return err
	}
	for _, l := range links {
		if !cfg.HasNode(l.A) {
			return fmt.Errorf("node %s not defined", l.A)
		}
		if !cfg.HasNode(l.B) {
			return fmt.Errorf("node %s not defined", l.B)
		}
		if l.A == l.B {
			return fmt.Errorf("link from %s to itself is not allowed", l.A)
		}
		if l.Cost < 0 {
			return fmt.Errorf("link %s, %s has negative cost %d", l.A, l.B, l.Cost)
		}
		if l.Cost > int64(INFM) {
			return fmt.Errorf("link %s, %s has cost %d above the maximum %d", l.A, l.B, l.Cost, INFM)
		}
	}
	if cfg.MaxRounds < 0 {
		return fmt.Errorf("max_rounds must not be negative")
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("workers must not be negative")
	}
	return nil
}

package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// apiLevelCodenames maps platform release codenames to their API level.
var apiLevelCodenames = map[string]int{
	"G":               9,
	"I":               14,
	"J":               16,
	"J-MR1":           17,
	"J-MR2":           18,
	"K":               19,
	"L":               21,
	"L-MR1":           22,
	"M":               23,
	"N":               24,
	"N-MR1":           25,
	"O":               26,
	"O-MR1":           27,
	"P":               28,
	"Q":               29,
	"R":               30,
	"S":               31,
	"S-V2":            32,
	"Tiramisu":        33,
	"UpsideDownCake":  34,
	"VanillaIceCream": 35,
}

// ParseAPILevel accepts a decimal API level or a platform codename.
// Range checks are left to BuildSettings.Validate so "0" and "-1" parse.
func ParseAPILevel(s string) (int, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return 0, fmt.Errorf("empty API level")
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n, nil
	}
	for name, level := range apiLevelCodenames {
		if strings.EqualFold(name, v) {
			return level, nil
		}
	}
	return 0, fmt.Errorf("unknown API level %q", s)
}

// Codenames returns the known codenames ordered by API level.
func Codenames() []string {
	names := make([]string, 0, len(apiLevelCodenames))
	for name := range apiLevelCodenames {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return apiLevelCodenames[names[i]] < apiLevelCodenames[names[j]]
	})
	return names
}

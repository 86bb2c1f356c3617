package region

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type Region byte

const (
	Container    Region = 0
	PlayerMain   Region = 1
	PlayerHotbar Region = 2
)

const (
	HotbarStart int16 = 0
	HotbarEnd   int16 = 8
	MainStart   int16 = 9
	MainEnd     int16 = 35
)

var Regions = []Region{Container, PlayerMain, PlayerHotbar}

var ErrInvalidRegion = errors.New("invalid region")

var names = map[Region]string{
	Container:    "container",
	PlayerMain:   "main",
	PlayerHotbar: "hotbar",
}

func (r Region) String() string {
	if n, ok := names[r]; ok {
		return n
	}
	return "unknown(" + strconv.Itoa(int(r)) + ")"
}

func (r Region) Valid() bool {
	_, ok := names[r]
	return ok
}

// Bounds returns the inclusive player inventory index range covered by the region.
// The container region has no fixed range.
func (r Region) Bounds() (int16, int16, bool) {
	switch r {
	case PlayerMain:
		return MainStart, MainEnd, true
	case PlayerHotbar:
		return HotbarStart, HotbarEnd, true
	}
	return 0, 0, false
}

// LockAware reports whether slot locks apply when sorting the region.
func (r Region) LockAware() bool {
	return r == PlayerMain || r == PlayerHotbar
}

func FromCode(code int) (Region, error) {
	r := Region(code)
	if code < 0 || code > 255 || !r.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRegion, code)
	}
	return r, nil
}

// Parse accepts either a region name or its numeric wire code.
func Parse(s string) (Region, error) {
	for r, n := range names {
		if strings.EqualFold(n, s) {
			return r, nil
		}
	}
	code, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRegion, s)
	}
	return FromCode(code)
}

// Package binds turns raw Hyprland keybindings into display rows,
// collapsing symmetric bind families along the way.
package binds

import (
	"fmt"

	"github.com/bnema/hyprbinds/internal/hypr"
)

// Display is the final two-column shape consumed by the renderer.
type Display struct {
	Key    string
	Action string
}

// Row is the intermediate shape between grouping and rendering: either
// a raw bind that passed through grouping untouched, or a display
// record merged from a family of symmetric binds. Exactly one field is
// set.
type Row struct {
	Raw    *hypr.Bind
	Merged *Display
}

// ModMaskTable maps Hyprland modifier bitmasks to display labels.
// Mask 0 maps to the empty string so unmodified keys render bare.
type ModMaskTable map[int]string

// DefaultModMasks covers the masks Hyprland emits for the common
// SUPER/SHIFT/CTRL combinations.
func DefaultModMasks() ModMaskTable {
	return ModMaskTable{
		0:  "",
		64: "SUPER",
		65: "SUPER+SHIFT",
		68: "SUPER+CTRL",
		72: "SUPER+SHIFT+CTRL",
	}
}

// Label formats a modifier mask, falling back to MOD_<n> for masks the
// table does not know about.
func (t ModMaskTable) Label(mask int) string {
	if label, ok := t[mask]; ok {
		return label
	}
	return fmt.Sprintf("MOD_%d", mask)
}

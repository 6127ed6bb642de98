package binds

import (
	"errors"
	"sort"
	"strings"

	"github.com/bnema/hyprbinds/internal/hypr"
)

// ErrMalformedRow reports a row carrying neither a raw bind nor a
// merged display record. Rendering cannot proceed past one.
var ErrMalformedRow = errors.New("binds: row has neither raw bind nor merged display")

// Options tweak how raw binds are formatted.
type Options struct {
	// Describe appends bind descriptions to the action column when
	// Hyprland reports one.
	Describe bool
}

// NoGroup wraps every bind as its own row, bypassing grouping.
func NoGroup(bindList []hypr.Bind) []Row {
	rows := make([]Row, len(bindList))
	for i := range bindList {
		rows[i] = Row{Raw: &bindList[i]}
	}
	return rows
}

// Normalize maps every row to exactly one display record. Merged rows
// pass through unchanged; raw binds get their modifier label and
// dispatcher+arg action formatted here.
func Normalize(rows []Row, masks ModMaskTable, opts Options) ([]Display, error) {
	out := make([]Display, 0, len(rows))
	for _, r := range rows {
		switch {
		case r.Merged != nil:
			out = append(out, *r.Merged)
		case r.Raw != nil:
			out = append(out, displayBind(*r.Raw, masks, opts))
		default:
			return nil, ErrMalformedRow
		}
	}
	return out, nil
}

// SortByKey orders displays ascending by key label. The sort is stable
// so equal keys keep their encounter order.
func SortByKey(displays []Display) {
	sort.SliceStable(displays, func(i, j int) bool {
		return displays[i].Key < displays[j].Key
	})
}

func displayBind(b hypr.Bind, masks ModMaskTable, opts Options) Display {
	key := b.KeyName()
	if label := masks.Label(b.ModMask); label != "" {
		key = label + "+" + key
	}
	action := strings.TrimSpace(b.Dispatcher + " " + b.Arg)
	if opts.Describe && b.Description != "" {
		action += "  (" + b.Description + ")"
	}
	return Display{Key: key, Action: action}
}

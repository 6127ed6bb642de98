package binds

import (
	"regexp"
	"strings"

	"github.com/bnema/hyprbinds/internal/hypr"
)

var (
	digitRuns  = regexp.MustCompile(`\d+`)
	directions = regexp.MustCompile(`left|right|up|down|l|r|u|d`)
)

// fingerprint reduces a dispatcher argument to its shape: digit runs
// collapse to "..", then direction words do, so "movewindow l" and
// "movewindow r" land in the same family. Applying it twice yields the
// same string as applying it once. It is a grouping key only and is
// never displayed.
func fingerprint(arg string) string {
	shape := digitRuns.ReplaceAllString(arg, "..")
	return directions.ReplaceAllString(shape, "..")
}

type bucketKey struct {
	mask       int
	dispatcher string
}

// Group collapses symmetric bind families into single rows. Binds are
// bucketed by (modmask, dispatcher), then by argument shape; families
// of two or more merge into one row listing keys and args side by side
// in encounter order. Buckets iterate in first-seen order, so output is
// deterministic for a fixed input order. A single bucket can still
// produce several merged rows when it holds more than one arg shape.
func Group(bindList []hypr.Bind, masks ModMaskTable) []Row {
	buckets := make(map[bucketKey][]hypr.Bind)
	var order []bucketKey
	for _, b := range bindList {
		k := bucketKey{mask: b.ModMask, dispatcher: b.Dispatcher}
		if _, seen := buckets[k]; !seen {
			order = append(order, k)
		}
		buckets[k] = append(buckets[k], b)
	}

	var rows []Row
	for _, k := range order {
		rows = append(rows, groupBucket(k, buckets[k], masks)...)
	}
	return rows
}

func groupBucket(k bucketKey, entries []hypr.Bind, masks ModMaskTable) []Row {
	byShape := make(map[string][]hypr.Bind)
	var shapes []string
	for _, b := range entries {
		shape := fingerprint(b.Arg)
		if _, seen := byShape[shape]; !seen {
			shapes = append(shapes, shape)
		}
		byShape[shape] = append(byShape[shape], b)
	}

	var rows []Row
	for _, shape := range shapes {
		family := byShape[shape]
		if len(family) == 1 {
			b := family[0]
			rows = append(rows, Row{Raw: &b})
			continue
		}

		keys := make([]string, len(family))
		args := make([]string, len(family))
		for i, b := range family {
			keys[i] = b.KeyName()
			args[i] = b.Arg
		}
		key := strings.Join(keys, "/")
		if label := masks.Label(k.mask); label != "" {
			key = label + "+" + key
		}
		rows = append(rows, Row{Merged: &Display{
			Key:    key,
			Action: k.dispatcher + " " + strings.Join(args, "/"),
		}})
	}
	return rows
}

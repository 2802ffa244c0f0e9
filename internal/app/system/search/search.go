// internal/app/system/search/search.go
package search

import (
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
)

// rangeHigh closes a prefix range: every string with the given prefix
// sorts below prefix + U+FFFF.
const rangeHigh = "￿"

// Prefix returns an index-friendly prefix filter over a folded (_ci)
// field. The keyword is folded the same way the stores fold the field
// on write, so the comparison is case- and diacritic-insensitive.
func Prefix(keyword string) bson.M {
	q := text.Fold(keyword)
	return bson.M{"$gte": q, "$lt": q + rangeHigh}
}

// PrefixRaw is Prefix without folding, for fields stored verbatim in a
// known case (e.g. upper-cased course codes).
func PrefixRaw(value string) bson.M {
	return bson.M{"$gte": value, "$lt": value + rangeHigh}
}

// AnyField returns an $or filter matching the keyword as a prefix on
// any of the given folded fields.
func AnyField(keyword string, fields ...string) bson.A {
	r := Prefix(keyword)
	or := make(bson.A, 0, len(fields))
	for _, f := range fields {
		or = append(or, bson.M{f: r})
	}
	return or
}

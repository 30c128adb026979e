package domain

// Record is one parsed row of a rendered view, keyed by camel-cased
// header name. Keys mirror the text the view renders, so the same
// logical field may appear under different names depending on the
// shape that produced it (e.g. "reqAmount" in the expanded order
// panel, "requestedAmount" in the blotter).
type Record map[string]string

// Well-known record fields.
const (
	FieldStatus    = "status"
	FieldSymbol    = "symbol"
	FieldSide      = "side"
	FieldTenor     = "tenor"
	FieldOrderType = "orderType"
	FieldTradeID   = "tradeId"
	FieldTIF       = "tif"
	FieldView      = "view"
)

// Get returns the value stored under key and whether the field is
// present. A present field with an empty value means the view rendered
// the column but the cell could not be resolved.
func (r Record) Get(key string) (string, bool) {
	v, ok := r[key]
	return v, ok
}

// First returns the value of the first present key among keys.
func (r Record) First(keys ...string) (string, bool) {
	for _, k := range keys {
		if v, ok := r[k]; ok {
			return v, true
		}
	}
	return "", false
}

// ID returns the record's identifier, looking under the keys the
// different record shapes use for it. Missing identifier is the empty
// string, which orders below every real identifier.
func (r Record) ID() string {
	v, _ := r.First(FieldTradeID, "id")
	return v
}

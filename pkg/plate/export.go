package plate

// ToMapping flattens the grid into a canonical-label keyed mapping of
// records.
func ToMapping(g *Grid) map[string]Record {
	out := make(map[string]Record, g.Len())
	for c := range g.Cells() {
		label, _ := FormatLabel(c.Row, c.Col)
		out[label] = c.Record
	}
	return out
}

// ToRecords flattens the grid into a row-major list of labeled records,
// the ordered form the render boundary consumes.
func ToRecords(g *Grid) []WellRecord {
	out := make([]WellRecord, 0, g.Len())
	for c := range g.Cells() {
		label, _ := FormatLabel(c.Row, c.Col)
		out = append(out, WellRecord{Well: label, Record: c.Record})
	}
	return out
}

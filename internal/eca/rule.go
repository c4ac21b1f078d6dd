package eca

// RuleTable is the 8-entry lookup table of an elementary rule, most
// significant bit first: entry k holds the output for neighborhood 7-k.
type RuleTable [8]uint8

// RuleToBinary expands rule into its 8-bit big-endian binary form.
func RuleToBinary(rule uint8) RuleTable {
	var t RuleTable
	for k := range t {
		t[k] = (rule >> (7 - k)) & 1
	}
	return t
}

// RuleFromBinary reassembles the rule number from its table.
func RuleFromBinary(t RuleTable) uint8 {
	var rule uint8
	for _, bit := range t {
		rule = rule<<1 | bit&1
	}
	return rule
}

// OutputFunction maps a (left, center, right) neighborhood to its index in a
// RuleTable. Neighborhood 111 lands on index 0 and 000 on index 7.
func OutputFunction(left, center, right uint8) int {
	return 7 - (4*int(left) + 2*int(center) + int(right))
}

// Next returns the rule's output for a neighborhood.
func (t RuleTable) Next(left, center, right uint8) uint8 {
	return t[OutputFunction(left, center, right)]
}

package refrigerant

import "strings"

// PTPoint is one saturation point, PSIG ascending within a table.
type PTPoint struct {
	PSIG  float64 `json:"psig"`
	TempF float64 `json:"temp_f"`
}

// Field PT charts covering the residential service range (suction through
// liquid line). Values are gauge chart values, not NIST data.
var ptTables = map[string][]PTPoint{
	"R410A": {
		{90, 26}, {110, 33}, {130, 40}, {150, 47}, {170, 53},
		{200, 61}, {225, 67}, {250, 73}, {275, 79}, {300, 85},
		{325, 90}, {350, 95}, {375, 100}, {400, 105}, {425, 109},
		{450, 113}, {475, 117}, {500, 121},
	},
	"R22": {
		{40, 18}, {50, 26}, {60, 34}, {70, 41}, {85, 50},
		{100, 59}, {120, 69}, {140, 78}, {160, 86}, {180, 94},
		{200, 101}, {225, 109}, {250, 117}, {275, 124}, {300, 131},
	},
	"R454B": {
		{80, 24}, {100, 32}, {120, 39}, {140, 46}, {160, 52},
		{185, 58}, {210, 64}, {240, 71}, {270, 77}, {300, 83},
		{330, 88}, {360, 93}, {390, 98}, {420, 102}, {450, 106},
	},
	"R32": {
		{90, 25}, {110, 32}, {135, 41}, {160, 49}, {185, 56},
		{210, 62}, {240, 69}, {270, 76}, {300, 82}, {330, 87},
		{360, 93}, {390, 98}, {420, 102}, {450, 107}, {480, 111},
	},
}

const defaultRefrigerant = "R410A"

// normalizeCode maps user input like "r-410a" onto a table key. Unknown codes
// fall back to R-410A, the common residential refrigerant; that fallback is
// deliberate, not an error.
func normalizeCode(code string) string {
	c := strings.ToUpper(strings.TrimSpace(code))
	c = strings.ReplaceAll(c, "-", "")
	c = strings.ReplaceAll(c, " ", "")
	if _, ok := ptTables[c]; !ok {
		return defaultRefrigerant
	}
	return c
}

func tableFor(code string) []PTPoint {
	return ptTables[normalizeCode(code)]
}

// Refrigerants lists the supported table codes.
func Refrigerants() []string {
	return []string{"R410A", "R22", "R454B", "R32"}
}

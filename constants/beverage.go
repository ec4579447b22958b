package constants

import (
	"strings"
)

type BeverageType string

const (
	Wine    BeverageType = "wine"
	Beer    BeverageType = "beer"
	Spirits BeverageType = "spirits"
)

var allBeverageTypes = []BeverageType{
	Wine,
	Beer,
	Spirits,
}

func BeverageTypeStrings() []string {
	result := make([]string, len(allBeverageTypes))
	for i, bt := range allBeverageTypes {
		result[i] = string(bt)
	}
	return result
}

// CanonicalizeBeverage maps free-form submissions to a known beverage type.
func CanonicalizeBeverage(input string) (BeverageType, bool) {
	if input == "" {
		return "", false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]BeverageType{
		"malt beverage":      Beer,
		"ale":                Beer,
		"lager":              Beer,
		"distilled spirits":  Spirits,
		"liquor":             Spirits,
		"whiskey":            Spirits,
		"gin":                Spirits,
		"vodka":              Spirits,
		"table wine":         Wine,
		"sparkling wine":     Wine,
		"sake":               Wine,
	}

	if bt, ok := synonyms[normalized]; ok {
		return bt, true
	}

	for _, bt := range allBeverageTypes {
		if normalized == string(bt) {
			return bt, true
		}
	}

	return "", false
}

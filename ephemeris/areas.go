/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package ephemeris

import (
	"maps"
	"slices"
	"strings"
)

// areaPaths maps Italian province codes to the location path of the sun
// table pages.
var areaPaths = map[string]string{
	"AN": "italy/ancona",
	"AO": "italy/aosta",
	"BA": "italy/bari",
	"BG": "italy/bergamo",
	"BO": "italy/bologna",
	"BS": "italy/brescia",
	"BZ": "italy/bolzano",
	"CA": "italy/cagliari",
	"CB": "italy/campobasso",
	"CO": "italy/como",
	"CT": "italy/catania",
	"CZ": "italy/catanzaro",
	"FI": "italy/florence",
	"GE": "italy/genoa",
	"LE": "italy/lecce",
	"LU": "italy/lucca",
	"MB": "italy/monza",
	"MI": "italy/milan",
	"MO": "italy/modena",
	"NA": "italy/naples",
	"PA": "italy/palermo",
	"PD": "italy/padova",
	"PE": "italy/pescara",
	"PG": "italy/perugia",
	"PI": "italy/pisa",
	"PR": "italy/parma",
	"PZ": "italy/potenza",
	"RC": "italy/reggio-calabria",
	"RM": "italy/rome",
	"RN": "italy/rimini",
	"SI": "italy/siena",
	"SS": "italy/sassari",
	"TN": "italy/trento",
	"TO": "italy/turin",
	"TS": "italy/trieste",
	"VA": "italy/varese",
	"VE": "italy/venice",
	"VR": "italy/verona",
}

// Areas returns every known area code in sorted order.
func Areas() []string {
	return slices.Sorted(maps.Keys(areaPaths))
}

func areaPath(area string) (string, bool) {
	p, ok := areaPaths[strings.ToUpper(strings.TrimSpace(area))]
	return p, ok
}

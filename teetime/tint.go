/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package teetime

// Tint is the background colour hint (#RRGGBB) for rows drawn from quadrant
// q, or "" when the row is not tinted. Women flights of a 54-hole double tee
// have their own block and are left plain.
func Tint(cfg Config, q Quadrant) string {
	if cfg.Layout == LayoutDouble && cfg.Format == Holes54 &&
		q == QuadrantWomen {
		return ""
	}

	switch q {
	case QuadrantMenLower, QuadrantWomenLower:
		return "#DDEBF7"
	case QuadrantMenUpper, QuadrantWomenUpper:
		return "#E2EFDA"
	case QuadrantWomen, QuadrantMen:
		return "#FCE4D6"
	}
	return ""
}

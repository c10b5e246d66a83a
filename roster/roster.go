/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package roster reads competitor lists out of uploaded spreadsheets.
package roster

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mikeb26/teetimes/teetime"
)

const (
	WomenSheet = "Atlete"
	MenSheet   = "Atleti"
)

var ordinalPrefix = regexp.MustCompile(`^\d+\.\s+`)

// LoadFile reads a roster from the spreadsheet at path.
func LoadFile(path string) (teetime.Roster, error) {
	fp, err := os.Open(path)
	if err != nil {
		return teetime.Roster{}, fmt.Errorf("roster.load: %w", err)
	}
	defer fp.Close()

	return Load(fp)
}

// Load reads a roster from an .xlsx workbook. The women are read from the
// "Atlete" sheet and the men from "Atleti"; when the workbook does not carry
// both, the first sheet is taken as women and the second as men. A sheet that
// is missing or unreadable yields an empty list. Only a workbook that cannot
// be opened at all is an error.
func Load(r io.Reader) (teetime.Roster, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return teetime.Roster{}, fmt.Errorf("roster.load: unable to open workbook: %w", err)
	}
	defer f.Close()

	womenSheet, menSheet := pickSheets(f.GetSheetList())

	return teetime.Roster{
		Women: readNames(f, womenSheet),
		Men:   readNames(f, menSheet),
	}, nil
}

func pickSheets(sheets []string) (women, men string) {
	for _, s := range sheets {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case strings.ToLower(WomenSheet):
			women = s
		case strings.ToLower(MenSheet):
			men = s
		}
	}
	if women != "" && men != "" {
		return women, men
	}

	women, men = "", ""
	if len(sheets) > 0 {
		women = sheets[0]
	}
	if len(sheets) > 1 {
		men = sheets[1]
	}
	return women, men
}

// readNames returns one name per row starting at row 2, preferring column B
// over column A.
func readNames(f *excelize.File, sheet string) []string {
	names := make([]string, 0)
	if sheet == "" {
		return names
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return names
	}

	for i, row := range rows {
		if i == 0 {
			continue
		}
		if name := cleanName(row); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func cleanName(row []string) string {
	var name string
	if len(row) > 1 {
		name = strings.TrimSpace(row[1])
	}
	if name == "" && len(row) > 0 {
		name = strings.TrimSpace(row[0])
	}
	return strings.TrimSpace(ordinalPrefix.ReplaceAllString(name, ""))
}

package workbook

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"
)

// bookFile mirrors the on-disk TOML layout:
//
//	[workbook]
//	active = "Sheet1"
//
//	[sheets.Sheet1]
//	A1 = "=A2*A3"
//	A2 = "5"
//	B1 = "hello"
type bookFile struct {
	Workbook struct {
		Active string `toml:"active"`
	} `toml:"workbook"`
	Sheets map[string]map[string]string `toml:"sheets"`
}

// Load parses a workbook from a TOML file. Sheet order follows sorted
// names so loads are deterministic; [workbook].active overrides the
// default active sheet.
func Load(path string) (*Workbook, error) {
	var cfg bookFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("sheets") || len(cfg.Sheets) == 0 {
		return nil, fmt.Errorf("%s: no [sheets] defined", path)
	}

	names := make([]string, 0, len(cfg.Sheets))
	for name := range cfg.Sheets {
		names = append(names, name)
	}
	sort.Strings(names)

	book := New()
	for _, name := range names {
		sheet := book.AddSheet(name)
		for ref, raw := range cfg.Sheets[name] {
			if _, _, err := ParseRef(ref); err != nil {
				return nil, fmt.Errorf("%s: sheet %s: %w", path, name, err)
			}
			sheet.SetCell(ref, ParseCell(raw))
		}
	}

	if active := cfg.Workbook.Active; active != "" {
		if err := book.SetActive(active); err != nil {
			return nil, fmt.Errorf("%s: [workbook].active: %w", path, err)
		}
	}
	return book, nil
}

package driver

import (
	"fmt"
	"path/filepath"
	"strings"

	"flatcell/internal/workbook"
)

// SnapshotExt is the extension for packed workbook snapshots.
const SnapshotExt = ".fcb"

// LoadWorkbook opens a workbook file, picking the decoder by extension:
// .toml for the editable format, .fcb for packed snapshots.
func LoadWorkbook(path string) (*workbook.Workbook, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return workbook.Load(path)
	case SnapshotExt:
		return workbook.LoadSnapshot(path)
	default:
		return nil, fmt.Errorf("%s: unknown workbook format (want .toml or %s)", path, SnapshotExt)
	}
}

package dataset

import _ "embed"

// defaultDataset is the school's roster as transcribed from the entry sheets
// and the rules summary document.
//
//go:embed default.yaml
var defaultDataset []byte

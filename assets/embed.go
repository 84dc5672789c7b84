// assets/embed.go
//
// Embedded default word corpus.
// corpus.csv holds `word,tier` records (tier 1 = easiest source) and is used
// whenever EWORDLE_CORPUS_FILE is not configured.

package assets

import (
	"embed"
	"io"
)

//go:embed corpus.csv
var FS embed.FS

// CorpusName is the file name of the embedded corpus inside FS.
const CorpusName = "corpus.csv"

// OpenCorpus opens the embedded corpus for reading.
func OpenCorpus() (io.ReadCloser, error) {
	return FS.Open(CorpusName)
}

// Package assets holds the word list compiled into the binary. It is the
// corpus of last resort when neither WORDS_FILE nor WORDS_URL is set.
package assets

import (
	_ "embed"
)

// Words is the embedded default list, one word per line. Lines starting
// with '#' are comments.
//
//go:embed words.txt
var Words string

package render

import (
	"strings"

	"golang.org/x/net/html"
)

// minParagraphsForSplit is the smallest paragraph count worth splitting;
// shorter articles render in one piece.
const minParagraphsForSplit = 6

// SplitMiddle splits rendered HTML into two parts at a paragraph
// boundary roughly one third in, so templates can place mid-article
// widgets between them. Documents with fewer than six paragraphs come
// back whole, with an empty bottom half. Concatenating the halves always
// reproduces the input.
func SplitMiddle(rendered string) (top, bottom string) {
	ends := paragraphEnds(rendered)
	if len(ends) < minParagraphsForSplit {
		return rendered, ""
	}

	cut := len(ends) / 3
	if cut < 2 {
		cut = 2
	}
	idx := ends[cut-1]
	return rendered[:idx], rendered[idx:]
}

// paragraphEnds tokenizes the HTML and returns the byte offset just
// after each closing </p> tag. The tokenizer's Raw slices are exact
// spans of the input, so offsets line up with the original string.
func paragraphEnds(s string) []int {
	z := html.NewTokenizer(strings.NewReader(s))

	var ends []int
	offset := 0
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return ends
		}
		raw := z.Raw()
		offset += len(raw)
		if tt == html.EndTagToken {
			if name, _ := z.TagName(); string(name) == "p" {
				ends = append(ends, offset)
			}
		}
	}
}

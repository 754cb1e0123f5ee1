package sedxml

import (
	"bytes"
	"encoding/xml"
	"io"
	"sort"

	"github.com/antchfx/xmlquery"
)

type position struct {
	line, col int
}

// scanPositions returns the line and column of every start element of
// data, in document order
func scanPositions(data []byte) ([]position, error) {
	lineStarts := []int{0}
	for i, b := range data {
		if b == '\n' {
			lineStarts = append(lineStarts, i+1)
		}
	}
	d := xml.NewDecoder(bytes.NewReader(data))
	var out []position
	for {
		off := int(d.InputOffset())
		tok, err := d.Token()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		if _, ok := tok.(xml.StartElement); ok {
			line := sort.Search(len(lineStarts), func(i int) bool { return lineStarts[i] > off })
			out = append(out, position{line: line, col: off - lineStarts[line-1] + 1})
		}
	}
}

// indexPositions pairs the element nodes of root, in document order,
// with the scanned positions
func indexPositions(root *xmlquery.Node, positions []position) map[*xmlquery.Node]position {
	index := make(map[*xmlquery.Node]position, len(positions))
	i := 0
	var walk func(n *xmlquery.Node)
	walk = func(n *xmlquery.Node) {
		if n.Type == xmlquery.ElementNode {
			if i < len(positions) {
				index[n] = positions[i]
			}
			i++
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return index
}

package ghxml

import (
	"strings"

	"github.com/vk/nodegridgo/internal/graph"
)

// Parse decodes an XML graph document into a graph. The document shape is
// selected from the root element: <ghx> for the compact form, <archive>
// for the chunk-tree form.
func Parse(text string) (*graph.Graph, error) {
	root, err := decodeDocument(text)
	if err != nil {
		return nil, err
	}
	switch {
	case strings.EqualFold(root.Name, "ghx"):
		return parseCompact(root)
	case strings.EqualFold(root.Name, "archive"):
		return parseArchive(root)
	default:
		return nil, &UnknownFormatError{Root: root.Name}
	}
}

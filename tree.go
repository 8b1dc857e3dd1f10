// Package tuibox provides the declarative gox adapter for the canvas.
package tuibox

import (
	"fmt"
	"strings"

	"github.com/germtb/gox"
)

// VNode is an alias for gox.VNode - no wrapper needed.
type VNode = gox.VNode

// Props is an alias for gox.Props.
type Props = gox.Props

// RenderTree drives one full canvas session from a gox VNode tree: the
// root session covers the given size, "box" elements become nested
// layouts, and text nodes become prints. On any layout error the pass
// is aborted and the canvas reset, since a partially unwound stack
// would corrupt the next pass.
func RenderTree(c *Canvas, origin Position, size Size, root gox.VNode) error {
	if err := c.Start(origin, size); err != nil {
		return err
	}
	if err := BuildNode(c, Expand(root)); err != nil {
		c.Reset()
		return err
	}
	return c.End()
}

// BuildNode drives the canvas for one expanded node within an open
// session. Box elements open a layout, recurse into children, and close
// it; text nodes print their lines as fragments.
func BuildNode(c *Canvas, node gox.VNode) error {
	if IsTextNode(node) {
		text, _ := GetTextContent(node)
		return c.Print(strings.Split(text, "\n")...)
	}

	typeStr, ok := TypeString(node)
	if !ok {
		return fmt.Errorf("tuibox: unexpanded component in tree")
	}

	switch typeStr {
	case "__fragment__":
		for _, child := range node.Children {
			if err := BuildNode(c, child); err != nil {
				return err
			}
		}
		return nil
	case "box":
		id, _ := node.Props["id"].(string)
		requested, err := getRequestedSize(node.Props)
		if err != nil {
			return err
		}
		if err := c.StartLayout(id, GetDirection(node.Props), requested, getStyleIDs(node.Props)...); err != nil {
			return err
		}
		for _, child := range node.Children {
			if err := BuildNode(c, child); err != nil {
				return err
			}
		}
		return c.EndLayout()
	default:
		return fmt.Errorf("tuibox: unknown element type: %q", typeStr)
	}
}

// Expand recursively expands functional components into their rendered output.
func Expand(v gox.VNode) gox.VNode {
	// If it's a text node or intrinsic element, just expand children
	if _, ok := TypeString(v); ok {
		if len(v.Children) == 0 {
			return v
		}

		expandedChildren := make([]gox.VNode, len(v.Children))
		for i, child := range v.Children {
			expandedChildren[i] = Expand(child)
		}

		return gox.VNode{
			Type:     v.Type,
			Props:    v.Props,
			Children: expandedChildren,
		}
	}

	// It's a functional component
	if comp, ok := v.Type.(gox.Component); ok {
		props := gox.Props{}
		for k, val := range v.Props {
			props[k] = val
		}
		props["children"] = v.Children

		result := comp(props)
		return Expand(result)
	}

	return v
}

// IsTextNode returns true if this is a text node.
func IsTextNode(v gox.VNode) bool {
	s, ok := v.Type.(string)
	return ok && s == gox.TextNodeType
}

// GetTextContent returns the text content if this is a text node.
func GetTextContent(v gox.VNode) (string, bool) {
	if !IsTextNode(v) {
		return "", false
	}
	if content, ok := v.Props["content"].(string); ok {
		return content, true
	}
	if text, ok := v.Props["text"].(string); ok {
		return text, true
	}
	return "", false
}

// TypeString returns the type as a string (for intrinsic elements).
func TypeString(v gox.VNode) (string, bool) {
	s, ok := v.Type.(string)
	return s, ok
}

// CreateTextNode creates a text node.
func CreateTextNode(text string) gox.VNode {
	return gox.VNode{
		Type:     gox.TextNodeType,
		Props:    gox.Props{"text": text, "content": text},
		Children: nil,
	}
}

// GetDirection normalizes the "direction" prop. Both this library's
// names and the row/column flexbox names are accepted; boxes default to
// vertical flow.
func GetDirection(props gox.Props) Direction {
	switch v := props["direction"].(type) {
	case Direction:
		return v
	case string:
		switch v {
		case "horizontal", "row":
			return Horizontal
		case "vertical", "column":
			return Vertical
		}
	}
	return Vertical
}

// getRequestedSize reads the "width"/"height" percent props, defaulting
// each to 100.
func getRequestedSize(props gox.Props) (RequestedSizePercent, error) {
	return NewRequestedSizePercent(
		getIntProp(props, "width", 100),
		getIntProp(props, "height", 100),
	)
}

// getStyleIDs reads the "styles" prop as a string or string slice.
func getStyleIDs(props gox.Props) []string {
	switch v := props["styles"].(type) {
	case string:
		return []string{v}
	case []string:
		return v
	case []any:
		ids := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				ids = append(ids, s)
			}
		}
		return ids
	default:
		return nil
	}
}

// getIntProp converts a possibly-float numeric prop to int.
func getIntProp(props gox.Props, key string, def int) int {
	switch v := props[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return def
	}
}

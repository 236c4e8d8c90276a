package jetbrains

import "encoding/xml"

// element is a generic XML element; the workspace schema is loose enough
// that the extractor walks elements by tag name instead of binding structs.
type element struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []element  `xml:",any"`
}

// attr returns the value of the named attribute, or "" if it is absent.
func (e *element) attr(name string) string {
	for _, a := range e.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}

	return ""
}

// descendants returns all descendant elements with the given tag, in
// document order, excluding e itself.
func (e *element) descendants(tag string) []*element {
	var found []*element

	var walk func(*element)
	walk = func(parent *element) {
		for i := range parent.Children {
			child := &parent.Children[i]
			if child.XMLName.Local == tag {
				found = append(found, child)
			}

			walk(child)
		}
	}
	walk(e)

	return found
}

// Package dom is a minimal in-memory model of the storefront pages. Elements are addressed by id and
// carry the few properties the storefront scripts touch: classes, value, src, text and options.
//
// A Document is not safe for concurrent use, it is owned by a single UI loop.
package dom

import (
	"slices"
)

// ClassHidden hides an element when present in its class list.
const ClassHidden = "hidden"

type Option struct {
	Value    string
	Label    string
	Selected bool
	Disabled bool
}

type Element struct {
	ID      string
	Classes []string
	Value   string
	Src     string
	Text    string
	HTML    string
	Options []Option
}

// HasClass returns true if class is in the class list of the element.
func (e *Element) HasClass(class string) bool {
	return slices.Contains(e.Classes, class)
}

// AddClass adds class to the class list if it is not there yet.
func (e *Element) AddClass(class string) {
	if !e.HasClass(class) {
		e.Classes = append(e.Classes, class)
	}
}

// RemoveClass removes every occurrence of class from the class list.
func (e *Element) RemoveClass(class string) {
	e.Classes = slices.DeleteFunc(e.Classes, func(c string) bool { return c == class })
}

// Hidden returns true if the element has the hidden class.
func (e *Element) Hidden() bool {
	return e.HasClass(ClassHidden)
}

// SelectedOption returns the selected option of a select element, or nil if there is none.
func (e *Element) SelectedOption() *Option {
	for i := range e.Options {
		if e.Options[i].Selected {
			return &e.Options[i]
		}
	}
	return nil
}

// Document holds the elements of a page in insertion order.
type Document struct {
	elements []*Element
	byID     map[string]*Element
}

func New() *Document {
	return &Document{
		byID: map[string]*Element{},
	}
}

// Add appends an element to the document. Adding an element with an id that already exists
// replaces the existing element.
func (d *Document) Add(element *Element) *Element {
	if existing, ok := d.byID[element.ID]; ok {
		idx := slices.Index(d.elements, existing)
		d.elements[idx] = element
	} else {
		d.elements = append(d.elements, element)
	}
	d.byID[element.ID] = element
	return element
}

// Element returns the element with the specified id, or nil if it does not exist.
func (d *Document) Element(id string) *Element {
	return d.byID[id]
}

// Elements returns all elements in insertion order.
func (d *Document) Elements() []*Element {
	return slices.Clone(d.elements)
}

// ByClass returns all elements that have class in their class list, in insertion order.
func (d *Document) ByClass(class string) []*Element {
	var result []*Element
	for _, e := range d.elements {
		if e.HasClass(class) {
			result = append(result, e)
		}
	}
	return result
}

// SetHidden adds or removes the hidden class. Unknown ids are ignored.
func (d *Document) SetHidden(id string, hidden bool) {
	e := d.Element(id)
	if e == nil {
		return
	}
	if hidden {
		e.AddClass(ClassHidden)
	} else {
		e.RemoveClass(ClassHidden)
	}
}

// IsHidden returns true if the element exists and is hidden.
func (d *Document) IsHidden(id string) bool {
	e := d.Element(id)
	return e != nil && e.Hidden()
}

// SetValue sets the value attribute of an element. Unknown ids are ignored.
func (d *Document) SetValue(id string, value string) {
	if e := d.Element(id); e != nil {
		e.Value = value
	}
}

// Value returns the value attribute of an element, or the empty string if it does not exist.
func (d *Document) Value(id string) string {
	if e := d.Element(id); e != nil {
		return e.Value
	}
	return ""
}

// SetText replaces the text content of an element. Unknown ids are ignored.
func (d *Document) SetText(id string, text string) {
	if e := d.Element(id); e != nil {
		e.Text = text
	}
}

// SetHTML replaces the inner HTML of an element. Unknown ids are ignored.
func (d *Document) SetHTML(id string, html string) {
	if e := d.Element(id); e != nil {
		e.HTML = html
	}
}

// Select marks the option with the specified value as selected and deselects every other option,
// the way a single select behaves. Disabled options can still be selected programmatically.
// It returns false and leaves the selection as it was if no option has that value.
func (d *Document) Select(id string, value string) bool {
	e := d.Element(id)
	if e == nil {
		return false
	}
	idx := slices.IndexFunc(e.Options, func(o Option) bool { return o.Value == value })
	if idx < 0 {
		return false
	}
	for i := range e.Options {
		e.Options[i].Selected = i == idx
	}
	return true
}

// DisableUnselected disables every option of a select that is not currently selected.
// Options are never re-enabled.
func (d *Document) DisableUnselected(id string) {
	e := d.Element(id)
	if e == nil {
		return
	}
	for i := range e.Options {
		if !e.Options[i].Selected {
			e.Options[i].Disabled = true
		}
	}
}

package widgets

import (
	"fmt"

	"github.com/prior-it/storefront/dom"
)

const (
	ClassThumbnail = "thumbnails"
	ClassActive    = "active"
	IDFeatured     = "featured"
)

// Slider shows the clicked thumbnail of a product as its featured image.
type Slider struct {
	doc *dom.Document
}

func NewSlider(doc *dom.Document) *Slider {
	return &Slider{doc: doc}
}

// Select makes the thumbnail with the specified id the only active one and shows its image in the
// featured image.
func (s *Slider) Select(thumbID string) error {
	thumb := s.doc.Element(thumbID)
	if thumb == nil || !thumb.HasClass(ClassThumbnail) {
		return fmt.Errorf("thumbnail %q: %w", thumbID, ErrUnknownElement)
	}
	featured := s.doc.Element(IDFeatured)
	if featured == nil {
		return fmt.Errorf("featured image %q: %w", IDFeatured, ErrUnknownElement)
	}

	for _, other := range s.doc.ByClass(ClassThumbnail) {
		other.RemoveClass(ClassActive)
	}
	thumb.AddClass(ClassActive)
	featured.Src = thumb.Src
	return nil
}

// Active returns the active thumbnail, or nil if none is active.
func (s *Slider) Active() *dom.Element {
	for _, thumb := range s.doc.ByClass(ClassThumbnail) {
		if thumb.HasClass(ClassActive) {
			return thumb
		}
	}
	return nil
}

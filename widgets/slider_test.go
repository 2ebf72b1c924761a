package widgets_test

import (
	"testing"

	"github.com/prior-it/storefront/dom"
	"github.com/prior-it/storefront/widgets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGallery() *dom.Document {
	doc := dom.New()
	doc.Add(&dom.Element{ID: widgets.IDFeatured, Src: "/media/front.jpg"})
	doc.Add(&dom.Element{
		ID:      "thumb-1",
		Classes: []string{widgets.ClassThumbnail, widgets.ClassActive},
		Src:     "/media/front.jpg",
	})
	doc.Add(&dom.Element{ID: "thumb-2", Classes: []string{widgets.ClassThumbnail}, Src: "/media/back.jpg"})
	doc.Add(&dom.Element{ID: "thumb-3", Classes: []string{widgets.ClassThumbnail}, Src: "/media/side.jpg"})
	doc.Add(&dom.Element{ID: "menu", Classes: []string{widgets.ClassActive}})
	return doc
}

func TestSlider(t *testing.T) {
	t.Run("ok: clicked thumbnail becomes the featured image", func(t *testing.T) {
		doc := newGallery()
		slider := widgets.NewSlider(doc)

		require.Nil(t, slider.Select("thumb-2"))

		assert.Equal(t, "/media/back.jpg", doc.Element(widgets.IDFeatured).Src)
		assert.Equal(t, "thumb-2", slider.Active().ID)
		assert.False(t, doc.Element("thumb-1").HasClass(widgets.ClassActive))
		assert.False(t, doc.Element("thumb-3").HasClass(widgets.ClassActive))
		// Other active elements on the page are left alone
		assert.True(t, doc.Element("menu").HasClass(widgets.ClassActive))
	})

	t.Run("ok: selecting the active thumbnail again", func(t *testing.T) {
		doc := newGallery()
		slider := widgets.NewSlider(doc)

		require.Nil(t, slider.Select("thumb-1"))
		require.Nil(t, slider.Select("thumb-1"))

		assert.Equal(t, []string{widgets.ClassThumbnail, widgets.ClassActive}, doc.Element("thumb-1").Classes)
	})

	t.Run("err: unknown thumbnail", func(t *testing.T) {
		doc := newGallery()
		slider := widgets.NewSlider(doc)

		assert.ErrorIs(t, slider.Select("thumb-9"), widgets.ErrUnknownElement)
		assert.ErrorIs(t, slider.Select("menu"), widgets.ErrUnknownElement)
		assert.Equal(t, "thumb-1", slider.Active().ID)
	})
}

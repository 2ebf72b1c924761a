package zipform_test

import (
	"testing"

	"github.com/prior-it/storefront/core"
	"github.com/prior-it/storefront/dom"
	"github.com/prior-it/storefront/tests"
	"github.com/prior-it/storefront/zipform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sectionIDs = []string{
	zipform.IDAddressColumn,
	zipform.IDNumberColumn,
	zipform.IDNeighborhoodRow,
	zipform.IDCityStateCountryRow,
	zipform.IDButtons,
}

func assertSectionsHidden(t *testing.T, doc *dom.Document, hidden bool) {
	t.Helper()
	for _, id := range sectionIDs {
		assert.Equal(t, hidden, doc.IsHidden(id), id)
	}
}

func assertOnlySelected(t *testing.T, doc *dom.Document, value string) {
	t.Helper()
	uf := doc.Element(zipform.IDState)
	require.NotNil(t, uf)
	selected := uf.SelectedOption()
	require.NotNil(t, selected)
	assert.Equal(t, value, selected.Value)
	for _, option := range uf.Options {
		assert.Equal(t, option.Value != value, option.Disabled, option.Value)
	}
}

func TestNewDocument(t *testing.T) {
	doc := zipform.NewDocument()

	assertSectionsHidden(t, doc, true)
	assert.True(t, doc.IsHidden(zipform.IDLoader))
	assert.True(t, doc.IsHidden(zipform.IDError))
	assert.Equal(t, "BR", doc.Value(zipform.IDCountry))

	uf := doc.Element(zipform.IDState)
	require.NotNil(t, uf)
	assert.Len(t, uf.Options, len(core.StateOptions()))
	assert.Equal(t, "", uf.SelectedOption().Value)
	for _, option := range uf.Options {
		assert.False(t, option.Disabled)
	}
}

func TestRender(t *testing.T) {
	paulista := &core.Address{
		Street:       "Avenida Paulista",
		Neighborhood: "Bela Vista",
		Complement:   "de 612 a 1510 - lado par",
		City:         "São Paulo",
		State:        "SP",
	}

	t.Run("ok: initial state leaves the server markup alone", func(t *testing.T) {
		doc := zipform.NewDocument()
		doc.SetHidden(zipform.IDAddressColumn, false)

		zipform.Render(doc, zipform.Form{})

		assert.False(t, doc.IsHidden(zipform.IDAddressColumn))
		assert.True(t, doc.IsHidden(zipform.IDNumberColumn))
	})

	t.Run("ok: loading hides sections and error, shows loader", func(t *testing.T) {
		doc := zipform.NewDocument()
		for _, id := range sectionIDs {
			doc.SetHidden(id, false)
		}
		doc.SetHidden(zipform.IDError, false)

		zipform.Render(doc, zipform.Form{Visibility: zipform.VisibilityLoading})

		assertSectionsHidden(t, doc, true)
		assert.False(t, doc.IsHidden(zipform.IDLoader))
		assert.False(t, doc.IsHidden(zipform.IDLoadingText))
		assert.True(t, doc.IsHidden(zipform.IDError))
	})

	t.Run("ok: found fills the address and locks the state", func(t *testing.T) {
		doc := zipform.NewDocument()
		zipform.Render(doc, zipform.Form{Visibility: zipform.VisibilityLoading})

		zipform.Render(doc, zipform.Form{Visibility: zipform.VisibilityFound, Address: paulista})

		assertSectionsHidden(t, doc, false)
		assert.True(t, doc.IsHidden(zipform.IDLoader))
		assert.True(t, doc.IsHidden(zipform.IDLoadingText))
		assert.True(t, doc.IsHidden(zipform.IDError))
		assert.Equal(t, "Avenida Paulista", doc.Value(zipform.IDStreet))
		assert.Equal(t, "Bela Vista", doc.Value(zipform.IDNeighborhood))
		assert.Equal(t, "de 612 a 1510 - lado par", doc.Value(zipform.IDComplement))
		assert.Equal(t, "São Paulo", doc.Value(zipform.IDCity))
		assert.Equal(t, "", doc.Value(zipform.IDNumber))
		assertOnlySelected(t, doc, "SP")
	})

	t.Run("ok: failed shows the error and keeps sections hidden", func(t *testing.T) {
		doc := zipform.NewDocument()
		zipform.Render(doc, zipform.Form{Visibility: zipform.VisibilityLoading})

		zipform.Render(doc, zipform.Form{
			Visibility: zipform.VisibilityFailed,
			Reason:     zipform.FailureNotFound,
		})

		assertSectionsHidden(t, doc, true)
		assert.True(t, doc.IsHidden(zipform.IDLoader))
		assert.True(t, doc.IsHidden(zipform.IDLoadingText))
		assert.False(t, doc.IsHidden(zipform.IDError))
	})

	t.Run("ok: disabled options stay disabled after a second lookup", func(t *testing.T) {
		doc := zipform.NewDocument()
		zipform.Render(doc, zipform.Form{Visibility: zipform.VisibilityFound, Address: paulista})

		rio := tests.Address(tests.PostalCode())
		rio.State = "RJ"
		zipform.Render(doc, zipform.Form{Visibility: zipform.VisibilityFound, Address: &rio})

		uf := doc.Element(zipform.IDState)
		assert.Equal(t, "RJ", uf.SelectedOption().Value)
		for _, option := range uf.Options {
			if option.Value != "RJ" {
				assert.True(t, option.Disabled, option.Value)
			}
		}
	})

	t.Run("ok: unknown state keeps the prior selection", func(t *testing.T) {
		doc := zipform.NewDocument()
		unknown := *paulista
		unknown.State = "XX"

		zipform.Render(doc, zipform.Form{Visibility: zipform.VisibilityFound, Address: &unknown})

		assertOnlySelected(t, doc, "")
	})
}

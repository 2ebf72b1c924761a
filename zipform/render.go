package zipform

import (
	"github.com/biter777/countries"
	"github.com/prior-it/storefront/core"
	"github.com/prior-it/storefront/dom"
)

// Element ids of the address form.
const (
	IDPostalCode   = "id_zip_code"
	IDStreet       = "id_address"
	IDNumber       = "id_number"
	IDComplement   = "id_complement"
	IDNeighborhood = "id_neighborhood"
	IDReference    = "id_reference"
	IDCity         = "id_city"
	IDState        = "id_uf"
	IDCountry      = "id_country"
	IDButtons      = "buttons"

	IDLoader      = "i-loader"
	IDLoadingText = "zipCodeLoadingText"
	IDError       = "zipCodeError"

	IDAddressColumn       = "address-col"
	IDNumberColumn        = "number-col"
	IDNeighborhoodRow     = "neighborhood-complement-reference-row"
	IDCityStateCountryRow = "city-uf-country-row"
)

// Sections are shown and hidden together.
var sections = []string{
	IDAddressColumn,
	IDNumberColumn,
	IDNeighborhoodRow,
	IDCityStateCountryRow,
	IDButtons,
}

// Document is the part of the page the form controller mutates.
type Document interface {
	SetHidden(id string, hidden bool)
	SetValue(id string, value string)
	Select(id string, value string) bool
	DisableUnselected(id string)
}

var _ Document = (*dom.Document)(nil)

// Render applies the form state to the document. It is the only place where the controller
// touches the page.
func Render(doc Document, form Form) {
	switch form.Visibility {
	case VisibilityInitial:
		return
	case VisibilityLoading:
		doc.SetHidden(IDLoader, false)
		doc.SetHidden(IDLoadingText, false)
		doc.SetHidden(IDError, true)
	case VisibilityFound:
		doc.SetHidden(IDLoader, true)
		doc.SetHidden(IDLoadingText, true)
		doc.SetHidden(IDError, true)
		if form.Address != nil {
			fill(doc, *form.Address)
		}
	case VisibilityFailed:
		doc.SetHidden(IDLoader, true)
		doc.SetHidden(IDLoadingText, true)
		doc.SetHidden(IDError, false)
	}

	visible := form.Visibility.SectionsVisible()
	for _, id := range sections {
		doc.SetHidden(id, !visible)
	}
}

func fill(doc Document, address core.Address) {
	doc.SetValue(IDStreet, address.Street)
	doc.SetValue(IDNeighborhood, address.Neighborhood)
	doc.SetValue(IDComplement, address.Complement)
	doc.SetValue(IDCity, address.City)
	doc.Select(IDState, string(address.State))
	doc.DisableUnselected(IDState)
}

// NewDocument builds the address form the way the server renders it: every section hidden until a
// postal code has been looked up.
func NewDocument() *dom.Document {
	doc := dom.New()
	hidden := []string{dom.ClassHidden}

	doc.Add(&dom.Element{ID: IDPostalCode})
	doc.Add(&dom.Element{ID: IDLoader, Classes: hidden})
	doc.Add(&dom.Element{ID: IDLoadingText, Classes: hidden, Text: "Buscando endereço..."})
	doc.Add(&dom.Element{ID: IDError, Classes: hidden, Text: "CEP não encontrado."})

	doc.Add(&dom.Element{ID: IDAddressColumn, Classes: hidden})
	doc.Add(&dom.Element{ID: IDStreet})
	doc.Add(&dom.Element{ID: IDNumberColumn, Classes: hidden})
	doc.Add(&dom.Element{ID: IDNumber})

	doc.Add(&dom.Element{ID: IDNeighborhoodRow, Classes: hidden})
	doc.Add(&dom.Element{ID: IDNeighborhood})
	doc.Add(&dom.Element{ID: IDComplement})
	doc.Add(&dom.Element{ID: IDReference})

	doc.Add(&dom.Element{ID: IDCityStateCountryRow, Classes: hidden})
	doc.Add(&dom.Element{ID: IDCity})
	doc.Add(&dom.Element{ID: IDState, Options: stateOptions()})
	doc.Add(&dom.Element{ID: IDCountry, Value: countries.Brazil.Alpha2(), Text: countries.Brazil.String()})

	doc.Add(&dom.Element{ID: IDButtons, Classes: hidden})
	return doc
}

func stateOptions() []dom.Option {
	states := core.StateOptions()
	options := make([]dom.Option, len(states))
	for i, state := range states {
		options[i] = dom.Option{
			Value:    string(state.Code),
			Label:    state.Name,
			Selected: i == 0,
		}
	}
	return options
}

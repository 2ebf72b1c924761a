package widgets

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/prior-it/storefront/core"
	"github.com/prior-it/storefront/dom"
	"github.com/prior-it/storefront/storeapi"
)

const (
	IDTotal                  = "total"
	IDTotalDiscounted        = "total-discounted"
	IDTotalText              = "total_text"
	IDTotalDiscountedText    = "total-discounted_text"
	IDCreditCardInstallments = "id_credit_card_form-installments"
)

// PriceID returns the id of the element that displays the price of a shipping service.
func PriceID(serviceCode string) string {
	return "price_" + serviceCode
}

// InstallmentsSource renders the credit card installments for an order total.
type InstallmentsSource interface {
	Installments(ctx context.Context, total core.Money) (*storeapi.Installments, error)
}

// Totals keeps the order totals of the checkout page in line with the selected shipping service.
type Totals struct {
	doc          *dom.Document
	installments InstallmentsSource
	logger       *slog.Logger

	// CartTotal is the order total without shipping
	CartTotal core.Money
	// CashTotal is the discounted order total for cash payments, without shipping
	CashTotal core.Money
}

func NewTotals(doc *dom.Document, installments InstallmentsSource, cartTotal, cashTotal core.Money) *Totals {
	return &Totals{
		doc:          doc,
		installments: installments,
		logger:       slog.Default(),
		CartTotal:    cartTotal,
		CashTotal:    cashTotal,
	}
}

func (t *Totals) WithLogger(logger *slog.Logger) *Totals {
	t.logger = logger
	return t
}

// AddShippingOptions adds the price elements of the quoted shipping services to the document.
// Failed quotes display their error message instead of a price.
func AddShippingOptions(doc *dom.Document, options []core.ShippingOption) {
	for _, option := range options {
		element := &dom.Element{ID: PriceID(option.ServiceCode)}
		if option.Failed() {
			element.Text = option.ErrorText()
		} else if amount, err := option.Amount(); err == nil {
			element.Text = amount.Format()
		} else {
			element.Text = option.Price
		}
		doc.Add(element)
	}
}

// ShippingPrice reads the displayed price of a shipping service, e.g. "SEDEX R$25,90".
func (t *Totals) ShippingPrice(serviceCode string) (core.Money, error) {
	element := t.doc.Element(PriceID(serviceCode))
	if element == nil {
		return 0, fmt.Errorf("price of service %q: %w", serviceCode, ErrUnknownElement)
	}
	text := element.Text
	if _, after, found := strings.Cut(text, "R$"); found {
		text = after
	}
	return core.ParseMoney(text)
}

// SelectShipping updates both totals with the price of the selected shipping service and loads the
// installment options for the new total. It returns the new regular total.
func (t *Totals) SelectShipping(ctx context.Context, serviceCode string) (core.Money, error) {
	price, err := t.ShippingPrice(serviceCode)
	if err != nil {
		return 0, err
	}

	total := t.CartTotal + price
	t.doc.SetText(IDTotalText, total.Format())
	t.doc.SetText(IDTotalDiscountedText, (t.CashTotal + price).Format())

	installments, err := t.installments.Installments(ctx, total)
	if err != nil {
		t.logger.Error("Cannot load installments", "total", total.Decimal(), "error", err)
		return total, err
	}
	t.doc.SetHTML(IDCreditCardInstallments, installments.HTML)
	return total, nil
}

// ShowDiscounted shows the cash total instead of the regular total.
func (t *Totals) ShowDiscounted() {
	t.doc.SetHidden(IDTotal, true)
	t.doc.SetHidden(IDTotalDiscounted, false)
}

// ShowRegular shows the regular total instead of the cash total.
func (t *Totals) ShowRegular() {
	t.doc.SetHidden(IDTotal, false)
	t.doc.SetHidden(IDTotalDiscounted, true)
}

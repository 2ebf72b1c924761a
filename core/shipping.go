package core

import (
	"fmt"
	"strconv"
)

// Correios service codes offered by the store.
const (
	ServiceSEDEX = "04014"
	ServicePAC   = "04510"
)

// ShippingServiceName returns the display name of a Correios service code.
func ShippingServiceName(code string) string {
	switch code {
	case ServiceSEDEX:
		return "SEDEX"
	case ServicePAC:
		return "PAC"
	}
	return code
}

// ShippingOption is a single shipping quote as returned by the store backend.
// The field names follow the Correios price and deadline calculator.
type ShippingOption struct {
	ServiceCode   string `json:"Codigo"`
	Price         string `json:"Valor"`
	DaysToDeliver string `json:"PrazoEntrega"`
	ErrorCode     string `json:"Erro"`
	ErrorMessage  string `json:"MsgErro"`
}

// Failed returns true if the Correios returned an error for this option.
func (o ShippingOption) Failed() bool {
	return len(o.ErrorCode) > 0 && o.ErrorCode != "0"
}

// ErrorText returns the customer facing error message, or the empty string if the option did not fail.
func (o ShippingOption) ErrorText() string {
	if !o.Failed() {
		return ""
	}
	return ZipCodeErrorMessage(o.ErrorCode, o.ErrorMessage)
}

// Amount parses the price of this option.
func (o ShippingOption) Amount() (Money, error) {
	amount, err := ParseMoney(o.Price)
	if err != nil {
		return 0, fmt.Errorf("invalid price for service %s: %w", o.ServiceCode, err)
	}
	return amount, nil
}

// Days parses the delivery deadline of this option.
func (o ShippingOption) Days() (int, error) {
	days, err := strconv.Atoi(o.DaysToDeliver)
	if err != nil {
		return 0, fmt.Errorf("invalid delivery deadline for service %s: %w", o.ServiceCode, err)
	}
	return days, nil
}

// Installment is a single credit card installment option.
type Installment struct {
	Count int
	Label string
}

package storeapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gorilla/schema"
	"github.com/prior-it/storefront/core"
)

const pathInstallments = "/load_credit_card_installments/"

var queryEncoder = schema.NewEncoder()

type installmentsQuery struct {
	Total string `schema:"total"`
}

// Installments is the server-rendered list of credit card installment options.
type Installments struct {
	// HTML is the raw fragment, ready to be injected into the installments select
	HTML    string
	Options []core.Installment
}

// Installments requests the installment options for the specified order total.
func (c *Client) Installments(ctx context.Context, total core.Money) (*Installments, error) {
	query := url.Values{}
	if err := queryEncoder.Encode(installmentsQuery{Total: total.Decimal()}, query); err != nil {
		return nil, fmt.Errorf("cannot encode installments query: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodGet, c.endpoint(pathInstallments, query), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("cannot read installments: %w", err)
	}
	options, err := parseInstallments(string(body))
	if err != nil {
		return nil, err
	}
	return &Installments{HTML: string(body), Options: options}, nil
}

func parseInstallments(fragment string) ([]core.Installment, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, fmt.Errorf("cannot parse installments: %w", err)
	}
	var (
		options  []core.Installment
		parseErr error
	)
	doc.Find("option").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		value, _ := s.Attr("value")
		count, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			parseErr = fmt.Errorf("invalid installment option %q: %w", value, err)
			return false
		}
		options = append(options, core.Installment{
			Count: count,
			Label: strings.TrimSpace(s.Text()),
		})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return options, nil
}

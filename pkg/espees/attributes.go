package espees

import (
	"context"
	"net/url"

	"github.com/espeeswap/espeeswap-go/internal/endpoints"
)

// attributeService implements the AttributeService interface. Each call is a
// pass-through: parameter placement and {data: ...} envelope unwrapping only.
type attributeService struct {
	client *Client
}

// Countries lists supported signup countries
func (s *attributeService) Countries(ctx context.Context) ([]*Country, error) {
	var res struct {
		Data []*Country `json:"data"`
	}
	if err := s.client.transport.Do(ctx, endpoints.AttributesCountries, nil, nil, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

// Banks lists payout banks for a destination currency
func (s *attributeService) Banks(ctx context.Context, currency string) ([]*Bank, error) {
	var res struct {
		Data struct {
			Banks []*Bank `json:"banks"`
		} `json:"data"`
	}
	opts := &RequestOptions{
		Query: url.Values{"currency": []string{currency}},
	}
	if err := s.client.transport.Do(ctx, endpoints.AttributesBanks, nil, opts, &res); err != nil {
		return nil, err
	}
	return res.Data.Banks, nil
}

// Rates retrieves the Espee exchange rates and percentage charge
func (s *attributeService) Rates(ctx context.Context) (*Rates, error) {
	var res struct {
		Data *Rates `json:"data"`
	}
	if err := s.client.transport.Do(ctx, endpoints.AttributesRates, nil, nil, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

// Currencies lists supported destination currencies
func (s *attributeService) Currencies(ctx context.Context) ([]*Currency, error) {
	var res struct {
		Data []*Currency `json:"data"`
	}
	if err := s.client.transport.Do(ctx, endpoints.AttributesCurrencies, nil, nil, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

// ResolveAccount verifies a bank account number and returns the owner name
func (s *attributeService) ResolveAccount(ctx context.Context, bankID int64, accountNumber string) (*ResolvedAccount, error) {
	var res struct {
		Data *ResolvedAccount `json:"data"`
	}
	opts := &RequestOptions{
		Body: map[string]interface{}{
			"bank_id":        bankID,
			"account_number": accountNumber,
		},
	}
	if err := s.client.transport.Do(ctx, endpoints.AttributesResolveAccount, nil, opts, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

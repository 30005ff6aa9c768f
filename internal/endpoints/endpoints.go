// Package endpoints holds the static table mapping logical operation names to
// HTTP methods and URL path templates. The table is built once and never
// mutated; templates may contain :param placeholders.
package endpoints

import (
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// Operation names.
const (
	AuthRegister             = "auth.register"
	AuthLogin                = "auth.login"
	AuthVerifyEmail          = "auth.verifyEmail"
	AuthRequestVerification  = "auth.requestVerification"
	AuthPasswordResetRequest = "auth.passwordResetRequest"
	AuthPasswordResetVerify  = "auth.passwordResetVerify"
	AttributesCountries      = "attributes.getCountries"
	AttributesBanks          = "attributes.getBanks"
	AttributesRates          = "attributes.getRates"
	AttributesCurrencies     = "attributes.getCurrencies"
	AttributesResolveAccount = "attributes.resolveAccount"
	TransactionsCreate       = "transactions.create"
	TransactionsList         = "transactions.list"
	TransactionsDetails      = "transactions.details"
	TransactionsCancel       = "transactions.cancel"
	Ping                     = "ping"
)

// Endpoint is one entry of the endpoint map.
type Endpoint struct {
	Method string
	Path   string
}

var table = map[string]Endpoint{
	AuthRegister:             {"POST", "auth/register"},
	AuthLogin:                {"POST", "auth/login"},
	AuthVerifyEmail:          {"POST", "auth/email-verification/verify"},
	AuthRequestVerification:  {"POST", "auth/email-verification/request"},
	AuthPasswordResetRequest: {"POST", "auth/password-reset/request"},
	AuthPasswordResetVerify:  {"POST", "auth/password-reset/verify"},
	AttributesCountries:      {"GET", "attributes/countries"},
	AttributesBanks:          {"GET", "attributes/banks"},
	AttributesRates:          {"GET", "attributes/espee-rates"},
	AttributesCurrencies:     {"GET", "attributes/currencies"},
	AttributesResolveAccount: {"POST", "attributes/banks/resolve-account"},
	TransactionsCreate:       {"POST", "transactions"},
	TransactionsList:         {"GET", "transactions"},
	TransactionsDetails:      {"GET", "transactions/:id"},
	TransactionsCancel:       {"POST", "transactions/:id/cancel"},
	Ping:                     {"HEAD", "ping"},
}

// Lookup returns the endpoint for an operation name.
func Lookup(op string) (Endpoint, error) {
	ep, ok := table[op]
	if !ok {
		return Endpoint{}, errors.Errorf("unknown operation %q", op)
	}
	return ep, nil
}

// Resolve substitutes :param placeholders in a path template. Values are
// path-escaped. Missing params are an error so malformed URLs never leave
// the client.
func Resolve(template string, params map[string]string) (string, error) {
	if !strings.Contains(template, ":") {
		return template, nil
	}

	segments := strings.Split(template, "/")
	for i, seg := range segments {
		if !strings.HasPrefix(seg, ":") {
			continue
		}
		name := seg[1:]
		val, ok := params[name]
		if !ok || val == "" {
			return "", errors.Errorf("missing path parameter %q", name)
		}
		segments[i] = url.PathEscape(val)
	}
	return strings.Join(segments, "/"), nil
}

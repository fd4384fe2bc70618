// Package exchangerate implements a client for the ExchangeRate-API v6
// "latest" endpoint, which returns the full table of conversion rates for a
// base currency. Failures are reported as the conversion error kinds defined
// in the domain package; the access key never appears in returned errors.
package exchangerate

package exchangerate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/phrazzld/fxconvert-api/internal/config"
	"github.com/phrazzld/fxconvert-api/internal/domain"
	"github.com/phrazzld/fxconvert-api/internal/platform/logger"
	"github.com/phrazzld/fxconvert-api/internal/redact"
)

// maxBodyBytes bounds how much of a provider response is read.
const maxBodyBytes = 1 << 20

// Client fetches rate tables from ExchangeRate-API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client used for provider calls.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a Client from the exchange rate configuration.
// The HTTP client timeout is taken from cfg.Timeout.
func NewClient(cfg config.ExchangeRateConfig, logger *slog.Logger, opts ...Option) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: api key cannot be empty", ErrInvalidConfig)
	}
	parsed, err := url.Parse(cfg.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("%w: base url must be absolute", ErrInvalidConfig)
	}

	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// LatestRates returns the current conversion rates for base.
// Exactly one request is made; there is no caching and no retry.
func (c *Client) LatestRates(ctx context.Context, base string) (*domain.RateTable, error) {
	log := logger.FromContextOrDefault(ctx, c.logger)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.latestURL(base), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build request: %s",
			domain.ErrProviderUnavailable, c.scrub(err))
	}
	req.Header.Set("Accept", "application/json")

	log.Debug("fetching latest rates", "base", base)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request failed: %w", domain.ErrProviderUnavailable, c.stripURL(err))
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %w", domain.ErrProviderUnavailable, c.stripURL(err))
	}

	var payload latestResponse
	decodeErr := json.Unmarshal(body, &payload)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		if decodeErr == nil && payload.ErrorType == errorTypeUnsupportedCode {
			return nil, fmt.Errorf("%w: provider does not support base %q", domain.ErrUnknownCurrency, base)
		}
		return nil, fmt.Errorf("%w: provider returned status %d", domain.ErrProviderUnavailable, resp.StatusCode)
	}

	if decodeErr != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", domain.ErrMalformedResponse, decodeErr)
	}

	if payload.Result != "" && payload.Result != resultSuccess {
		switch payload.ErrorType {
		case errorTypeUnsupportedCode:
			return nil, fmt.Errorf("%w: provider does not support base %q", domain.ErrUnknownCurrency, base)
		case errorTypeMalformed:
			return nil, fmt.Errorf("%w: provider rejected the request", domain.ErrMalformedResponse)
		default:
			return nil, fmt.Errorf("%w: provider returned result=%s error-type=%s",
				domain.ErrProviderUnavailable, payload.Result, payload.ErrorType)
		}
	}

	if payload.ConversionRates == nil {
		return nil, fmt.Errorf("%w: conversion_rates missing", domain.ErrMalformedResponse)
	}

	table := &domain.RateTable{Base: payload.BaseCode, Rates: payload.ConversionRates}
	if table.Base == "" {
		table.Base = base
	}

	log.Debug("fetched latest rates", "base", table.Base, "count", len(table.Rates))
	return table, nil
}

func (c *Client) latestURL(code string) string {
	return c.baseURL + "/" + url.PathEscape(c.apiKey) + "/latest/" + url.PathEscape(code)
}

// stripURL drops the request URL, which embeds the access key, from
// transport errors while keeping the underlying cause matchable.
func (c *Client) stripURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}

func (c *Client) scrub(err error) string {
	return redact.Secrets(err.Error(), c.apiKey)
}

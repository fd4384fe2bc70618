package exchangerate

// latestResponse is the body returned by GET <base>/<key>/latest/<code>.
// On failure the provider sets Result to "error" and fills ErrorType.
type latestResponse struct {
	Result             string             `json:"result"`
	BaseCode           string             `json:"base_code"`
	TimeLastUpdateUnix int64              `json:"time_last_update_unix"`
	ConversionRates    map[string]float64 `json:"conversion_rates"`
	ErrorType          string             `json:"error-type,omitempty"`
}

// Values of latestResponse.Result and latestResponse.ErrorType.
const (
	resultSuccess = "success"

	errorTypeUnsupportedCode = "unsupported-code"
	errorTypeMalformed       = "malformed-request"
)

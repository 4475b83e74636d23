// lookup/client.go
package lookup

import (
	"crypto/tls"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/TheWhiteHat1/osint-bot-host/config"
	"github.com/TheWhiteHat1/osint-bot-host/models"
)

const requestTimeout = 30 * time.Second

// Client performs the outbound lookup calls. Each kind maps to one base URL;
// the normalized identifier is appended to it verbatim. Upstream certs are
// not verified: several of the lookup hosts serve self-signed or mismatched
// certificates.
type Client struct {
	httpClient *http.Client
	baseURLs   map[models.Kind]string
	logger     *zap.Logger
}

// NewClient builds a Client from the configured per-kind base URLs.
func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: requestTimeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		},
		baseURLs: map[models.Kind]string{
			models.KindNumber:      cfg.APIURLNumber,
			models.KindVehicle:     cfg.APIURLVehicle,
			models.KindPakistanSim: cfg.APIURLPakSim,
			models.KindGST:         cfg.APIURLGST,
			models.KindPAN:         cfg.APIURLPAN,
		},
		logger: logger,
	}
}

// Execute runs one lookup: a single GET, no retry, no backoff. The raw input
// is normalized per kind before being appended to the base URL.
func (c *Client) Execute(kind models.Kind, rawInput string) models.Outcome {
	input := kind.Normalize(rawInput)
	url := c.baseURLs[kind] + input

	resp, err := c.httpClient.Get(url)
	if err != nil {
		c.logger.Warn("lookup request failed",
			zap.String("kind", string(kind)), zap.Error(err))
		return models.Outcome{Status: models.OutcomeTransport}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Outcome{Status: models.OutcomeUpstream, HTTPStatus: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Warn("lookup body read failed",
			zap.String("kind", string(kind)), zap.Error(err))
		return models.Outcome{Status: models.OutcomeTransport}
	}

	records, err := NormalizeRecords(body)
	if err != nil {
		return models.Outcome{Status: models.OutcomeMalformed}
	}
	if len(records) == 0 {
		return models.Outcome{Status: models.OutcomeEmpty}
	}
	return models.Outcome{Status: models.OutcomeSuccess, Records: records}
}

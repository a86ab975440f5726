package amazon

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/mkurbatov/amazon-search-cache/internal/domain"
	"github.com/mkurbatov/amazon-search-cache/internal/ports"
)

// Проверка, что Client удовлетворяет интерфейсу ProductSearcher.
var _ ports.ProductSearcher = (*Client)(nil)

const (
	searchPath   = "/paapi5/searchitems"
	amzTarget    = "com.amazon.paapi5.v1.ProductAdvertisingAPIv1.SearchItems"
	signService  = "ProductAdvertisingAPI"
	maxErrorBody = 1 << 20 // не читаем тело ошибки больше 1 МБ
)

// Config — параметры доступа к Product Advertising API 5.0.
type Config struct {
	AccessKey   string
	SecretKey   string
	PartnerTag  string
	Marketplace string // например "www.amazon.com"
	Region      string // регион подписи, например "us-east-1"
	Host        string // например "webservices.amazon.com"
	Endpoint    string // полный URL вместо https://Host (для тестов)
	Timeout     time.Duration
}

// Client — адаптер внешнего поиска поверх PA-API SearchItems.
// Запросы подписываются AWS SigV4 (требование API).
type Client struct {
	cfg    Config
	http   *http.Client
	signer *v4.Signer
	log    ports.Logger
}

// NewClient — конструктор адаптера.
func NewClient(cfg Config, log ports.Logger) *Client {
	if cfg.Marketplace == "" {
		cfg.Marketplace = "www.amazon.com"
	}
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}
	if cfg.Host == "" {
		cfg.Host = "webservices.amazon.com"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		signer: v4.NewSigner(),
		log:    log,
	}
}

// Запрашиваемые у PA-API разделы ответа.
var searchResources = []string{
	"ItemInfo.Title",
	"ItemInfo.ByLineInfo",
	"ItemInfo.ManufactureInfo",
	"Images.Primary.Large",
	"Offers.Listings.Price",
	"Offers.Listings.SavingBasis",
	"Offers.Listings.DeliveryInfo.IsPrimeEligible",
	"Offers.Listings.Availability.Message",
}

// Search — один вызов SearchItems; ретраев нет, один сбой — одна ошибка.
func (c *Client) Search(ctx context.Context, keywords string, itemCount int) ([]domain.Product, error) {
	payload, err := json.Marshal(searchRequest{
		Keywords:    keywords,
		ItemCount:   itemCount,
		PartnerTag:  c.cfg.PartnerTag,
		PartnerType: "Associates",
		Marketplace: c.cfg.Marketplace,
		Resources:   searchResources,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: encode request: %v", domain.ErrProviderUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", domain.ErrProviderUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Content-Encoding", "amz-1.0")
	req.Header.Set("X-Amz-Target", amzTarget)

	hash := sha256.Sum256(payload)
	creds := aws.Credentials{AccessKeyID: c.cfg.AccessKey, SecretAccessKey: c.cfg.SecretKey}
	if err := c.signer.SignHTTP(ctx, creds, req, hex.EncodeToString(hash[:]),
		signService, c.cfg.Region, time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("%w: sign request: %v", domain.ErrProviderUnavailable, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", domain.ErrProviderUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d: %s", domain.ErrProviderUnavailable, resp.StatusCode, apiErrorMessage(body))
	}

	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrProviderUnavailable, err)
	}
	if len(sr.SearchResult.Items) == 0 && len(sr.Errors) > 0 {
		return nil, fmt.Errorf("%w: %s: %s", domain.ErrProviderUnavailable, sr.Errors[0].Code, sr.Errors[0].Message)
	}

	return mapItems(ctx, c.log, sr.SearchResult.Items), nil
}

func (c *Client) endpoint() string {
	if c.cfg.Endpoint != "" {
		return c.cfg.Endpoint
	}
	return "https://" + c.cfg.Host + searchPath
}

// apiErrorMessage — достаёт код/сообщение из тела ошибки PA-API.
func apiErrorMessage(body []byte) string {
	var er struct {
		Errors []apiError `json:"Errors"`
	}
	if err := json.Unmarshal(body, &er); err == nil && len(er.Errors) > 0 {
		return fmt.Sprintf("%s: %s", er.Errors[0].Code, er.Errors[0].Message)
	}
	return "unrecognized error payload"
}

// Package notify implementa el envío de recordatorios de cita vía un gateway de SMS.
package notify

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mazvaris/optiapp/internal/application/usecase"
	"github.com/mazvaris/optiapp/pkg/config"
	"github.com/mazvaris/optiapp/pkg/logger"
)

var _ usecase.ReminderSender = (*SMSClient)(nil)

// SMSClient implementación de ReminderSender sobre un gateway HTTP de SMS.
// Con BaseURL vacío opera en modo simulado: loguea el mensaje sin enviarlo.
type SMSClient struct {
	httpClient *resty.Client
	senderID   string
	simulated  bool
	log        *logger.Logger
}

// NewSMSClient construye el cliente con la configuración del gateway.
func NewSMSClient(cfg config.NotifyConfig, log *logger.Logger) *SMSClient {
	if cfg.BaseURL == "" {
		return &SMSClient{simulated: true, senderID: cfg.SenderID, log: log}
	}

	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.APIKey)).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &SMSClient{httpClient: restyClient, senderID: cfg.SenderID, log: log}
}

// apiError payload de error del gateway.
type apiError struct {
	Error struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// Send envía un SMS al teléfono indicado. En modo simulado solo lo registra en el log.
func (c *SMSClient) Send(ctx context.Context, phone, message string) error {
	if c.simulated {
		c.log.Info().Str("phone", phone).Str("message", message).Msg("sms simulado (gateway no configurado)")
		return nil
	}

	payload := map[string]any{
		"from": c.senderID,
		"to":   phone,
		"body": message,
	}
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		SetError(apiErr).
		Post("/messages")
	if err != nil {
		return fmt.Errorf("send sms: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		code := resp.StatusCode()
		message := ""
		if apiErr != nil {
			message = apiErr.Error.Message
			if apiErr.Error.Code != 0 {
				code = apiErr.Error.Code
			}
		}
		return fmt.Errorf("sms gateway error: code=%d, message=%s", code, message)
	}
	return nil
}

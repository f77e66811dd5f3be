package mail

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"slices"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/shipdesk/shipdesk/internal/config"
)

type gmailSystem struct {
	svc     *gmail.Service
	mailbox string
	maxPoll int64
	logger  *slog.Logger
}

// NewGmail creates a mail system backed by the Gmail API, authenticating
// with the OAuth client credentials and cached user token named in cfg.
func NewGmail(ctx context.Context, cfg *config.MailConfig, logger *slog.Logger) (System, error) {
	client, err := oauthClient(ctx, cfg)
	if err != nil {
		return nil, err
	}

	svc, err := gmail.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("create gmail service: %w", err)
	}

	return &gmailSystem{
		svc:     svc,
		mailbox: cfg.Mailbox,
		maxPoll: int64(cfg.MaxPerPoll),
		logger:  logger.With("system", "mail"),
	}, nil
}

func oauthClient(ctx context.Context, cfg *config.MailConfig) (*http.Client, error) {
	credentials, err := os.ReadFile(cfg.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}

	oauthCfg, err := google.ConfigFromJSON(credentials, gmail.GmailModifyScope)
	if err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}

	tokenData, err := os.ReadFile(cfg.TokenFile)
	if err != nil {
		return nil, fmt.Errorf("read token: %w", err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(tokenData, &token); err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	return oauthCfg.Client(ctx, &token), nil
}

func (g *gmailSystem) Poll(ctx context.Context) ([]Message, error) {
	listed, err := g.svc.Users.Messages.
		List(g.mailbox).
		LabelIds("INBOX", "UNREAD").
		MaxResults(g.maxPoll).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	messages := make([]Message, 0, len(listed.Messages))
	for _, ref := range listed.Messages {
		msg, err := g.fetch(ctx, ref.Id)
		if err != nil {
			g.logger.Warn("skipping unreadable message", "id", ref.Id, "error", err)
			continue
		}
		messages = append(messages, *msg)
	}

	// list responses are newest-first; process in arrival order
	slices.Reverse(messages)

	return messages, nil
}

func (g *gmailSystem) fetch(ctx context.Context, id string) (*Message, error) {
	full, err := g.svc.Users.Messages.
		Get(g.mailbox, id).
		Format("full").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("get message %s: %w", id, err)
	}

	msg := &Message{ID: id}
	for _, header := range full.Payload.Headers {
		switch header.Name {
		case "From":
			msg.Sender = header.Value
		case "Subject":
			msg.Subject = header.Value
		}
	}

	msg.Body = extractBody(full.Payload)
	msg.Attachments = g.collectAttachments(ctx, id, full.Payload)

	return msg, nil
}

// extractBody walks the MIME tree for the first text/plain part, falling
// back to the payload's own body data.
func extractBody(part *gmail.MessagePart) string {
	if part == nil {
		return ""
	}

	if part.MimeType == "text/plain" && part.Body != nil && part.Body.Data != "" {
		return decodeBody(part.Body.Data)
	}

	for _, child := range part.Parts {
		if body := extractBody(child); body != "" {
			return body
		}
	}

	if part.Body != nil && part.Body.Data != "" {
		return decodeBody(part.Body.Data)
	}

	return ""
}

func decodeBody(data string) string {
	decoded, err := base64.URLEncoding.DecodeString(data)
	if err != nil {
		decoded, err = base64.RawURLEncoding.DecodeString(data)
		if err != nil {
			return ""
		}
	}
	return string(decoded)
}

func (g *gmailSystem) collectAttachments(ctx context.Context, msgID string, part *gmail.MessagePart) []Attachment {
	if part == nil {
		return nil
	}

	var attachments []Attachment

	if part.Filename != "" && part.Body != nil && part.Body.AttachmentId != "" {
		att, err := g.svc.Users.Messages.Attachments.
			Get(g.mailbox, msgID, part.Body.AttachmentId).
			Context(ctx).
			Do()
		if err != nil {
			g.logger.Warn("attachment download failed",
				"message", msgID,
				"filename", part.Filename,
				"error", err,
			)
		} else if data, err := base64.URLEncoding.DecodeString(att.Data); err == nil {
			attachments = append(attachments, Attachment{Filename: part.Filename, Data: data})
		} else if data, err := base64.RawURLEncoding.DecodeString(att.Data); err == nil {
			attachments = append(attachments, Attachment{Filename: part.Filename, Data: data})
		}
	}

	for _, child := range part.Parts {
		attachments = append(attachments, g.collectAttachments(ctx, msgID, child)...)
	}

	return attachments
}

func (g *gmailSystem) MarkProcessed(ctx context.Context, id string) error {
	_, err := g.svc.Users.Messages.
		Modify(g.mailbox, id, &gmail.ModifyMessageRequest{
			RemoveLabelIds: []string{"UNREAD"},
		}).
		Context(ctx).
		Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("mark processed %s: %w", id, err)
	}
	return nil
}

func (g *gmailSystem) Send(ctx context.Context, to, subject, body string) error {
	var raw strings.Builder
	raw.WriteString("To: " + to + "\r\n")
	raw.WriteString("Subject: " + subject + "\r\n")
	raw.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	raw.WriteString("\r\n")
	raw.WriteString(body)

	message := &gmail.Message{
		Raw: base64.RawURLEncoding.EncodeToString([]byte(raw.String())),
	}

	if _, err := g.svc.Users.Messages.Send(g.mailbox, message).Context(ctx).Do(); err != nil {
		return fmt.Errorf("%w: to %s: %v", ErrSendFailed, to, err)
	}

	g.logger.Info("message sent", "to", to, "subject", subject)
	return nil
}

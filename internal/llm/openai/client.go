package openai

import (
	"context"
	"time"

	"github.com/google/uuid"
	goopenai "github.com/sashabaranov/go-openai"

	"github.com/joseph-ayodele/document-sorter/internal/common"
	"github.com/joseph-ayodele/document-sorter/internal/llm"
)

var _ llm.FieldExtractor = (*Client)(nil)

// ExtractFields implements llm.FieldExtractor with one chat completion per
// document and no retries. Only transport and API errors are returned; a
// reply that does not parse is logged and degraded to the default record.
func (c *Client) ExtractFields(ctx context.Context, req llm.ExtractRequest) (llm.Extraction, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Info("llm.extract.start",
		"req_id", rid,
		"run_id", common.RunIDFromContext(ctx),
		"path", req.FilePath,
		"model", c.cfg.Model,
		"text_len", len(req.Text),
	)

	resp, err := c.api.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:       c.cfg.Model,
		Temperature: c.cfg.Temperature,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleUser, Content: llm.BuildPrompt(req.Text)},
		},
	})
	if err != nil {
		c.logger.Error("llm.extract.http_error",
			"req_id", rid, "path", req.FilePath, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.Extraction{}, common.Wrapf(common.ErrCompletion, err, "chat completion for %s", req.FilePath)
	}

	reply := ""
	if len(resp.Choices) > 0 {
		reply = resp.Choices[0].Message.Content
	} else {
		c.logger.Warn("llm.extract.no_choices", "req_id", rid, "path", req.FilePath)
	}

	out, perr := llm.ParseReply(reply)
	if perr != nil {
		c.logger.Warn("llm.extract.parse_failed",
			"req_id", rid,
			"path", req.FilePath,
			"error", perr,
			"text", req.Text,
			"reply", reply,
		)
	}

	c.logger.Info("llm.extract.ok",
		"req_id", rid,
		"path", req.FilePath,
		"origin", out.Origin,
		"type", out.Type,
		"author", out.Author,
		"date", out.Date,
		"amount", out.Amount.String(),
		"symbol", out.Symbol,
		"tokens", resp.Usage.TotalTokens,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

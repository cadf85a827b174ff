package boleto

import (
	"context"
	"time"

	"encore.dev/rlog"

	"encore.app/boletos/model"
)

// Extract asks the AI collaborator for a structured suggestion from free
// boleto text. Extraction failure degrades to no suggestion: manual entry is
// never blocked.
func (b *business) Extract(ctx context.Context, text string) (*model.ExtractedInfo, error) {
	if b.extractor == nil {
		return nil, nil
	}

	info, err := b.extractor.Extract(ctx, text)
	if err != nil {
		rlog.Warn("boleto extraction failed", "error", err)
		return nil, nil
	}
	if info == nil {
		return nil, nil
	}

	if _, err := time.Parse(model.DueDateLayout, info.DueDate); err != nil {
		rlog.Warn("extraction returned invalid due date", "due_date", info.DueDate)
		return nil, nil
	}

	if !model.ValidCategory(info.Category) {
		info.Category = model.DefaultCategory
	}

	return info, nil
}

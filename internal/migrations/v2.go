package migrations

import (
	"context"
	"fmt"
)

func init() {
	Register(&V2Migration{})
}

// V2Migration adds typed checklist items (check, yes_no, number) with their
// completion values, and purchase links on both catalogs.
type V2Migration struct{}

func (m *V2Migration) Version() int {
	return 2
}

func (m *V2Migration) Apply(ctx context.Context, db DBExecutor) error {
	queries := []string{
		`ALTER TABLE checklist_items
			ADD COLUMN IF NOT EXISTS item_type VARCHAR(32) NOT NULL DEFAULT 'check'`,
		`ALTER TABLE checklist_items
			ADD COLUMN IF NOT EXISTS expected_number INTEGER`,
		`ALTER TABLE checklist_items
			ADD COLUMN IF NOT EXISTS purchase_link TEXT`,
		`ALTER TABLE checklist_completions
			ADD COLUMN IF NOT EXISTS value_number INTEGER`,
		`ALTER TABLE checklist_completions
			ADD COLUMN IF NOT EXISTS value_bool BOOLEAN`,
		`ALTER TABLE supplies
			ADD COLUMN IF NOT EXISTS purchase_link TEXT`,
	}

	for _, query := range queries {
		if _, err := db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute v2 statement: %w", err)
		}
	}
	return nil
}

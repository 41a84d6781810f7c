package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/seifeddinerezgui/gethrought/internal/model"
)

// TableNames returns the table of every migrated model, in migration order.
func (d *DBinstanceStruct) TableNames() ([]string, error) {
	names := make([]string, 0, len(model.MigrateAble))
	for _, m := range model.MigrateAble {
		stmt := &gorm.Statement{DB: d.DB}
		if err := stmt.Parse(m); err != nil {
			return nil, fmt.Errorf("failed to parse model %T: %w", m, err)
		}
		names = append(names, stmt.Schema.Table)
	}
	return names, nil
}

// DropTables drops every application table.
func (d *DBinstanceStruct) DropTables(ctx context.Context) error {
	names, err := d.TableNames()
	if err != nil {
		return err
	}
	for i := len(names) - 1; i >= 0; i-- {
		sql := fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", pq.QuoteIdentifier(names[i]))
		if err := d.WithContext(ctx).Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to drop %s: %w", names[i], err)
		}
	}
	return nil
}

// TruncateTables empties every application table and restarts identities.
func (d *DBinstanceStruct) TruncateTables(ctx context.Context) error {
	names, err := d.TableNames()
	if err != nil {
		return err
	}
	quoted := make([]string, 0, len(names))
	for _, name := range names {
		quoted = append(quoted, pq.QuoteIdentifier(name))
	}
	sql := fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", strings.Join(quoted, ", "))
	return d.WithContext(ctx).Exec(sql).Error
}

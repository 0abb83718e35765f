package database

import (
	"context"
	"database/sql"
	"errors"
)

// GetSetting returns the stored value for key. The bool is false when the
// key is missing, NULL or unreadable.
func (d *Database) GetSetting(ctx context.Context, key string) (string, bool) {
	value, err := d.LookupSetting(ctx, key)
	if err != nil {
		return "", false
	}
	return value, true
}

// LookupSetting is GetSetting with the reason for a miss.
func (d *Database) LookupSetting(ctx context.Context, key string) (string, error) {
	var value sql.NullString
	err := d.DB.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && !value.Valid) {
		return "", wrapSettingErr("get", key, ErrSettingNotFound)
	}
	if err != nil {
		return "", wrapSettingErr("get", key, err)
	}
	return value.String, nil
}

func (d *Database) SetSetting(ctx context.Context, key, value string) error {
	_, err := d.DB.ExecContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value", key, value)
	return wrapSettingErr("set", key, err)
}

// SetSettings writes all pairs in one transaction.
func (d *Database) SetSettings(ctx context.Context, values map[string]string) error {
	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return wrapSettingErr("begin", "", err)
	}
	for key, value := range values {
		if _, err := tx.ExecContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value", key, value); err != nil {
			_ = tx.Rollback()
			return wrapSettingErr("set", key, err)
		}
	}
	return wrapSettingErr("commit", "", tx.Commit())
}

func (d *Database) DeleteSetting(ctx context.Context, key string) error {
	_, err := d.DB.ExecContext(ctx, "DELETE FROM settings WHERE key = ?", key)
	return wrapSettingErr("delete", key, err)
}

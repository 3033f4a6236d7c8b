package store

import (
	"database/sql"
	"encoding/json"

	"github.com/bookly/bookly/model"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func (s *Store) GetSystemSetting(name string) (*model.SystemSetting, error) {
	if cache, ok := s.SystemSettingCache.Load(name); ok {
		return cache.(*model.SystemSetting), nil
	}

	setting := &model.SystemSetting{}
	stmt := `SELECT name, value, description FROM system_setting WHERE name = ?`
	if err := s.db.QueryRow(stmt, name).Scan(&setting.Name, &setting.Value, &setting.Description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, errors.Wrap(err, "failed to get system setting")
	}

	s.SystemSettingCache.Store(setting.Name, setting)
	return setting, nil
}

func (s *Store) GetSystemGeneralSetting() (*model.SystemSettingGeneral, error) {
	systemSetting, err := s.GetSystemSetting(model.SettingTypeGeneral)
	if err != nil {
		return nil, err
	}
	return systemSetting.GetGeneral()
}

// GetOrUpsetSystemSecuritySetting returns the security setting, creating
// it with a fresh JWT secret on first call.
func (s *Store) GetOrUpsetSystemSecuritySetting() (*model.SystemSettingSecurity, error) {
	systemSetting, err := s.GetSystemSetting(model.SettingTypeSecurity)
	if err == nil {
		return systemSetting.GetSecurity()
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	security := &model.SystemSettingSecurity{JWTSecret: uuid.NewString()}
	setting := &model.SystemSetting{
		Name:        model.SettingTypeSecurity,
		Value:       security.ToJSON(),
		Description: "Security settings, generated at first start",
	}
	if _, err := s.UpsetSystemSetting(setting); err != nil {
		return nil, errors.Wrap(err, "failed to create security setting")
	}
	return security, nil
}

func (s *Store) UpsetSystemSetting(setting *model.SystemSetting) (*model.SystemSetting, error) {
	switch setting.Name {
	case model.SettingTypeGeneral:
		general, err := setting.GetGeneral()
		if err != nil {
			return nil, errors.Wrap(err, "invalid general setting value")
		}
		b, _ := json.Marshal(general)
		setting.Value = string(b)
	case model.SettingTypeSecurity:
		security, err := setting.GetSecurity()
		if err != nil {
			return nil, errors.Wrap(err, "invalid security setting value")
		}
		b, _ := json.Marshal(security)
		setting.Value = string(b)
	default:
		return nil, errors.Errorf("unsupported system setting key: %v", setting.Name)
	}

	stmt := `
		INSERT INTO system_setting (name, value, description)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE
		SET value = EXCLUDED.value, description = EXCLUDED.description
	`
	if _, err := s.db.Exec(stmt, setting.Name, setting.Value, setting.Description); err != nil {
		return nil, errors.Wrap(err, "failed to upset system setting")
	}

	s.SystemSettingCache.Store(setting.Name, setting)
	return setting, nil
}

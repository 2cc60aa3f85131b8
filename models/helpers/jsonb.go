package helpers

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// JSONB serbest şekilli JSON içerik için jsonb sütun tipi.
// Bölüm içerikleri (string, obje veya liste olabilir) bu tiple saklanır.
type JSONB json.RawMessage

// Value GORM'un sütuna yazacağı değeri üretir.
func (j JSONB) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return string(j), nil
}

// Scan veritabanından okunan değeri JSONB'ye çevirir.
func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		*j = append((*j)[0:0], v...)
	case string:
		*j = JSONB(v)
	default:
		return fmt.Errorf("JSONB.Scan: desteklenmeyen tip %T", value)
	}
	return nil
}

// MarshalJSON ham JSON içeriğini olduğu gibi döndürür.
func (j JSONB) MarshalJSON() ([]byte, error) {
	if len(j) == 0 {
		return []byte("null"), nil
	}
	return j, nil
}

// UnmarshalJSON ham JSON içeriğini olduğu gibi saklar.
func (j *JSONB) UnmarshalJSON(data []byte) error {
	if j == nil {
		return errors.New("JSONB.UnmarshalJSON: nil receiver")
	}
	*j = append((*j)[0:0], data...)
	return nil
}

// StringArray jsonb olarak saklanan string listesi (örn. content_order sütunu).
type StringArray []string

// Value GORM'un sütuna yazacağı değeri üretir.
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	b, err := json.Marshal([]string(a))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan veritabanından okunan değeri StringArray'e çevirir.
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("StringArray.Scan: desteklenmeyen tip %T", value)
	}
	return json.Unmarshal(raw, (*[]string)(a))
}

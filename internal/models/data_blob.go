package models

import (
	"time"
)

// DataBlob represents the data_blobs table: one row per named collection,
// holding the serialized record list. The resident registry lives in a
// single row keyed by the historical storage key.
type DataBlob struct {
	Key       string    `json:"key" gorm:"column:key;primarykey"`
	Value     string    `json:"value" gorm:"column:value;type:text"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the insert table name for DataBlob
func (DataBlob) TableName() string {
	return "data_blobs"
}

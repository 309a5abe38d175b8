package models

import "time"

// BaseModel carries the identity and audit timestamps shared by the
// registration entities.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"column:data_cadastro" json:"data_cadastro"`
	UpdatedAt time.Time `gorm:"column:data_atualizacao" json:"data_atualizacao"`
}

type PaginationQuery struct {
	Page     int `form:"page" json:"page"`
	PageSize int `form:"page_size" json:"page_size"`
}

type PaginationResult struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
}

// NewPaginationResult builds a pagination result block
func NewPaginationResult(total int64, page, pageSize int) PaginationResult {
	return PaginationResult{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
}

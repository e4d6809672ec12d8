// Package pagination 负责分页参数的解析、夹取与元信息计算。
package pagination

import (
	"math"
	"strconv"
	"strings"
)

// Bounds 描述一类列表的默认每页条数与上限。
type Bounds struct {
	DefaultLimit int
	MaxLimit     int
}

var (
	Jobs         = Bounds{DefaultLimit: 10, MaxLimit: 50}
	Applications = Bounds{DefaultLimit: 20, MaxLimit: 100}
)

// Params 是夹取后的分页参数，Page >= 1，1 <= Limit <= MaxLimit，
// 且 (Page-1)*Limit 不会溢出 int。
type Params struct {
	Page  int
	Limit int
}

// Offset 返回跳过的记录数。
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Clamp 把任意整数夹取到合法区间，越界不报错。
func (b Bounds) Clamp(page, limit int) Params {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	if limit > b.MaxLimit {
		limit = b.MaxLimit
	}
	// 超大页码压到 offset 不溢出的最大值，仍然落在最后一页之后。
	if maxPage := math.MaxInt / limit; page > maxPage {
		page = maxPage
	}
	return Params{Page: page, Limit: limit}
}

// Parse 解析查询字符串中的 page/limit，无法解析时使用默认值。
func (b Bounds) Parse(rawPage, rawLimit string) Params {
	page, err := strconv.Atoi(strings.TrimSpace(rawPage))
	if err != nil {
		page = 1
	}
	limit, err := strconv.Atoi(strings.TrimSpace(rawLimit))
	if err != nil {
		limit = b.DefaultLimit
	}
	return b.Clamp(page, limit)
}

// Meta 是响应中的 pagination 块。
type Meta struct {
	Total       int64 `json:"total"`
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// NewMeta 根据总数计算分页元信息，totalPages = ceil(total / limit)。
func NewMeta(p Params, total int64) Meta {
	totalPages := 0
	if p.Limit > 0 {
		totalPages = int((total + int64(p.Limit) - 1) / int64(p.Limit))
	}
	return Meta{
		Total:       total,
		Page:        p.Page,
		Limit:       p.Limit,
		TotalPages:  totalPages,
		HasNextPage: p.Page < totalPages,
		HasPrevPage: p.Page > 1,
	}
}

package store

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultJobSort 是职位列表的默认排序：最新创建的在前。
const DefaultJobSort = "-createdAt"

// sortableColumns 把对外的排序键映射到列名，未列出的键会被忽略。
var sortableColumns = map[string]string{
	"createdAt":  "created_at",
	"updatedAt":  "updated_at",
	"title":      "title",
	"company":    "company",
	"location":   "location",
	"category":   "category",
	"type":       "type",
	"salary.min": "salary_min",
	"salary.max": "salary_max",
}

// parseSort 解析 "-createdAt title" 或 "-createdAt,title" 形式的排序参数。
// 前缀 "-" 表示降序，"+" 或无前缀表示升序；结果末尾追加 id 以保证分页稳定。
func parseSort(raw string) []clause.OrderByColumn {
	fields := strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ' ' })

	cols := make([]clause.OrderByColumn, 0, len(fields)+1)
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		desc := false
		switch {
		case strings.HasPrefix(f, "-"):
			desc = true
			f = f[1:]
		case strings.HasPrefix(f, "+"):
			f = f[1:]
		}
		col, ok := sortableColumns[f]
		if !ok {
			continue
		}
		if _, dup := seen[col]; dup {
			continue
		}
		seen[col] = struct{}{}
		cols = append(cols, clause.OrderByColumn{Column: clause.Column{Name: col}, Desc: desc})
	}

	if len(cols) == 0 {
		cols = append(cols, clause.OrderByColumn{Column: clause.Column{Name: "created_at"}, Desc: true})
	}
	return append(cols, clause.OrderByColumn{Column: clause.Column{Name: "id"}})
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern 返回大小写不敏感的子串匹配模式，输入中的通配符按字面处理。
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}

// containsClause 生成 LOWER(col) LIKE ? 条件，SQLite 与 PostgreSQL 均可使用。
func containsClause(column string) string {
	return "LOWER(" + column + `) LIKE ? ESCAPE '\'`
}

// whereContains 在 term 非空时追加单列的子串过滤。
func whereContains(q *gorm.DB, column, term string) *gorm.DB {
	term = strings.TrimSpace(term)
	if term == "" {
		return q
	}
	return q.Where(containsClause(column), containsPattern(term))
}

// whereSearchAny 在 term 非空时追加多列之间 OR 的子串过滤。
func whereSearchAny(q *gorm.DB, term string, columns ...string) *gorm.DB {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return q
	}
	conds := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns))
	pattern := containsPattern(term)
	for _, col := range columns {
		conds = append(conds, containsClause(col))
		args = append(args, pattern)
	}
	return q.Where("("+strings.Join(conds, " OR ")+")", args...)
}

// validID 判断 id 是否为合法 UUID；非法 id 一律按不存在处理。
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

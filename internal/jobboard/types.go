package jobboard

import "strings"

// Categories 是职位分类的封闭集合，前后端共用同一份列表。
var Categories = []string{
	"Engineering",
	"Design",
	"Marketing",
	"Sales",
	"Finance",
	"Human Resources",
	"Product",
	"Operations",
	"Customer Support",
	"Legal",
	"Data",
	"Other",
}

// JobTypes 是职位类型的封闭集合。
var JobTypes = []string{
	"Full-time",
	"Part-time",
	"Contract",
	"Freelance",
	"Internship",
	"Remote",
}

// 申请状态，四个值之间可以任意切换。
const (
	StatusPending     = "Pending"
	StatusReviewed    = "Reviewed"
	StatusShortlisted = "Shortlisted"
	StatusRejected    = "Rejected"
)

// Statuses 按展示顺序列出全部申请状态。
var Statuses = []string{StatusPending, StatusReviewed, StatusShortlisted, StatusRejected}

const (
	DefaultJobType  = "Full-time"
	DefaultCurrency = "USD"
)

func IsCategory(v string) bool { return contains(Categories, v) }
func IsJobType(v string) bool  { return contains(JobTypes, v) }
func IsStatus(v string) bool   { return contains(Statuses, v) }

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// NormalizeEmail 去掉首尾空白并转为小写。
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

package jobboard

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number 保留客户端提交的原始 JSON 值，数值性校验交给 ValidateJob，
// 这样 "abc" 这类输入会得到字段级错误而不是整体解析失败。
type Number struct {
	raw json.RawMessage
}

// NumberOf 把已存储的数值包装成 Number，nil 表示未设置。
func NumberOf(f *float64) Number {
	if f == nil {
		return Number{}
	}
	return Number{raw: json.RawMessage(strconv.FormatFloat(*f, 'f', -1, 64))}
}

func (n *Number) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		n.raw = nil
		return nil
	}
	n.raw = append(json.RawMessage(nil), trimmed...)
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	f, ok := n.Float()
	if !ok {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

// IsSet 判断是否提交了非 null 的值。
func (n Number) IsSet() bool { return len(n.raw) > 0 }

// Float 解析为 float64，接受 JSON 数字和数字字符串。
func (n Number) Float() (float64, bool) {
	if !n.IsSet() {
		return 0, false
	}
	text := string(n.raw)
	if n.raw[0] == '"' {
		var s string
		if err := json.Unmarshal(n.raw, &s); err != nil {
			return 0, false
		}
		text = strings.TrimSpace(s)
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Ptr 返回数值指针，未设置或非数值时为 nil。
func (n Number) Ptr() *float64 {
	f, ok := n.Float()
	if !ok {
		return nil
	}
	return &f
}

// SalaryInput 是请求体中的 salary 对象。
type SalaryInput struct {
	Min      Number  `json:"min"`
	Max      Number  `json:"max"`
	Currency *string `json:"currency"`
}

// JobInput 是创建/更新职位的请求体，缺省字段为 nil。
type JobInput struct {
	Title        *string      `json:"title"`
	Company      *string      `json:"company"`
	Location     *string      `json:"location"`
	Category     *string      `json:"category"`
	Type         *string      `json:"type"`
	Description  *string      `json:"description"`
	Requirements *string      `json:"requirements"`
	Salary       *SalaryInput `json:"salary"`
	CompanyLogo  *string      `json:"companyLogo"`
	IsActive     *bool        `json:"isActive"`
}

// SalaryDraft 是待校验的薪资结构。
type SalaryDraft struct {
	Min      Number
	Max      Number
	Currency string
}

// JobDraft 是合并后、写入前的职位字段集合。
type JobDraft struct {
	Title        string
	Company      string
	Location     string
	Category     string
	Type         string
	Description  string
	Requirements string
	Salary       SalaryDraft
	CompanyLogo  *string
	IsActive     bool
}

// NewJobDraft 返回创建职位时的初始草稿。
func NewJobDraft() JobDraft {
	return JobDraft{
		Salary:   SalaryDraft{Currency: DefaultCurrency},
		IsActive: true,
	}
}

// ApplyTo 把请求中出现的字段覆盖到草稿上，未出现的字段保持不变。
func (in JobInput) ApplyTo(d JobDraft) JobDraft {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	set(&d.Title, in.Title)
	set(&d.Company, in.Company)
	set(&d.Location, in.Location)
	set(&d.Category, in.Category)
	set(&d.Type, in.Type)
	set(&d.Description, in.Description)
	set(&d.Requirements, in.Requirements)

	if in.Salary != nil {
		d.Salary.Min = in.Salary.Min
		d.Salary.Max = in.Salary.Max
		if in.Salary.Currency != nil && strings.TrimSpace(*in.Salary.Currency) != "" {
			d.Salary.Currency = strings.TrimSpace(*in.Salary.Currency)
		}
	}
	if d.Salary.Currency == "" {
		d.Salary.Currency = DefaultCurrency
	}

	if in.CompanyLogo != nil {
		logo := strings.TrimSpace(*in.CompanyLogo)
		if logo == "" {
			d.CompanyLogo = nil
		} else {
			d.CompanyLogo = &logo
		}
	}
	if in.IsActive != nil {
		d.IsActive = *in.IsActive
	}
	return d
}

// ApplicationInput 是提交申请的请求体。
type ApplicationInput struct {
	JobID      string `json:"jobId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	ResumeLink string `json:"resumeLink"`
	CoverNote  string `json:"coverNote"`
}

// Normalize 去除首尾空白并把邮箱转为小写。
func (in ApplicationInput) Normalize() ApplicationInput {
	return ApplicationInput{
		JobID:      strings.TrimSpace(in.JobID),
		Name:       strings.TrimSpace(in.Name),
		Email:      NormalizeEmail(in.Email),
		ResumeLink: strings.TrimSpace(in.ResumeLink),
		CoverNote:  strings.TrimSpace(in.CoverNote),
	}
}

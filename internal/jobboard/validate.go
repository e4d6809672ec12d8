package jobboard

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const (
	maxTitleLen       = 100
	maxCompanyLen     = 100
	minDescriptionLen = 20
	maxNameLen        = 100
	minCoverNoteLen   = 10
	maxCoverNoteLen   = 2000
)

var validate = validator.New()

// ValidateJob 检查职位草稿，返回全部未通过的规则。
// 每个字段为空时只报告必填错误，其余字段照常检查。
func ValidateJob(d JobDraft) error {
	var errs fieldErrors

	switch {
	case d.Title == "":
		errs.add("title", "Job title is required")
	case utf8.RuneCountInString(d.Title) > maxTitleLen:
		errs.add("title", "Title cannot exceed 100 characters")
	}

	switch {
	case d.Company == "":
		errs.add("company", "Company name is required")
	case utf8.RuneCountInString(d.Company) > maxCompanyLen:
		errs.add("company", "Company name cannot exceed 100 characters")
	}

	if d.Location == "" {
		errs.add("location", "Location is required")
	}

	switch {
	case d.Category == "":
		errs.add("category", "Category is required")
	case !IsCategory(d.Category):
		errs.add("category", "Invalid category selected")
	}

	switch {
	case d.Type == "":
		errs.add("type", "Job type is required")
	case !IsJobType(d.Type):
		errs.add("type", "Invalid job type selected")
	}

	switch {
	case d.Description == "":
		errs.add("description", "Job description is required")
	case utf8.RuneCountInString(d.Description) < minDescriptionLen:
		errs.add("description", "Description must be at least 20 characters")
	}

	if d.Salary.Min.IsSet() {
		if _, ok := d.Salary.Min.Float(); !ok {
			errs.add("salary.min", "Minimum salary must be a number")
		}
	}
	if d.Salary.Max.IsSet() {
		if _, ok := d.Salary.Max.Float(); !ok {
			errs.add("salary.max", "Maximum salary must be a number")
		}
	}

	if d.CompanyLogo != nil && !isLooseURL(*d.CompanyLogo) {
		errs.add("companyLogo", "Company logo must be a valid URL")
	}

	return errs.err()
}

// ValidateApplication 检查已 Normalize 的申请请求体。
func ValidateApplication(in ApplicationInput) error {
	var errs fieldErrors

	switch {
	case in.Name == "":
		errs.add("name", "Your name is required")
	case utf8.RuneCountInString(in.Name) > maxNameLen:
		errs.add("name", "Name cannot exceed 100 characters")
	}

	switch {
	case in.Email == "":
		errs.add("email", "Email address is required")
	case validate.Var(in.Email, "email") != nil:
		errs.add("email", "Please provide a valid email address")
	}

	switch {
	case in.ResumeLink == "":
		errs.add("resumeLink", "Resume link is required")
	case !isHTTPURL(in.ResumeLink):
		errs.add("resumeLink", "Resume link must be a valid URL (must start with http:// or https://)")
	}

	n := utf8.RuneCountInString(in.CoverNote)
	switch {
	case in.CoverNote == "":
		errs.add("coverNote", "Cover note is required")
	case n < minCoverNoteLen:
		errs.add("coverNote", "Cover note must be at least 10 characters")
	case n > maxCoverNoteLen:
		errs.add("coverNote", "Cover note cannot exceed 2000 characters")
	}

	return errs.err()
}

// ValidateStatus 检查申请状态是否属于四个合法值之一。
func ValidateStatus(status string) error {
	if IsStatus(status) {
		return nil
	}
	var errs fieldErrors
	errs.add("status", StatusMessage())
	return errs.err()
}

// StatusMessage 返回列出全部合法状态的提示文案。
func StatusMessage() string {
	return fmt.Sprintf("Status must be one of: %s", strings.Join(Statuses, ", "))
}

func isHTTPURL(v string) bool {
	lower := strings.ToLower(v)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return false
	}
	return validate.Var(v, "url") == nil
}

// isLooseURL 允许省略协议头，例如 cdn.example.com/logo.png。
func isLooseURL(v string) bool {
	if !strings.Contains(v, "://") {
		host := v
		if i := strings.IndexAny(host, "/?#"); i >= 0 {
			host = host[:i]
		}
		if !strings.Contains(host, ".") {
			return false
		}
		v = "http://" + v
	}
	if strings.ContainsAny(v, " \t\n") {
		return false
	}
	return validate.Var(v, "url") == nil
}

package database

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Salary 以内嵌列的形式存储在 jobs 表中。
type Salary struct {
	Min      *float64 `json:"min"`
	Max      *float64 `json:"max"`
	Currency string   `gorm:"type:text;default:USD" json:"currency"`
}

// Job 表示一条职位发布。
type Job struct {
	ID           string    `gorm:"primaryKey;size:36" json:"_id"`
	Title        string    `gorm:"size:100;not null" json:"title"`
	Company      string    `gorm:"size:100;not null" json:"company"`
	Location     string    `gorm:"type:text;not null" json:"location"`
	Category     string    `gorm:"size:32;not null;index:idx_jobs_filters" json:"category"`
	Type         string    `gorm:"size:32;not null;index:idx_jobs_filters" json:"type"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	Requirements string    `gorm:"type:text" json:"requirements,omitempty"`
	Salary       Salary    `gorm:"embedded;embeddedPrefix:salary_" json:"salary"`
	CompanyLogo  *string   `gorm:"type:text" json:"companyLogo"`
	IsActive     bool      `gorm:"not null;index" json:"isActive"`
	CreatedAt    time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// BeforeCreate 为新记录生成 ID。
func (j *Job) BeforeCreate(_ *gorm.DB) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	return nil
}

// Application 表示求职者对某个职位的一次投递。
// (job_id, email) 唯一，作为并发重复投递的最后防线。
type Application struct {
	ID         string    `gorm:"primaryKey;size:36" json:"_id"`
	JobID      string    `gorm:"size:36;not null;uniqueIndex:idx_applications_job_email" json:"job"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	Email      string    `gorm:"type:text;not null;uniqueIndex:idx_applications_job_email" json:"email"`
	ResumeLink string    `gorm:"type:text;not null" json:"resumeLink"`
	CoverNote  string    `gorm:"type:text;not null" json:"coverNote"`
	Status     string    `gorm:"size:16;not null;default:Pending;index" json:"status"`
	CreatedAt  time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// BeforeCreate 为新记录生成 ID。
func (a *Application) BeforeCreate(_ *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// Models 列出需要 AutoMigrate 的全部模型。
func Models() []any {
	return []any{&Job{}, &Application{}}
}

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"quickhire/internal/database"
	"quickhire/internal/jobboard"
	"quickhire/internal/pagination"
)

// ApplicationStore 负责投递的提交、查询与状态变更。
// 只通过 JobStore 检查职位是否存在及是否在架。
type ApplicationStore struct {
	db   *gorm.DB
	jobs *JobStore
}

// NewApplicationStore 构造 ApplicationStore。
func NewApplicationStore(db *gorm.DB, jobs *JobStore) *ApplicationStore {
	return &ApplicationStore{db: db, jobs: jobs}
}

// JobSummary 是读取时附加到投递上的职位信息，只包含请求所需的字段。
type JobSummary struct {
	ID       string `json:"_id,omitempty"`
	Title    string `json:"title,omitempty"`
	Company  string `json:"company,omitempty"`
	Location string `json:"location,omitempty"`
	Category string `json:"category,omitempty"`
	Type     string `json:"type,omitempty"`
}

// ApplicationView 是返回给调用方的投递记录。
type ApplicationView struct {
	ID         string     `json:"_id"`
	Job        JobSummary `json:"job"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	ResumeLink string     `json:"resumeLink"`
	CoverNote  string     `json:"coverNote"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// ApplicationFilter 是后台投递列表的查询条件。
type ApplicationFilter struct {
	JobID  string
	Status string
	Page   pagination.Params
}

// ApplicationPage 是一页投递及其分页信息。
type ApplicationPage struct {
	Applications []ApplicationView
	Meta         pagination.Meta
}

// JobApplications 是某个职位下的全部投递。
type JobApplications struct {
	Applications []ApplicationView
	Total        int64
	Job          JobSummary
}

// summaryFields 控制附加到投递上的职位字段。
type summaryFields uint8

const (
	withTitle summaryFields = 1 << iota
	withCompany
	withLocation
	withCategory
	withType
	withID

	submitSummary = withID | withTitle | withCompany | withLocation
	listSummary   = submitSummary | withCategory
	detailSummary = listSummary | withType
	statusSummary = withID | withTitle | withCompany
)

func summarize(job database.Job, fields summaryFields) JobSummary {
	var s JobSummary
	if fields&withID != 0 {
		s.ID = job.ID
	}
	if fields&withTitle != 0 {
		s.Title = job.Title
	}
	if fields&withCompany != 0 {
		s.Company = job.Company
	}
	if fields&withLocation != 0 {
		s.Location = job.Location
	}
	if fields&withCategory != 0 {
		s.Category = job.Category
	}
	if fields&withType != 0 {
		s.Type = job.Type
	}
	return s
}

// Submit 按顺序执行：职位存在 -> 职位在架 -> 未重复投递 -> 字段校验 -> 保存。
func (s *ApplicationStore) Submit(ctx context.Context, in jobboard.ApplicationInput) (ApplicationView, error) {
	in = in.Normalize()

	job, err := s.jobs.find(ctx, in.JobID)
	if err != nil {
		return ApplicationView{}, err
	}
	if !job.IsActive {
		return ApplicationView{}, jobboard.ErrJobInactive
	}

	var existing int64
	if err := s.db.WithContext(ctx).
		Model(&database.Application{}).
		Where("job_id = ? AND email = ?", job.ID, in.Email).
		Count(&existing).Error; err != nil {
		return ApplicationView{}, fmt.Errorf("check duplicate application: %w", err)
	}
	if existing > 0 {
		return ApplicationView{}, jobboard.ErrDuplicate
	}

	if err := jobboard.ValidateApplication(in); err != nil {
		return ApplicationView{}, err
	}

	app := database.Application{
		JobID:      job.ID,
		Name:       in.Name,
		Email:      in.Email,
		ResumeLink: in.ResumeLink,
		CoverNote:  in.CoverNote,
		Status:     jobboard.StatusPending,
	}
	if err := s.db.WithContext(ctx).Create(&app).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return ApplicationView{}, jobboard.ErrDuplicate
		}
		return ApplicationView{}, fmt.Errorf("create application: %w", err)
	}

	return viewOf(app, summarize(*job, submitSummary)), nil
}

// ListAll 返回投递列表，可按 jobId 与 status 精确过滤，按创建时间倒序。
func (s *ApplicationStore) ListAll(ctx context.Context, f ApplicationFilter) (ApplicationPage, error) {
	scope := func(gctx context.Context) *gorm.DB {
		q := s.db.WithContext(gctx).Model(&database.Application{})
		if f.JobID != "" {
			q = q.Where("job_id = ?", f.JobID)
		}
		if f.Status != "" {
			q = q.Where("status = ?", f.Status)
		}
		return q
	}

	var (
		apps  []database.Application
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return scope(gctx).
			Order("created_at DESC").
			Order("id").
			Offset(f.Page.Offset()).
			Limit(f.Page.Limit).
			Find(&apps).Error
	})
	g.Go(func() error {
		return scope(gctx).Count(&total).Error
	})
	if err := g.Wait(); err != nil {
		return ApplicationPage{}, fmt.Errorf("list applications: %w", err)
	}

	views, err := s.enrich(ctx, apps, listSummary)
	if err != nil {
		return ApplicationPage{}, err
	}
	return ApplicationPage{Applications: views, Meta: pagination.NewMeta(f.Page, total)}, nil
}

// ListByJob 返回某职位下的全部投递（不分页），职位不存在时返回 jobboard.ErrNotFound。
func (s *ApplicationStore) ListByJob(ctx context.Context, jobID string) (JobApplications, error) {
	job, err := s.jobs.find(ctx, jobID)
	if err != nil {
		return JobApplications{}, err
	}

	var apps []database.Application
	if err := s.db.WithContext(ctx).
		Where("job_id = ?", job.ID).
		Order("created_at DESC").
		Order("id").
		Find(&apps).Error; err != nil {
		return JobApplications{}, fmt.Errorf("list applications of job: %w", err)
	}

	views := make([]ApplicationView, 0, len(apps))
	for _, app := range apps {
		views = append(views, viewOf(app, JobSummary{ID: app.JobID}))
	}
	return JobApplications{
		Applications: views,
		Total:        int64(len(views)),
		Job:          summarize(*job, withTitle|withCompany),
	}, nil
}

// GetByID 返回单个投递及其职位信息。
func (s *ApplicationStore) GetByID(ctx context.Context, id string) (ApplicationView, error) {
	app, err := s.find(ctx, id)
	if err != nil {
		return ApplicationView{}, err
	}
	views, err := s.enrich(ctx, []database.Application{*app}, detailSummary)
	if err != nil {
		return ApplicationView{}, err
	}
	return views[0], nil
}

// UpdateStatus 覆盖投递状态，四个状态之间可以任意切换。
func (s *ApplicationStore) UpdateStatus(ctx context.Context, id, status string) (ApplicationView, error) {
	if err := jobboard.ValidateStatus(status); err != nil {
		return ApplicationView{}, err
	}

	app, err := s.find(ctx, id)
	if err != nil {
		return ApplicationView{}, err
	}

	if err := s.db.WithContext(ctx).Model(app).Update("status", status).Error; err != nil {
		return ApplicationView{}, fmt.Errorf("update application status: %w", err)
	}
	if app, err = s.find(ctx, app.ID); err != nil {
		return ApplicationView{}, err
	}

	views, err := s.enrich(ctx, []database.Application{*app}, statusSummary)
	if err != nil {
		return ApplicationView{}, err
	}
	return views[0], nil
}

// Delete 删除单个投递并返回其 id。
func (s *ApplicationStore) Delete(ctx context.Context, id string) (string, error) {
	app, err := s.find(ctx, id)
	if err != nil {
		return "", err
	}
	res := s.db.WithContext(ctx).Delete(&database.Application{}, "id = ?", app.ID)
	if res.Error != nil {
		return "", fmt.Errorf("delete application: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return "", jobboard.ErrNotFound
	}
	return app.ID, nil
}

// DeleteByJob 删除某职位下的全部投递，可重复执行。
func (s *ApplicationStore) DeleteByJob(ctx context.Context, jobID string) (int64, error) {
	n, err := deleteApplicationsByJob(ctx, s.db, jobID)
	if err != nil {
		return 0, fmt.Errorf("delete applications of job %s: %w", jobID, err)
	}
	return n, nil
}

func (s *ApplicationStore) find(ctx context.Context, id string) (*database.Application, error) {
	if !validID(id) {
		return nil, jobboard.ErrNotFound
	}
	var app database.Application
	if err := s.db.WithContext(ctx).First(&app, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, jobboard.ErrNotFound
		}
		return nil, fmt.Errorf("query application: %w", err)
	}
	return &app, nil
}

// enrich 在读取时为投递附加职位字段；职位已被删除时只保留职位 id。
func (s *ApplicationStore) enrich(ctx context.Context, apps []database.Application, fields summaryFields) ([]ApplicationView, error) {
	views := make([]ApplicationView, 0, len(apps))
	if len(apps) == 0 {
		return views, nil
	}

	ids := make([]string, 0, len(apps))
	seen := make(map[string]struct{}, len(apps))
	for _, app := range apps {
		if _, ok := seen[app.JobID]; ok {
			continue
		}
		seen[app.JobID] = struct{}{}
		ids = append(ids, app.JobID)
	}

	var jobs []database.Job
	if err := s.db.WithContext(ctx).
		Select("id", "title", "company", "location", "category", "type").
		Where("id IN ?", ids).
		Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("load jobs for applications: %w", err)
	}
	byID := make(map[string]database.Job, len(jobs))
	for _, job := range jobs {
		byID[job.ID] = job
	}

	for _, app := range apps {
		summary := JobSummary{ID: app.JobID}
		if job, ok := byID[app.JobID]; ok {
			summary = summarize(job, fields)
		}
		views = append(views, viewOf(app, summary))
	}
	return views, nil
}

func viewOf(app database.Application, job JobSummary) ApplicationView {
	return ApplicationView{
		ID:         app.ID,
		Job:        job,
		Name:       app.Name,
		Email:      app.Email,
		ResumeLink: app.ResumeLink,
		CoverNote:  app.CoverNote,
		Status:     app.Status,
		CreatedAt:  app.CreatedAt,
		UpdatedAt:  app.UpdatedAt,
	}
}

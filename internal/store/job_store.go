package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"quickhire/internal/database"
	"quickhire/internal/jobboard"
	"quickhire/internal/pagination"
)

// PurgeScheduler 在级联删除失败时安排后台补偿清理。
type PurgeScheduler interface {
	SchedulePurge(ctx context.Context, jobID string) error
}

// JobStore 负责职位的查询与变更。
type JobStore struct {
	db     *gorm.DB
	purger PurgeScheduler
	logger *slog.Logger
}

// NewJobStore 构造 JobStore，purger 可以为 nil。
func NewJobStore(db *gorm.DB, purger PurgeScheduler, logger *slog.Logger) *JobStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &JobStore{db: db, purger: purger, logger: logger}
}

// JobFilter 是职位列表的查询条件。
type JobFilter struct {
	Search   string
	Category string
	Location string
	Type     string
	Sort     string
	Page     pagination.Params
}

// JobPage 是一页职位及其分页信息。
type JobPage struct {
	Jobs []database.Job
	Meta pagination.Meta
}

// JobDetail 是单个职位以及投递数。
type JobDetail struct {
	database.Job
	ApplicationCount int64 `json:"applicationCount"`
}

// FilterOptions 是在架职位中出现过的筛选值。
type FilterOptions struct {
	Categories []string `json:"categories"`
	Locations  []string `json:"locations"`
	Types      []string `json:"types"`
}

// DeleteResult 描述一次级联删除。
type DeleteResult struct {
	DeletedID           string `json:"deletedId"`
	DeletedApplications int64  `json:"-"`
}

// List 返回在架职位的一页数据。
// search 在 title/company/description/location 之间取 OR，其余过滤条件之间取 AND。
func (s *JobStore) List(ctx context.Context, f JobFilter) (JobPage, error) {
	scope := func() *gorm.DB {
		q := s.db.WithContext(ctx).Model(&database.Job{}).Where("is_active = ?", true)
		q = whereSearchAny(q, f.Search, "title", "company", "description", "location")
		q = whereContains(q, "category", f.Category)
		q = whereContains(q, "location", f.Location)
		q = whereContains(q, "type", f.Type)
		return q
	}

	var (
		jobs  []database.Job
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return scope().WithContext(gctx).
			Order(clause.OrderBy{Columns: parseSort(f.Sort)}).
			Offset(f.Page.Offset()).
			Limit(f.Page.Limit).
			Find(&jobs).Error
	})
	g.Go(func() error {
		return scope().WithContext(gctx).Count(&total).Error
	})
	if err := g.Wait(); err != nil {
		return JobPage{}, fmt.Errorf("list jobs: %w", err)
	}

	if jobs == nil {
		jobs = []database.Job{}
	}
	return JobPage{Jobs: jobs, Meta: pagination.NewMeta(f.Page, total)}, nil
}

// GetByID 返回职位详情；非法或不存在的 id 返回 jobboard.ErrNotFound。
func (s *JobStore) GetByID(ctx context.Context, id string) (JobDetail, error) {
	job, err := s.find(ctx, id)
	if err != nil {
		return JobDetail{}, err
	}

	var count int64
	if err := s.db.WithContext(ctx).
		Model(&database.Application{}).
		Where("job_id = ?", job.ID).
		Count(&count).Error; err != nil {
		return JobDetail{}, fmt.Errorf("count applications: %w", err)
	}

	return JobDetail{Job: *job, ApplicationCount: count}, nil
}

// Create 校验并保存新职位，isActive 默认为 true。
func (s *JobStore) Create(ctx context.Context, in jobboard.JobInput) (*database.Job, error) {
	draft := in.ApplyTo(jobboard.NewJobDraft())
	if err := jobboard.ValidateJob(draft); err != nil {
		return nil, err
	}

	job := database.Job{}
	applyDraft(&job, draft)
	if err := s.db.WithContext(ctx).Create(&job).Error; err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	return &job, nil
}

// Update 把请求中出现的字段合并到现有职位上，校验合并结果后保存。
func (s *JobStore) Update(ctx context.Context, id string, in jobboard.JobInput) (*database.Job, error) {
	job, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	draft := in.ApplyTo(draftOf(*job))
	if err := jobboard.ValidateJob(draft); err != nil {
		return nil, err
	}

	applyDraft(job, draft)
	if err := s.db.WithContext(ctx).Save(job).Error; err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}
	return job, nil
}

// Delete 删除职位并删除其全部投递。
// 两次删除不在同一事务中：若投递删除失败，职位删除不会回滚，
// 此时会安排一次后台清理并把错误返回给调用方。
func (s *JobStore) Delete(ctx context.Context, id string) (DeleteResult, error) {
	job, err := s.find(ctx, id)
	if err != nil {
		return DeleteResult{}, err
	}

	res := s.db.WithContext(ctx).Delete(&database.Job{}, "id = ?", job.ID)
	if res.Error != nil {
		return DeleteResult{}, fmt.Errorf("delete job: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return DeleteResult{}, jobboard.ErrNotFound
	}

	removed, err := deleteApplicationsByJob(ctx, s.db, job.ID)
	if err != nil {
		log := s.logger.With(slog.String("job_id", job.ID))
		log.Error("cascade delete applications failed", slog.Any("error", err))
		err = fmt.Errorf("delete applications of job %s: %w", job.ID, err)
		if s.purger != nil {
			if perr := s.purger.SchedulePurge(ctx, job.ID); perr != nil {
				log.Error("schedule applications purge failed", slog.Any("error", perr))
				err = errors.Join(err, fmt.Errorf("schedule purge: %w", perr))
			} else {
				log.Info("applications purge scheduled")
			}
		}
		return DeleteResult{DeletedID: job.ID}, err
	}

	return DeleteResult{DeletedID: job.ID, DeletedApplications: removed}, nil
}

// FilterOptions 返回在架职位中出现过的分类、地点与类型。
func (s *JobStore) FilterOptions(ctx context.Context) (FilterOptions, error) {
	opts := FilterOptions{}
	pluck := func(gctx context.Context, column string, dst *[]string) func() error {
		return func() error {
			vals := []string{}
			if err := s.db.WithContext(gctx).
				Model(&database.Job{}).
				Where("is_active = ?", true).
				Distinct().
				Pluck(column, &vals).Error; err != nil {
				return fmt.Errorf("distinct %s: %w", column, err)
			}
			sort.Strings(vals)
			*dst = vals
			return nil
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(pluck(gctx, "category", &opts.Categories))
	g.Go(pluck(gctx, "location", &opts.Locations))
	g.Go(pluck(gctx, "type", &opts.Types))
	if err := g.Wait(); err != nil {
		return FilterOptions{}, err
	}
	return opts, nil
}

func (s *JobStore) find(ctx context.Context, id string) (*database.Job, error) {
	if !validID(id) {
		return nil, jobboard.ErrNotFound
	}
	var job database.Job
	if err := s.db.WithContext(ctx).First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, jobboard.ErrNotFound
		}
		return nil, fmt.Errorf("query job: %w", err)
	}
	return &job, nil
}

func deleteApplicationsByJob(ctx context.Context, db *gorm.DB, jobID string) (int64, error) {
	res := db.WithContext(ctx).Where("job_id = ?", jobID).Delete(&database.Application{})
	return res.RowsAffected, res.Error
}

func draftOf(job database.Job) jobboard.JobDraft {
	return jobboard.JobDraft{
		Title:        job.Title,
		Company:      job.Company,
		Location:     job.Location,
		Category:     job.Category,
		Type:         job.Type,
		Description:  job.Description,
		Requirements: job.Requirements,
		Salary: jobboard.SalaryDraft{
			Min:      jobboard.NumberOf(job.Salary.Min),
			Max:      jobboard.NumberOf(job.Salary.Max),
			Currency: job.Salary.Currency,
		},
		CompanyLogo: job.CompanyLogo,
		IsActive:    job.IsActive,
	}
}

func applyDraft(job *database.Job, d jobboard.JobDraft) {
	job.Title = d.Title
	job.Company = d.Company
	job.Location = d.Location
	job.Category = d.Category
	job.Type = d.Type
	job.Description = d.Description
	job.Requirements = d.Requirements
	job.Salary = database.Salary{
		Min:      d.Salary.Min.Ptr(),
		Max:      d.Salary.Max.Ptr(),
		Currency: d.Salary.Currency,
	}
	job.CompanyLogo = d.CompanyLogo
	job.IsActive = d.IsActive
}

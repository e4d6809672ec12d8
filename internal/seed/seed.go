// Package seed 向数据库写入演示用的职位与投递。
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"quickhire/internal/database"
	"quickhire/internal/jobboard"
	"quickhire/internal/store"
)

// Result 汇总一次填充的结果。
type Result struct {
	Jobs         int
	Applications int
	Skipped      bool
}

// Seeder 通过 store 写入数据，样例数据与接口数据走同一套校验。
type Seeder struct {
	db     *gorm.DB
	jobs   *store.JobStore
	apps   *store.ApplicationStore
	logger *slog.Logger
}

func NewSeeder(db *gorm.DB, jobs *store.JobStore, apps *store.ApplicationStore, logger *slog.Logger) *Seeder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Seeder{db: db, jobs: jobs, apps: apps, logger: logger}
}

// Run 写入样例职位及三条样例投递。reset 为 false 且库中已有职位时不做任何修改。
func (s *Seeder) Run(ctx context.Context, reset bool) (Result, error) {
	if reset {
		if err := s.clear(ctx); err != nil {
			return Result{}, err
		}
		s.logger.Info("cleared existing jobs and applications")
	} else {
		var count int64
		if err := s.db.WithContext(ctx).Model(&database.Job{}).Count(&count).Error; err != nil {
			return Result{}, fmt.Errorf("count jobs: %w", err)
		}
		if count > 0 {
			s.logger.Info("jobs already present, skipping seed", slog.Int64("jobs", count))
			return Result{Skipped: true}, nil
		}
	}

	var res Result
	created := make([]string, 0, len(SampleJobs()))
	for _, in := range SampleJobs() {
		job, err := s.jobs.Create(ctx, in)
		if err != nil {
			return res, fmt.Errorf("seed job %q: %w", *in.Title, err)
		}
		created = append(created, job.ID)
		res.Jobs++
	}

	for _, in := range sampleApplications(created) {
		if _, err := s.apps.Submit(ctx, in); err != nil {
			return res, fmt.Errorf("seed application for %s: %w", in.Email, err)
		}
		res.Applications++
	}

	s.logger.Info("database seeded",
		slog.Int("jobs", res.Jobs),
		slog.Int("applications", res.Applications),
	)
	return res, nil
}

func (s *Seeder) clear(ctx context.Context) error {
	tx := s.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true})
	if err := tx.Delete(&database.Application{}).Error; err != nil {
		return fmt.Errorf("clear applications: %w", err)
	}
	if err := tx.Delete(&database.Job{}).Error; err != nil {
		return fmt.Errorf("clear jobs: %w", err)
	}
	return nil
}

func sampleApplications(jobIDs []string) []jobboard.ApplicationInput {
	if len(jobIDs) < 2 {
		return nil
	}
	return []jobboard.ApplicationInput{
		{
			JobID:      jobIDs[0],
			Name:       "Alice Johnson",
			Email:      "alice@example.com",
			ResumeLink: "https://linkedin.com/in/alicejohnson",
			CoverNote:  "I am very excited about this opportunity at TechCorp. I have 6 years of React experience and have shipped multiple large-scale applications. I believe I would be a great fit for your team.",
		},
		{
			JobID:      jobIDs[0],
			Name:       "Bob Smith",
			Email:      "bob@example.com",
			ResumeLink: "https://github.com/bobsmith",
			CoverNote:  "Having worked as a senior frontend developer for 5 years, I am confident I can contribute significantly to your team. My expertise in performance optimization aligns perfectly with your requirements.",
		},
		{
			JobID:      jobIDs[1],
			Name:       "Carol White",
			Email:      "carol@example.com",
			ResumeLink: "https://behance.net/carolwhite",
			CoverNote:  "I am a passionate UI/UX designer with a strong portfolio in SaaS products. I would love to bring my user-centered design approach to Creative Studio.",
		},
	}
}

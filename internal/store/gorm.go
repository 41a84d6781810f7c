package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/seifeddinerezgui/gethrought/internal/model"
)

// pgUniqueViolation is the postgres SQLSTATE for a unique constraint violation
const pgUniqueViolation = "23505"

// GormStore is the PostgreSQL Store. The schema comes from model.MigrateAble.
type GormStore struct {
	DB *gorm.DB
}

// NewGormStore wraps an opened and migrated gorm connection
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

var _ Store = (*GormStore)(nil)

// translate maps driver errors to the store's sentinel errors.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrDuplicate
	}
	return err
}

func (s *GormStore) ListSolutions(ctx context.Context) ([]model.Solution, error) {
	solutions := []model.Solution{}
	// "order" is reserved, clause.Column quotes it
	err := s.DB.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}}).
		Find(&solutions).Error
	return solutions, translate(err)
}

func (s *GormStore) GetSolution(ctx context.Context, id uint) (model.Solution, error) {
	var solution model.Solution
	err := s.DB.WithContext(ctx).First(&solution, id).Error
	return solution, translate(err)
}

func (s *GormStore) CreateSolution(ctx context.Context, solution *model.Solution) error {
	return translate(s.DB.WithContext(ctx).Create(solution).Error)
}

func (s *GormStore) ListLocations(ctx context.Context) ([]model.Location, error) {
	locations := []model.Location{}
	err := s.DB.WithContext(ctx).Order("id ASC").Find(&locations).Error
	return locations, translate(err)
}

func (s *GormStore) GetLocation(ctx context.Context, id uint) (model.Location, error) {
	var location model.Location
	err := s.DB.WithContext(ctx).First(&location, id).Error
	return location, translate(err)
}

func (s *GormStore) CreateLocation(ctx context.Context, location *model.Location) error {
	return translate(s.DB.WithContext(ctx).Create(location).Error)
}

func (s *GormStore) ListJobs(ctx context.Context, filter JobFilter) ([]model.Job, error) {
	jobs := []model.Job{}
	q := s.DB.WithContext(ctx)
	if filter.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.Order("id ASC").Find(&jobs).Error
	return jobs, translate(err)
}

func (s *GormStore) GetJob(ctx context.Context, id uint) (model.Job, error) {
	var job model.Job
	err := s.DB.WithContext(ctx).First(&job, id).Error
	return job, translate(err)
}

func (s *GormStore) CreateJob(ctx context.Context, job *model.Job) error {
	return translate(s.DB.WithContext(ctx).Create(job).Error)
}

func newsScope(filter NewsFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.Category != "" {
			db = db.Where("category = ?", filter.Category)
		}
		return db
	}
}

// ListNews counts the filtered set, then reads the requested window of it.
func (s *GormStore) ListNews(ctx context.Context, filter NewsFilter) ([]model.News, int64, error) {
	var total int64
	err := s.DB.WithContext(ctx).
		Model(&model.News{}).
		Scopes(newsScope(filter)).
		Count(&total).Error
	if err != nil {
		return nil, 0, translate(err)
	}

	q := s.DB.WithContext(ctx).
		Scopes(newsScope(filter)).
		Order("publish_date DESC").
		Order("id ASC")
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	news := []model.News{}
	if err := q.Find(&news).Error; err != nil {
		return nil, 0, translate(err)
	}
	return news, total, nil
}

func (s *GormStore) GetNews(ctx context.Context, id uint) (model.News, error) {
	var news model.News
	err := s.DB.WithContext(ctx).First(&news, id).Error
	return news, translate(err)
}

func (s *GormStore) CreateNews(ctx context.Context, news *model.News) error {
	return translate(s.DB.WithContext(ctx).Create(news).Error)
}

func (s *GormStore) CreateContact(ctx context.Context, contact *model.Contact) error {
	contactDefaults(contact)
	return translate(s.DB.WithContext(ctx).Create(contact).Error)
}

func (s *GormStore) ListContacts(ctx context.Context) ([]model.Contact, error) {
	contacts := []model.Contact{}
	err := s.DB.WithContext(ctx).Order("id ASC").Find(&contacts).Error
	return contacts, translate(err)
}

func (s *GormStore) FindNewsletterByEmail(ctx context.Context, email string) (model.Newsletter, error) {
	var newsletter model.Newsletter
	err := s.DB.WithContext(ctx).Where("email = ?", email).First(&newsletter).Error
	return newsletter, translate(err)
}

func (s *GormStore) CreateNewsletter(ctx context.Context, newsletter *model.Newsletter) error {
	newsletterDefaults(newsletter)
	return translate(s.DB.WithContext(ctx).Create(newsletter).Error)
}

func (s *GormStore) ListNewsletters(ctx context.Context) ([]model.Newsletter, error) {
	newsletters := []model.Newsletter{}
	err := s.DB.WithContext(ctx).Order("id ASC").Find(&newsletters).Error
	return newsletters, translate(err)
}

// CreateJobApplication inserts the application row only, the referenced job is not upserted.
func (s *GormStore) CreateJobApplication(ctx context.Context, application *model.JobApplication) error {
	applicationDefaults(application)
	return translate(s.DB.WithContext(ctx).Omit(clause.Associations).Create(application).Error)
}

func (s *GormStore) ListJobApplications(ctx context.Context, jobID uint) ([]model.JobApplication, error) {
	applications := []model.JobApplication{}
	err := s.DB.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&applications).Error
	return applications, translate(err)
}

func (s *GormStore) GetUser(ctx context.Context, id uint) (model.User, error) {
	var user model.User
	err := s.DB.WithContext(ctx).First(&user, id).Error
	return user, translate(err)
}

func (s *GormStore) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	var user model.User
	err := s.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error
	return user, translate(err)
}

func (s *GormStore) CreateUser(ctx context.Context, user *model.User) error {
	userDefaults(user)
	return translate(s.DB.WithContext(ctx).Create(user).Error)
}

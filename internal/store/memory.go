package store

import (
	"context"
	"sort"
	"sync"

	"github.com/seifeddinerezgui/gethrought/internal/model"
)

// MemoryStore keeps every record kind in process memory.
// Each kind has its own ID counter; slices hold rows in insertion (and therefore ID) order.
type MemoryStore struct {
	mu sync.RWMutex

	solutions    []model.Solution
	locations    []model.Location
	jobs         []model.Job
	news         []model.News
	contacts     []model.Contact
	newsletters  []model.Newsletter
	applications []model.JobApplication
	users        []model.User

	// lower-cased keys are not applied here, callers normalize
	newsletterByEmail map[string]int
	userByName        map[string]int

	nextID map[string]uint
}

// NewMemoryStore returns an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		newsletterByEmail: map[string]int{},
		userByName:        map[string]int{},
		nextID:            map[string]uint{},
	}
}

var _ Store = (*MemoryStore)(nil)

// next must be called with mu held for writing.
func (m *MemoryStore) next(kind string) uint {
	m.nextID[kind]++
	return m.nextID[kind]
}

// ListSolutions returns solutions by display order, ties in insertion order.
func (m *MemoryStore) ListSolutions(_ context.Context) ([]model.Solution, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := append([]model.Solution{}, m.solutions...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (m *MemoryStore) GetSolution(_ context.Context, id uint) (model.Solution, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, s := range m.solutions {
		if s.ID == id {
			return s, nil
		}
	}
	return model.Solution{}, ErrNotFound
}

func (m *MemoryStore) CreateSolution(_ context.Context, solution *model.Solution) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	solution.ID = m.next("solutions")
	m.solutions = append(m.solutions, *solution)
	return nil
}

func (m *MemoryStore) ListLocations(_ context.Context) ([]model.Location, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]model.Location{}, m.locations...), nil
}

func (m *MemoryStore) GetLocation(_ context.Context, id uint) (model.Location, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, l := range m.locations {
		if l.ID == id {
			return l, nil
		}
	}
	return model.Location{}, ErrNotFound
}

func (m *MemoryStore) CreateLocation(_ context.Context, location *model.Location) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	location.ID = m.next("locations")
	m.locations = append(m.locations, *location)
	return nil
}

func (m *MemoryStore) ListJobs(_ context.Context, filter JobFilter) ([]model.Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []model.Job{}
	for _, j := range m.jobs {
		if filter.ActiveOnly && !j.IsActive {
			continue
		}
		out = append(out, j)
	}
	return out, nil
}

func (m *MemoryStore) GetJob(_ context.Context, id uint) (model.Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, j := range m.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return model.Job{}, ErrNotFound
}

func (m *MemoryStore) CreateJob(_ context.Context, job *model.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	job.ID = m.next("jobs")
	m.jobs = append(m.jobs, *job)
	return nil
}

func (m *MemoryStore) ListNews(_ context.Context, filter NewsFilter) ([]model.News, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := []model.News{}
	for _, n := range m.news {
		if filter.Category != "" && n.Category != filter.Category {
			continue
		}
		matched = append(matched, n)
	}
	// stable: equal publish dates keep insertion order
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].PublishDate.After(matched[j].PublishDate)
	})

	total := int64(len(matched))
	start := filter.Offset
	if start < 0 {
		start = 0
	}
	if start > len(matched) {
		start = len(matched)
	}
	end := len(matched)
	if filter.Limit > 0 && filter.Limit < end-start {
		end = start + filter.Limit
	}

	return append([]model.News{}, matched[start:end]...), total, nil
}

func (m *MemoryStore) GetNews(_ context.Context, id uint) (model.News, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, n := range m.news {
		if n.ID == id {
			return n, nil
		}
	}
	return model.News{}, ErrNotFound
}

func (m *MemoryStore) CreateNews(_ context.Context, news *model.News) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	news.ID = m.next("news")
	m.news = append(m.news, *news)
	return nil
}

func (m *MemoryStore) CreateContact(_ context.Context, contact *model.Contact) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	contactDefaults(contact)
	contact.ID = m.next("contacts")
	m.contacts = append(m.contacts, *contact)
	return nil
}

func (m *MemoryStore) ListContacts(_ context.Context) ([]model.Contact, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]model.Contact{}, m.contacts...), nil
}

func (m *MemoryStore) FindNewsletterByEmail(_ context.Context, email string) (model.Newsletter, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	idx, ok := m.newsletterByEmail[email]
	if !ok {
		return model.Newsletter{}, ErrNotFound
	}
	return m.newsletters[idx], nil
}

// CreateNewsletter enforces email uniqueness the same way the postgres unique index does.
func (m *MemoryStore) CreateNewsletter(_ context.Context, newsletter *model.Newsletter) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.newsletterByEmail[newsletter.Email]; ok {
		return ErrDuplicate
	}
	newsletterDefaults(newsletter)
	newsletter.ID = m.next("newsletters")
	m.newsletterByEmail[newsletter.Email] = len(m.newsletters)
	m.newsletters = append(m.newsletters, *newsletter)
	return nil
}

func (m *MemoryStore) ListNewsletters(_ context.Context) ([]model.Newsletter, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]model.Newsletter{}, m.newsletters...), nil
}

func (m *MemoryStore) CreateJobApplication(_ context.Context, application *model.JobApplication) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	applicationDefaults(application)
	application.ID = m.next("job_applications")
	m.applications = append(m.applications, *application)
	return nil
}

func (m *MemoryStore) ListJobApplications(_ context.Context, jobID uint) ([]model.JobApplication, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []model.JobApplication{}
	for _, a := range m.applications {
		if a.JobID == jobID {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *MemoryStore) GetUser(_ context.Context, id uint) (model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, ErrNotFound
}

func (m *MemoryStore) GetUserByUsername(_ context.Context, username string) (model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	idx, ok := m.userByName[username]
	if !ok {
		return model.User{}, ErrNotFound
	}
	return m.users[idx], nil
}

func (m *MemoryStore) CreateUser(_ context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.userByName[user.Username]; ok {
		return ErrDuplicate
	}
	userDefaults(user)
	user.ID = m.next("users")
	m.userByName[user.Username] = len(m.users)
	m.users = append(m.users, *user)
	return nil
}

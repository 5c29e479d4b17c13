package service_test

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"studio-api/internal/model"
	"studio-api/internal/repository"
)

// map-backed fakes for the repository interfaces the service tests need

type fakeUserRepo struct {
	users  map[int64]*model.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*model.User), nextID: 1}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) (int64, error) {
	id := f.nextID
	f.nextID++
	stored := *user
	stored.ID = id
	f.users[id] = &stored
	return id, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id int64) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *model.User) error {
	stored, ok := f.users[user.ID]
	if !ok {
		return sql.ErrNoRows
	}
	stored.Name = user.Name
	stored.AvatarURL = user.AvatarURL
	return nil
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	stored, ok := f.users[id]
	if !ok {
		return sql.ErrNoRows
	}
	stored.PasswordHash = passwordHash
	now := time.Now()
	stored.PasswordChangedAt = &now
	return nil
}

func (f *fakeUserRepo) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	stored, ok := f.users[id]
	if !ok {
		return sql.ErrNoRows
	}
	stored.LastLogin = &at
	return nil
}

type fakeReviewRepo struct {
	reviews map[int64]*model.Review
	nextID  int64
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[int64]*model.Review), nextID: 1}
}

func (f *fakeReviewRepo) List(ctx context.Context, filter repository.ReviewFilter) ([]model.Review, int64, error) {
	out := []model.Review{}
	for _, r := range f.reviews {
		if filter.ApprovedOnly && !r.IsApproved {
			continue
		}
		if filter.PendingOnly && r.IsApproved {
			continue
		}
		if filter.FeaturedOnly && !r.IsFeatured {
			continue
		}
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, int64(len(out)), nil
}

func (f *fakeReviewRepo) FindByID(ctx context.Context, id int64) (*model.Review, error) {
	r, ok := f.reviews[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *r
	return &copied, nil
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *model.Review) (int64, error) {
	id := f.nextID
	f.nextID++
	stored := *review
	stored.ID = id
	stored.CreatedAt = time.Now()
	f.reviews[id] = &stored
	return id, nil
}

func (f *fakeReviewRepo) Update(ctx context.Context, review *model.Review) error {
	stored, ok := f.reviews[review.ID]
	if !ok {
		return sql.ErrNoRows
	}
	stored.TextUK = review.TextUK
	stored.TextEN = review.TextEN
	stored.Rating = review.Rating
	stored.Company = review.Company
	stored.IsFeatured = review.IsFeatured
	stored.SortOrder = review.SortOrder
	return nil
}

func (f *fakeReviewRepo) Delete(ctx context.Context, id int64) error {
	delete(f.reviews, id)
	return nil
}

func (f *fakeReviewRepo) Approve(ctx context.Context, id int64, approvedByID int64, at time.Time) error {
	stored, ok := f.reviews[id]
	if !ok {
		return sql.ErrNoRows
	}
	stored.IsApproved = true
	stored.ApprovedAt = &at
	stored.ApprovedByID = &approvedByID
	return nil
}

func (f *fakeReviewRepo) ExistsForUser(ctx context.Context, userID int64) (bool, error) {
	for _, r := range f.reviews {
		if r.UserID != nil && *r.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeReviewRepo) ExistsForEmail(ctx context.Context, email string) (bool, error) {
	for _, r := range f.reviews {
		if r.AuthorEmail != nil && *r.AuthorEmail == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeReviewRepo) CountByApproval(ctx context.Context, approved bool) (int64, error) {
	var n int64
	for _, r := range f.reviews {
		if r.IsApproved == approved {
			n++
		}
	}
	return n, nil
}

func (f *fakeReviewRepo) ListPending(ctx context.Context, limit int) ([]model.Review, error) {
	out := []model.Review{}
	for _, r := range f.reviews {
		if !r.IsApproved {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakePackageRepo struct {
	packages map[int64]*model.Package
	appRefs  map[int64]int64
	nextID   int64
}

func newFakePackageRepo() *fakePackageRepo {
	return &fakePackageRepo{
		packages: make(map[int64]*model.Package),
		appRefs:  make(map[int64]int64),
		nextID:   1,
	}
}

func (f *fakePackageRepo) List(ctx context.Context, activeOnly bool) ([]model.Package, error) {
	out := []model.Package{}
	for _, p := range f.packages {
		if activeOnly && !p.IsActive {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

func (f *fakePackageRepo) ListHomepage(ctx context.Context, limit int) ([]model.Package, error) {
	out, _ := f.List(ctx, true)
	sort.Slice(out, func(i, j int) bool {
		if out[i].IsPopular != out[j].IsPopular {
			return out[i].IsPopular
		}
		return out[i].SortOrder < out[j].SortOrder
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakePackageRepo) FindByID(ctx context.Context, id int64) (*model.Package, error) {
	p, ok := f.packages[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *p
	return &copied, nil
}

func (f *fakePackageRepo) FindBySlug(ctx context.Context, slug string) (*model.Package, error) {
	for _, p := range f.packages {
		if p.Slug == slug {
			copied := *p
			return &copied, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakePackageRepo) Create(ctx context.Context, pkg *model.Package) (int64, error) {
	id := f.nextID
	f.nextID++
	stored := *pkg
	stored.ID = id
	f.packages[id] = &stored
	return id, nil
}

func (f *fakePackageRepo) Update(ctx context.Context, pkg *model.Package) error {
	_, ok := f.packages[pkg.ID]
	if !ok {
		return sql.ErrNoRows
	}
	stored := *pkg
	f.packages[pkg.ID] = &stored
	return nil
}

func (f *fakePackageRepo) Delete(ctx context.Context, id int64) error {
	delete(f.packages, id)
	return nil
}

func (f *fakePackageRepo) Deactivate(ctx context.Context, id int64) error {
	stored, ok := f.packages[id]
	if !ok {
		return sql.ErrNoRows
	}
	stored.IsActive = false
	return nil
}

func (f *fakePackageRepo) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	for _, p := range f.packages {
		if p.Slug == slug && p.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePackageRepo) CountApplications(ctx context.Context, packageID int64) (int64, error) {
	return f.appRefs[packageID], nil
}

func (f *fakePackageRepo) Search(ctx context.Context, query string, limit int) ([]model.Package, error) {
	return f.List(ctx, true)
}

type fakePublisher struct {
	quotes        []*model.QuoteApplication
	consultations []*model.ConsultationApplication
	reviews       []*model.Review
}

func (f *fakePublisher) PublishQuoteSubmitted(app *model.QuoteApplication) error {
	f.quotes = append(f.quotes, app)
	return nil
}

func (f *fakePublisher) PublishConsultationSubmitted(app *model.ConsultationApplication) error {
	f.consultations = append(f.consultations, app)
	return nil
}

func (f *fakePublisher) PublishReviewSubmitted(review *model.Review) error {
	f.reviews = append(f.reviews, review)
	return nil
}

type fakeQuoteRepo struct {
	apps   map[int64]*model.QuoteApplication
	nextID int64
}

func newFakeQuoteRepo() *fakeQuoteRepo {
	return &fakeQuoteRepo{apps: make(map[int64]*model.QuoteApplication), nextID: 1}
}

func (f *fakeQuoteRepo) List(ctx context.Context, filter repository.ApplicationFilter) ([]model.QuoteApplication, int64, error) {
	out := []model.QuoteApplication{}
	for _, a := range f.apps {
		if filter.Status != nil && a.Status != *filter.Status {
			continue
		}
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, int64(len(out)), nil
}

func (f *fakeQuoteRepo) FindByID(ctx context.Context, id int64) (*model.QuoteApplication, error) {
	a, ok := f.apps[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *a
	return &copied, nil
}

func (f *fakeQuoteRepo) Create(ctx context.Context, app *model.QuoteApplication) (int64, error) {
	id := f.nextID
	f.nextID++
	stored := *app
	stored.ID = id
	stored.Status = model.ApplicationStatusNew
	stored.CreatedAt = time.Now()
	f.apps[id] = &stored
	return id, nil
}

func (f *fakeQuoteRepo) UpdateStatus(ctx context.Context, id int64, status string, processedAt *time.Time, responseText *string) error {
	stored, ok := f.apps[id]
	if !ok {
		return sql.ErrNoRows
	}
	stored.Status = status
	if processedAt != nil {
		stored.ProcessedAt = processedAt
	}
	if responseText != nil {
		stored.ResponseText = responseText
	}
	return nil
}

func (f *fakeQuoteRepo) Delete(ctx context.Context, id int64) error {
	delete(f.apps, id)
	return nil
}

func (f *fakeQuoteRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	for _, a := range f.apps {
		if a.Status == status {
			n++
		}
	}
	return n, nil
}

func (f *fakeQuoteRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.apps)), nil
}

func (f *fakeQuoteRepo) ListRecent(ctx context.Context, limit int) ([]model.QuoteApplication, error) {
	out, _, _ := f.List(ctx, repository.ApplicationFilter{})
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeConsultationRepo struct {
	apps   map[int64]*model.ConsultationApplication
	nextID int64
}

func newFakeConsultationRepo() *fakeConsultationRepo {
	return &fakeConsultationRepo{apps: make(map[int64]*model.ConsultationApplication), nextID: 1}
}

func (f *fakeConsultationRepo) List(ctx context.Context, filter repository.ApplicationFilter) ([]model.ConsultationApplication, int64, error) {
	out := []model.ConsultationApplication{}
	for _, a := range f.apps {
		if filter.Status != nil && a.Status != *filter.Status {
			continue
		}
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, int64(len(out)), nil
}

func (f *fakeConsultationRepo) FindByID(ctx context.Context, id int64) (*model.ConsultationApplication, error) {
	a, ok := f.apps[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *a
	return &copied, nil
}

func (f *fakeConsultationRepo) Create(ctx context.Context, app *model.ConsultationApplication) (int64, error) {
	id := f.nextID
	f.nextID++
	stored := *app
	stored.ID = id
	stored.Status = model.ApplicationStatusNew
	stored.CreatedAt = time.Now()
	f.apps[id] = &stored
	return id, nil
}

func (f *fakeConsultationRepo) UpdateStatus(ctx context.Context, id int64, status string, scheduledAt *time.Time, notes *string) error {
	stored, ok := f.apps[id]
	if !ok {
		return sql.ErrNoRows
	}
	stored.Status = status
	if scheduledAt != nil {
		stored.ConsultationScheduledAt = scheduledAt
	}
	if notes != nil {
		stored.Notes = notes
	}
	return nil
}

func (f *fakeConsultationRepo) Delete(ctx context.Context, id int64) error {
	delete(f.apps, id)
	return nil
}

func (f *fakeConsultationRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	for _, a := range f.apps {
		if a.Status == status {
			n++
		}
	}
	return n, nil
}

func (f *fakeConsultationRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.apps)), nil
}

func (f *fakeConsultationRepo) ListRecent(ctx context.Context, limit int) ([]model.ConsultationApplication, error) {
	out, _, _ := f.List(ctx, repository.ApplicationFilter{})
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeTeamRepo struct {
	members map[int64]*model.TeamMember
	nextID  int64
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{members: make(map[int64]*model.TeamMember), nextID: 1}
}

func (f *fakeTeamRepo) List(ctx context.Context, includeInactive bool) ([]model.TeamMember, error) {
	out := []model.TeamMember{}
	for _, m := range f.members {
		if !includeInactive && !m.IsActive {
			continue
		}
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderIndex < out[j].OrderIndex })
	return out, nil
}

func (f *fakeTeamRepo) FindByID(ctx context.Context, id int64) (*model.TeamMember, error) {
	m, ok := f.members[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *m
	return &copied, nil
}

func (f *fakeTeamRepo) Create(ctx context.Context, member *model.TeamMember) (int64, error) {
	id := f.nextID
	f.nextID++
	stored := *member
	stored.ID = id
	f.members[id] = &stored
	return id, nil
}

func (f *fakeTeamRepo) Update(ctx context.Context, member *model.TeamMember) error {
	if _, ok := f.members[member.ID]; !ok {
		return sql.ErrNoRows
	}
	stored := *member
	f.members[member.ID] = &stored
	return nil
}

func (f *fakeTeamRepo) Delete(ctx context.Context, id int64) error {
	delete(f.members, id)
	return nil
}

func (f *fakeTeamRepo) SetActive(ctx context.Context, id int64, active bool) error {
	stored, ok := f.members[id]
	if !ok {
		return sql.ErrNoRows
	}
	stored.IsActive = active
	return nil
}

func (f *fakeTeamRepo) SetOrder(ctx context.Context, id int64, orderIndex int) error {
	stored, ok := f.members[id]
	if !ok {
		return sql.ErrNoRows
	}
	stored.OrderIndex = orderIndex
	return nil
}

func (f *fakeTeamRepo) MaxOrderIndex(ctx context.Context) (int, error) {
	max := 0
	for _, m := range f.members {
		if m.OrderIndex > max {
			max = m.OrderIndex
		}
	}
	return max, nil
}

func (f *fakeTeamRepo) ActiveNameExists(ctx context.Context, name string, excludeID int64) (bool, error) {
	for _, m := range f.members {
		if m.IsActive && m.Name == name && m.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

type fakeContentRepo struct {
	about  *model.AboutContent
	blocks map[string]*model.ContentBlock
	nextID int64
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{blocks: make(map[string]*model.ContentBlock), nextID: 1}
}

func (f *fakeContentRepo) GetAbout(ctx context.Context) (*model.AboutContent, error) {
	if f.about == nil {
		return nil, sql.ErrNoRows
	}
	copied := *f.about
	return &copied, nil
}

func (f *fakeContentRepo) CreateEmptyAbout(ctx context.Context) (*model.AboutContent, error) {
	f.about = &model.AboutContent{ID: f.nextID}
	f.nextID++
	copied := *f.about
	return &copied, nil
}

func (f *fakeContentRepo) UpdateAbout(ctx context.Context, about *model.AboutContent) error {
	if f.about == nil {
		return sql.ErrNoRows
	}
	stored := *about
	f.about = &stored
	return nil
}

func (f *fakeContentRepo) ListBlocks(ctx context.Context) ([]model.ContentBlock, error) {
	out := []model.ContentBlock{}
	for _, b := range f.blocks {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func (f *fakeContentRepo) FindBlockByKey(ctx context.Context, key string) (*model.ContentBlock, error) {
	b, ok := f.blocks[key]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *b
	return &copied, nil
}

func (f *fakeContentRepo) CreateBlock(ctx context.Context, block *model.ContentBlock) (int64, error) {
	id := f.nextID
	f.nextID++
	stored := *block
	stored.ID = id
	f.blocks[block.Key] = &stored
	return id, nil
}

func (f *fakeContentRepo) UpdateBlock(ctx context.Context, block *model.ContentBlock) error {
	if _, ok := f.blocks[block.Key]; !ok {
		return sql.ErrNoRows
	}
	stored := *block
	f.blocks[block.Key] = &stored
	return nil
}

func (f *fakeContentRepo) DeleteBlock(ctx context.Context, key string) error {
	delete(f.blocks, key)
	return nil
}

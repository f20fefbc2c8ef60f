package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"autoescuelas/internal/models/db_models"
	"autoescuelas/internal/models/request_models"
	"autoescuelas/pkg/utils"
)

type fakeSchoolRepo struct {
	school       *db_models.DrivingSchool
	reviews      []db_models.Review
	err          error
	reviewsLimit int

	byID         *db_models.DrivingSchool
	insertErrs   []error
	inserted     []*db_models.DrivingSchool
	updated      *db_models.DrivingSchool
	deleted      []uuid.UUID
	listSchools  []db_models.DrivingSchool
	listTotal    int64
	listPageSize int
}

func (f *fakeSchoolRepo) GetBySlug(ctx context.Context, slug string) (*db_models.DrivingSchool, error) {
	return f.school, f.err
}

func (f *fakeSchoolRepo) RecentReviews(ctx context.Context, schoolID uuid.UUID, limit int) ([]db_models.Review, error) {
	f.reviewsLimit = limit
	if limit < len(f.reviews) {
		return f.reviews[:limit], nil
	}
	return f.reviews, nil
}

func (f *fakeSchoolRepo) List(ctx context.Context, page, pageSize int) ([]db_models.DrivingSchool, int64, error) {
	f.listPageSize = pageSize
	return f.listSchools, f.listTotal, nil
}

func (f *fakeSchoolRepo) Insert(ctx context.Context, school *db_models.DrivingSchool) error {
	copied := *school
	f.inserted = append(f.inserted, &copied)
	if len(f.insertErrs) > 0 {
		err := f.insertErrs[0]
		f.insertErrs = f.insertErrs[1:]
		return err
	}
	return nil
}

func (f *fakeSchoolRepo) Update(ctx context.Context, school *db_models.DrivingSchool) error {
	f.updated = school
	return nil
}

func (f *fakeSchoolRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.DrivingSchool, error) {
	return f.byID, nil
}

func (f *fakeSchoolRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeCityRepo struct {
	city *db_models.City
}

func (f *fakeCityRepo) ListActiveByProvince(ctx context.Context, provinceID uuid.UUID) ([]db_models.City, error) {
	return nil, nil
}

func (f *fakeCityRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.City, error) {
	return f.city, nil
}

func schoolFixture() *db_models.DrivingSchool {
	province := &db_models.Province{Name: "Córdoba", Slug: "cordoba"}
	city := &db_models.City{Name: "Villa María", Slug: "villa-maria", Province: province}
	school := &db_models.DrivingSchool{
		Name:  "Autoescuela Centro",
		Slug:  "autoescuela-centro",
		Hours: "Lun a Vie 9:00-18:00",
		City:  city,
		Courses: []*db_models.Course{
			{Name: "Curso teórico", PriceMinor: 150000},
		},
	}
	school.ID = uuid.New()
	return school
}

func TestGetSchoolBySlugNotFound(t *testing.T) {
	svc := NewSchoolService(&fakeSchoolRepo{}, &fakeCityRepo{})

	_, err := svc.GetSchoolBySlug(context.Background(), "no-existe")
	if !errors.Is(err, utils.ErrSchoolNotFound) {
		t.Fatalf("err = %v, want ErrSchoolNotFound", err)
	}
}

func TestGetSchoolBySlugRepoError(t *testing.T) {
	svc := NewSchoolService(&fakeSchoolRepo{err: errors.New("boom")}, &fakeCityRepo{})

	_, err := svc.GetSchoolBySlug(context.Background(), "autoescuela-centro")
	if !errors.Is(err, utils.ErrDatabaseError) {
		t.Fatalf("err = %v, want ErrDatabaseError", err)
	}
}

func TestGetSchoolBySlugFlattensRelations(t *testing.T) {
	repo := &fakeSchoolRepo{school: schoolFixture()}
	svc := NewSchoolService(repo, &fakeCityRepo{})

	detail, err := svc.GetSchoolBySlug(context.Background(), "autoescuela-centro")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if detail.City != "Villa María" {
		t.Errorf("city = %q, want Villa María", detail.City)
	}
	if detail.Province != "Córdoba" {
		t.Errorf("province = %q, want Córdoba", detail.Province)
	}
	if detail.Hours != "Lun a Vie 9:00-18:00" {
		t.Errorf("hours = %q", detail.Hours)
	}
	if len(detail.Courses) != 1 {
		t.Errorf("courses = %d, want 1", len(detail.Courses))
	}
}

func TestGetSchoolBySlugCapsReviews(t *testing.T) {
	school := schoolFixture()
	reviews := make([]db_models.Review, 15)
	for i := range reviews {
		reviews[i].ID = uuid.New()
		reviews[i].CreatedAt = int64(1000 - i) // newest first, as the query orders them
	}

	repo := &fakeSchoolRepo{school: school, reviews: reviews}
	svc := NewSchoolService(repo, &fakeCityRepo{})

	detail, err := svc.GetSchoolBySlug(context.Background(), school.Slug)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.reviewsLimit != 10 {
		t.Errorf("reviews limit = %d, want 10", repo.reviewsLimit)
	}
	if len(detail.Reviews) != 10 {
		t.Fatalf("reviews = %d, want 10", len(detail.Reviews))
	}
	for i := 1; i < len(detail.Reviews); i++ {
		if detail.Reviews[i].CreatedAt > detail.Reviews[i-1].CreatedAt {
			t.Fatalf("reviews not ordered newest first at index %d", i)
		}
	}
}

func cityFixture() *db_models.City {
	province := &db_models.Province{Name: "Córdoba", Slug: "cordoba"}
	city := &db_models.City{Name: "Villa María", Slug: "villa-maria", Province: province}
	city.ID = uuid.New()
	return city
}

func TestCreateSchool(t *testing.T) {
	city := cityFixture()
	repo := &fakeSchoolRepo{}
	svc := NewSchoolService(repo, &fakeCityRepo{city: city})

	resp, err := svc.CreateSchool(context.Background(), request_models.CreateSchoolRequest{
		Name:   "Autoescuela El Práctico",
		CityID: city.ID.String(),
		Phone:  "+54 353 400-0000",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.inserted) != 1 {
		t.Fatalf("inserts = %d, want 1", len(repo.inserted))
	}
	if got := repo.inserted[0].Slug; got != "autoescuela-el-practico" {
		t.Errorf("slug = %q, want it derived from the name", got)
	}
	if resp.City != "Villa María" || resp.Province != "Córdoba" {
		t.Errorf("city/province = %q/%q, not flattened from the resolved city", resp.City, resp.Province)
	}
}

func TestCreateSchoolCityNotFound(t *testing.T) {
	repo := &fakeSchoolRepo{}
	svc := NewSchoolService(repo, &fakeCityRepo{})

	_, err := svc.CreateSchool(context.Background(), request_models.CreateSchoolRequest{
		Name:   "Autoescuela El Práctico",
		CityID: uuid.New().String(),
	})
	if !errors.Is(err, utils.ErrCityNotFound) {
		t.Fatalf("err = %v, want ErrCityNotFound", err)
	}
	if len(repo.inserted) != 0 {
		t.Fatal("a school was inserted without a valid city")
	}
}

func TestCreateSchoolSlugCollisionRetries(t *testing.T) {
	city := cityFixture()
	repo := &fakeSchoolRepo{insertErrs: []error{gorm.ErrDuplicatedKey}}
	svc := NewSchoolService(repo, &fakeCityRepo{city: city})

	resp, err := svc.CreateSchool(context.Background(), request_models.CreateSchoolRequest{
		Name:   "Autoescuela Centro",
		CityID: city.ID.String(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.inserted) != 2 {
		t.Fatalf("inserts = %d, want a retry after the collision", len(repo.inserted))
	}
	if !strings.HasPrefix(resp.Slug, "autoescuela-centro-") {
		t.Errorf("slug = %q, want the original plus a suffix", resp.Slug)
	}
	if suffix := strings.TrimPrefix(resp.Slug, "autoescuela-centro-"); len(suffix) != 8 {
		t.Errorf("slug suffix = %q, want 8 characters", suffix)
	}
	if repo.inserted[1].Slug != resp.Slug {
		t.Errorf("retried insert used slug %q, response says %q", repo.inserted[1].Slug, resp.Slug)
	}
}

func TestUpdateSchoolNotFound(t *testing.T) {
	svc := NewSchoolService(&fakeSchoolRepo{}, &fakeCityRepo{city: cityFixture()})

	_, err := svc.UpdateSchool(context.Background(), uuid.New(), request_models.UpdateSchoolRequest{
		Name:   "Nuevo nombre",
		CityID: uuid.New().String(),
	})
	if !errors.Is(err, utils.ErrSchoolNotFound) {
		t.Fatalf("err = %v, want ErrSchoolNotFound", err)
	}
}

func TestUpdateSchoolAppliesFields(t *testing.T) {
	city := cityFixture()
	repo := &fakeSchoolRepo{byID: schoolFixture()}
	svc := NewSchoolService(repo, &fakeCityRepo{city: city})

	resp, err := svc.UpdateSchool(context.Background(), repo.byID.ID, request_models.UpdateSchoolRequest{
		Name:   "Autoescuela Renovada",
		Hours:  "Lun a Sab 8:00-20:00",
		CityID: city.ID.String(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.updated == nil {
		t.Fatal("no update reached the repository")
	}
	if repo.updated.Name != "Autoescuela Renovada" || repo.updated.CityID != city.ID {
		t.Errorf("updated row = %+v, fields not applied", repo.updated)
	}
	if resp.Hours != "Lun a Sab 8:00-20:00" {
		t.Errorf("hours = %q", resp.Hours)
	}
}

func TestDeleteSchool(t *testing.T) {
	school := schoolFixture()
	repo := &fakeSchoolRepo{byID: school}
	svc := NewSchoolService(repo, &fakeCityRepo{})

	if err := svc.DeleteSchool(context.Background(), school.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != school.ID {
		t.Fatalf("deleted = %v, want the school's id", repo.deleted)
	}
}

func TestDeleteSchoolNotFound(t *testing.T) {
	repo := &fakeSchoolRepo{}
	svc := NewSchoolService(repo, &fakeCityRepo{})

	if err := svc.DeleteSchool(context.Background(), uuid.New()); !errors.Is(err, utils.ErrSchoolNotFound) {
		t.Fatalf("err = %v, want ErrSchoolNotFound", err)
	}
	if len(repo.deleted) != 0 {
		t.Fatal("delete reached the repository for a missing school")
	}
}

func TestListSchoolsPaging(t *testing.T) {
	repo := &fakeSchoolRepo{listSchools: []db_models.DrivingSchool{*schoolFixture()}, listTotal: 41}
	svc := NewSchoolService(repo, &fakeCityRepo{})

	list, err := svc.ListSchools(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.listPageSize != 20 {
		t.Errorf("page size = %d, want 20", repo.listPageSize)
	}
	// 41 schools at 20 per page round up to 3 pages.
	if list.TotalPages != 3 {
		t.Errorf("totalPages = %d, want 3", list.TotalPages)
	}
}

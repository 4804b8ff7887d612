package contact

import (
	"context"
	"testing"
	"time"

	"warmline_server/internal/dao/mysql/repository"
	"warmline_server/internal/dto/request"
	"warmline_server/internal/model"
	"warmline_server/pkg/enum/contact/warmth_status_enum"
	"warmline_server/pkg/errorx"
)

// noopCache 测试用缓存实现，异步任务同步执行
type noopCache struct{}

func (noopCache) Set(ctx context.Context, key, value string, ttl time.Duration) error { return nil }
func (noopCache) Get(ctx context.Context, key string) (string, error)                 { return "", nil }
func (noopCache) GetOrError(ctx context.Context, key string) (string, error)          { return "", nil }
func (noopCache) IncrBy(ctx context.Context, key string, delta int64) (int64, error)  { return 0, nil }
func (noopCache) Delete(ctx context.Context, key string) error                        { return nil }
func (noopCache) DeleteByPattern(ctx context.Context, pattern string) error           { return nil }
func (noopCache) DeleteByPatterns(ctx context.Context, patterns []string) error       { return nil }
func (noopCache) SubmitTask(action func())                                            { action() }

type fakeContactRepo struct {
	repository.ContactRepository
	created     []*model.Contact
	batch       []model.Contact
	byUuid      map[string]*model.Contact
	fieldWrites map[string]map[string]interface{}
	archived    []string
}

func (f *fakeContactRepo) Create(contact *model.Contact) error {
	f.created = append(f.created, contact)
	return nil
}

func (f *fakeContactRepo) CreateBatch(contacts []model.Contact) error {
	f.batch = append(f.batch, contacts...)
	return nil
}

func (f *fakeContactRepo) FindByUuid(uuid string) (*model.Contact, error) {
	if c, ok := f.byUuid[uuid]; ok {
		return c, nil
	}
	return nil, errorx.New(errorx.CodeNotFound, "联系人不存在")
}

func (f *fakeContactRepo) UpdateFields(uuid string, updates map[string]interface{}) error {
	if f.fieldWrites == nil {
		f.fieldWrites = make(map[string]map[string]interface{})
	}
	f.fieldWrites[uuid] = updates
	return nil
}

func (f *fakeContactRepo) Archive(userId, contactId string) error {
	f.archived = append(f.archived, contactId)
	return nil
}

func (f *fakeContactRepo) CountByStatus(userId string) (map[int8]int64, error) {
	return map[int8]int64{
		warmth_status_enum.GREEN:  3,
		warmth_status_enum.YELLOW: 2,
		warmth_status_enum.RED:    1,
		warmth_status_enum.DEAD:   4,
	}, nil
}

func (f *fakeContactRepo) AverageScore(userId string) (float64, error) {
	return 42.5, nil
}

type fakeNudgeRepo struct {
	repository.NudgeRepository
}

func (fakeNudgeRepo) CountOpenByUserId(userId string) (int64, error) { return 6, nil }

func newTestContactService(contactRepo *fakeContactRepo) *contactService {
	return &contactService{
		repos: &repository.Repositories{Contact: contactRepo, Nudge: fakeNudgeRepo{}},
		cache: noopCache{},
	}
}

func TestCreateContactDefaults(t *testing.T) {
	contactRepo := &fakeContactRepo{}
	svc := newTestContactService(contactRepo)

	uuid, err := svc.CreateContact(request.CreateContactRequest{
		UserId:   "U1",
		Name:     "Alice",
		Birthday: "1992-06-02",
	})
	if err != nil {
		t.Fatalf("CreateContact() error = %v", err)
	}
	if uuid == "" {
		t.Fatal("CreateContact() returned empty uuid")
	}

	c := contactRepo.created[0]
	// 手动添加的联系人按"首次联系乐观"初始化
	if c.WarmthScore != 100 || c.WarmthStatus != warmth_status_enum.GREEN {
		t.Errorf("new contact warmth = (%v, %d), want (100, GREEN)", c.WarmthScore, c.WarmthStatus)
	}
	if c.Priority != 5 {
		t.Errorf("default priority = %d, want 5", c.Priority)
	}
	if c.DesiredFrequencyDays <= 0 {
		t.Errorf("default frequency = %d, want > 0", c.DesiredFrequencyDays)
	}
	if !c.Birthday.Valid || c.Birthday.Time.Month() != time.June || c.Birthday.Time.Day() != 2 {
		t.Errorf("birthday = %v, want 06-02", c.Birthday)
	}
}

func TestImportContactsDefaults(t *testing.T) {
	contactRepo := &fakeContactRepo{}
	svc := newTestContactService(contactRepo)

	count, err := svc.ImportContacts(request.ImportContactsRequest{
		UserId: "U1",
		Contacts: []request.ImportContactItem{
			{Name: "Bob"},
			{Name: "Carol", DesiredFrequencyDays: 30},
		},
	})
	if err != nil {
		t.Fatalf("ImportContacts() error = %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}

	// 导入名单的关系状态未知，初始温度低于手动创建
	for _, c := range contactRepo.batch {
		if c.WarmthScore != 50 || c.WarmthStatus != warmth_status_enum.YELLOW {
			t.Errorf("imported contact %s warmth = (%v, %d), want (50, YELLOW)",
				c.Name, c.WarmthScore, c.WarmthStatus)
		}
	}
	if contactRepo.batch[1].DesiredFrequencyDays != 30 {
		t.Errorf("frequency = %d, want 30", contactRepo.batch[1].DesiredFrequencyDays)
	}
}

func TestUpdateContactNeverTouchesWarmth(t *testing.T) {
	contactRepo := &fakeContactRepo{
		byUuid: map[string]*model.Contact{
			"C1": {Uuid: "C1", UserId: "U1", Name: "Alice"},
		},
	}
	svc := newTestContactService(contactRepo)

	priority := int8(8)
	err := svc.UpdateContact(request.UpdateContactRequest{
		UserId:    "U1",
		ContactId: "C1",
		Name:      "Alice Chen",
		Priority:  &priority,
	})
	if err != nil {
		t.Fatalf("UpdateContact() error = %v", err)
	}

	updates := contactRepo.fieldWrites["C1"]
	if updates["name"] != "Alice Chen" {
		t.Errorf("name update = %v, want Alice Chen", updates["name"])
	}
	for _, forbidden := range []string{"warmth_score", "warmth_status"} {
		if _, ok := updates[forbidden]; ok {
			t.Errorf("profile update must not touch %s", forbidden)
		}
	}
}

func TestUpdateContactBadBirthday(t *testing.T) {
	contactRepo := &fakeContactRepo{
		byUuid: map[string]*model.Contact{
			"C1": {Uuid: "C1", UserId: "U1"},
		},
	}
	svc := newTestContactService(contactRepo)

	err := svc.UpdateContact(request.UpdateContactRequest{
		UserId:    "U1",
		ContactId: "C1",
		Birthday:  "06/02/1992",
	})
	if errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Errorf("error code = %d, want %d", errorx.GetCode(err), errorx.CodeInvalidParam)
	}
	if len(contactRepo.fieldWrites) != 0 {
		t.Errorf("no updates expected on parse failure, got %v", contactRepo.fieldWrites)
	}
}

func TestUpdateContactOwnership(t *testing.T) {
	contactRepo := &fakeContactRepo{
		byUuid: map[string]*model.Contact{
			"C1": {Uuid: "C1", UserId: "U1"},
		},
	}
	svc := newTestContactService(contactRepo)

	err := svc.UpdateContact(request.UpdateContactRequest{UserId: "U_other", ContactId: "C1", Name: "X"})
	if errorx.GetCode(err) != errorx.CodeUnauthorized {
		t.Errorf("error code = %d, want %d", errorx.GetCode(err), errorx.CodeUnauthorized)
	}

	err = svc.UpdateContact(request.UpdateContactRequest{UserId: "U1", ContactId: "C_missing", Name: "X"})
	if errorx.GetCode(err) != errorx.CodeNotFound {
		t.Errorf("error code = %d, want %d", errorx.GetCode(err), errorx.CodeNotFound)
	}
}

func TestArchiveContact(t *testing.T) {
	contactRepo := &fakeContactRepo{
		byUuid: map[string]*model.Contact{
			"C1": {Uuid: "C1", UserId: "U1"},
		},
	}
	svc := newTestContactService(contactRepo)

	if err := svc.ArchiveContact(request.ArchiveContactRequest{UserId: "U1", ContactId: "C1"}); err != nil {
		t.Fatalf("ArchiveContact() error = %v", err)
	}
	if len(contactRepo.archived) != 1 || contactRepo.archived[0] != "C1" {
		t.Errorf("archived = %v, want [C1]", contactRepo.archived)
	}
}

func TestGetDashboardStats(t *testing.T) {
	svc := newTestContactService(&fakeContactRepo{})

	stats, err := svc.GetDashboardStats("U1")
	if err != nil {
		t.Fatalf("GetDashboardStats() error = %v", err)
	}
	if stats.TotalContacts != 10 {
		t.Errorf("total = %d, want 10", stats.TotalContacts)
	}
	if stats.GreenCount != 3 || stats.YellowCount != 2 || stats.RedCount != 1 || stats.DeadCount != 4 {
		t.Errorf("counts = (%d,%d,%d,%d), want (3,2,1,4)",
			stats.GreenCount, stats.YellowCount, stats.RedCount, stats.DeadCount)
	}
	if stats.AverageScore != 42.5 {
		t.Errorf("average = %v, want 42.5", stats.AverageScore)
	}
	if stats.PendingNudges != 6 {
		t.Errorf("pending nudges = %d, want 6", stats.PendingNudges)
	}
}

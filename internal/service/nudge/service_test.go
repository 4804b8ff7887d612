package nudge

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"warmline_server/internal/dao/mysql/repository"
	"warmline_server/internal/dto/request"
	"warmline_server/internal/dto/respond"
	"warmline_server/internal/model"
	"warmline_server/pkg/enum/contact/warmth_status_enum"
	"warmline_server/pkg/enum/nudge/nudge_status_enum"
	"warmline_server/pkg/enum/nudge/nudge_type_enum"
	"warmline_server/pkg/enum/nudge/urgency_enum"
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

type fakeUserRepo struct {
	repository.UserRepository
	user *model.UserInfo
}

func (f *fakeUserRepo) FindByUuid(uuid string) (*model.UserInfo, error) {
	if f.user == nil || f.user.Uuid != uuid {
		return nil, errorx.New(errorx.CodeNotFound, "用户不存在")
	}
	return f.user, nil
}

type fakeContactRepo struct {
	repository.ContactRepository
	cold         []model.Contact
	withBirthday []model.Contact
}

func (f *fakeContactRepo) FindColdByUserId(userId string, statuses []int8, limit int) ([]model.Contact, error) {
	return f.cold, nil
}

func (f *fakeContactRepo) FindWithBirthdayByUserId(userId string) ([]model.Contact, error) {
	return f.withBirthday, nil
}

func (f *fakeContactRepo) FindByUuid(uuid string) (*model.Contact, error) {
	for i := range f.cold {
		if f.cold[i].Uuid == uuid {
			return &f.cold[i], nil
		}
	}
	return nil, errorx.New(errorx.CodeNotFound, "联系人不存在")
}

type fakeNudgeRepo struct {
	repository.NudgeRepository
	createdToday int64
	open         map[string]*model.Nudge // contactId -> 未关闭提醒
	byUuid       map[string]*model.Nudge
	created      []*model.Nudge
	statusWrites map[string]int8
	dupContact   string // 该联系人的 Create 返回唯一索引冲突
}

func (f *fakeNudgeRepo) CountCreatedSince(userId string, since time.Time) (int64, error) {
	return f.createdToday, nil
}

func (f *fakeNudgeRepo) FindOpenByContactId(contactId string) (*model.Nudge, error) {
	return f.open[contactId], nil
}

func (f *fakeNudgeRepo) Create(nudge *model.Nudge) error {
	if f.dupContact != "" && nudge.ContactId == f.dupContact {
		return errorx.ErrDuplicateNudge
	}
	f.created = append(f.created, nudge)
	return nil
}

func (f *fakeNudgeRepo) FindByUuid(uuid string) (*model.Nudge, error) {
	if n, ok := f.byUuid[uuid]; ok {
		return n, nil
	}
	return nil, errorx.New(errorx.CodeNotFound, "提醒不存在")
}

func (f *fakeNudgeRepo) UpdateStatus(uuid string, status int8, snoozedUntil *time.Time) error {
	if f.statusWrites == nil {
		f.statusWrites = make(map[string]int8)
	}
	f.statusWrites[uuid] = status
	return nil
}

func newTestNudgeService(userRepo *fakeUserRepo, contactRepo *fakeContactRepo, nudgeRepo repository.NudgeRepository) *nudgeService {
	return &nudgeService{
		repos: &repository.Repositories{
			User:    userRepo,
			Contact: contactRepo,
			Nudge:   nudgeRepo,
		},
		cache:              noopCache{},
		birthdayWindowDays: 3,
		defaultMaxPerDay:   5,
	}
}

func activeUser(uuid string, maxPerDay int) *model.UserInfo {
	return &model.UserInfo{
		Uuid:              uuid,
		Timezone:          "UTC",
		MaxNudgesPerDay:   maxPerDay,
		PushNotifications: 1,
	}
}

func TestDaysUntilBirthday(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		birthday time.Time
		want     int
		ok       bool
	}{
		{"今天生日", time.Date(1990, 3, 10, 0, 0, 0, 0, time.UTC), 0, true},
		{"两天后生日", time.Date(1985, 3, 12, 0, 0, 0, 0, time.UTC), 2, true},
		{"已过的生日算明年", time.Date(2000, 3, 9, 0, 0, 0, 0, time.UTC), 364, true},
		{"零值生日无效", time.Time{}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := daysUntilBirthday(tt.birthday, now)
			if ok != tt.ok {
				t.Fatalf("daysUntilBirthday() ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("daysUntilBirthday() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestClassifyByStatus(t *testing.T) {
	tests := []struct {
		status      int8
		wantType    int8
		wantUrgency int8
	}{
		{warmth_status_enum.DEAD, nudge_type_enum.RE_ENGAGE, urgency_enum.MAX},
		{warmth_status_enum.RED, nudge_type_enum.WARMTH_DECAY, urgency_enum.MID},
		{warmth_status_enum.YELLOW, nudge_type_enum.WARMTH_DECAY, urgency_enum.LOW},
	}
	for _, tt := range tests {
		typ, urgency := classifyByStatus(tt.status)
		if typ != tt.wantType || urgency != tt.wantUrgency {
			t.Errorf("classifyByStatus(%d) = (%d, %d), want (%d, %d)",
				tt.status, typ, urgency, tt.wantType, tt.wantUrgency)
		}
	}
}

func TestCollectCandidatesOrdering(t *testing.T) {
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	contactRepo := &fakeContactRepo{
		cold: []model.Contact{
			{Uuid: "C_yellow", WarmthScore: 45, WarmthStatus: warmth_status_enum.YELLOW, Priority: 5},
			{Uuid: "C_dead_low", WarmthScore: 5, WarmthStatus: warmth_status_enum.DEAD, Priority: 3},
			{Uuid: "C_dead_high", WarmthScore: 8, WarmthStatus: warmth_status_enum.DEAD, Priority: 9},
			{Uuid: "C_red", WarmthScore: 20, WarmthStatus: warmth_status_enum.RED, Priority: 5},
		},
		withBirthday: []model.Contact{
			// GREEN 联系人也因生日临近进入候选集
			{
				Uuid:         "C_birthday",
				WarmthScore:  95,
				WarmthStatus: warmth_status_enum.GREEN,
				Priority:     9,
				Birthday:     sql.NullTime{Time: time.Date(1992, 6, 2, 0, 0, 0, 0, time.UTC), Valid: true},
			},
			// 窗口外的生日不进入候选集
			{
				Uuid:     "C_far_birthday",
				Priority: 9,
				Birthday: sql.NullTime{Time: time.Date(1992, 7, 15, 0, 0, 0, 0, time.UTC), Valid: true},
			},
		},
	}
	svc := newTestNudgeService(&fakeUserRepo{}, contactRepo, &fakeNudgeRepo{})

	candidates, err := svc.collectCandidates("U_test", now)
	if err != nil {
		t.Fatalf("collectCandidates() error = %v", err)
	}

	got := make([]string, len(candidates))
	for i, c := range candidates {
		got[i] = c.contact.Uuid
	}
	// 紧急度降序 → 类型次序 → 优先级降序 → 温度升序
	want := []string{"C_birthday", "C_dead_high", "C_dead_low", "C_red", "C_yellow"}
	if len(got) != len(want) {
		t.Fatalf("candidates = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("candidates = %v, want %v", got, want)
		}
	}

	if candidates[0].typ != nudge_type_enum.BIRTHDAY || candidates[0].urgency != urgency_enum.MAX {
		t.Errorf("birthday candidate = (%d, %d), want (BIRTHDAY, MAX)",
			candidates[0].typ, candidates[0].urgency)
	}
}

func TestGenerateForUser(t *testing.T) {
	t.Run("按每日限额截断", func(t *testing.T) {
		contactRepo := &fakeContactRepo{
			cold: []model.Contact{
				{Uuid: "C1", WarmthScore: 5, WarmthStatus: warmth_status_enum.DEAD, Priority: 5},
				{Uuid: "C2", WarmthScore: 20, WarmthStatus: warmth_status_enum.RED, Priority: 5},
				{Uuid: "C3", WarmthScore: 45, WarmthStatus: warmth_status_enum.YELLOW, Priority: 5},
			},
		}
		nudgeRepo := &fakeNudgeRepo{createdToday: 1}
		svc := newTestNudgeService(&fakeUserRepo{user: activeUser("U1", 3)}, contactRepo, nudgeRepo)

		result, err := svc.GenerateForUser("U1")
		if err != nil {
			t.Fatalf("GenerateForUser() error = %v", err)
		}
		// 限额 3，今日已生成 1，只剩 2 个预算
		if result.Created != 2 {
			t.Errorf("Created = %d, want 2", result.Created)
		}
		// 紧急度最高的联系人优先占用预算
		if nudgeRepo.created[0].ContactId != "C1" || nudgeRepo.created[1].ContactId != "C2" {
			t.Errorf("created order = [%s, %s], want [C1, C2]",
				nudgeRepo.created[0].ContactId, nudgeRepo.created[1].ContactId)
		}
		if nudgeRepo.created[0].Status != nudge_status_enum.PENDING {
			t.Errorf("new nudge status = %d, want PENDING", nudgeRepo.created[0].Status)
		}
	})

	t.Run("已有未关闭提醒的联系人跳过", func(t *testing.T) {
		contactRepo := &fakeContactRepo{
			cold: []model.Contact{
				{Uuid: "C_open", WarmthScore: 5, WarmthStatus: warmth_status_enum.DEAD},
				{Uuid: "C_free", WarmthScore: 20, WarmthStatus: warmth_status_enum.RED},
			},
		}
		nudgeRepo := &fakeNudgeRepo{
			open: map[string]*model.Nudge{
				"C_open": {Uuid: "N_existing", ContactId: "C_open", Status: nudge_status_enum.SNOOZED},
			},
		}
		svc := newTestNudgeService(&fakeUserRepo{user: activeUser("U1", 5)}, contactRepo, nudgeRepo)

		result, err := svc.GenerateForUser("U1")
		if err != nil {
			t.Fatalf("GenerateForUser() error = %v", err)
		}
		if result.Created != 1 {
			t.Errorf("Created = %d, want 1", result.Created)
		}
		if nudgeRepo.created[0].ContactId != "C_free" {
			t.Errorf("created contact = %s, want C_free", nudgeRepo.created[0].ContactId)
		}
	})

	t.Run("关闭推送时整体跳过", func(t *testing.T) {
		user := activeUser("U1", 5)
		user.PushNotifications = 0
		nudgeRepo := &fakeNudgeRepo{}
		svc := newTestNudgeService(&fakeUserRepo{user: user}, &fakeContactRepo{}, nudgeRepo)

		result, err := svc.GenerateForUser("U1")
		if err != nil {
			t.Fatalf("GenerateForUser() error = %v", err)
		}
		if result.Created != 0 || len(nudgeRepo.created) != 0 {
			t.Errorf("Created = %d, want 0", result.Created)
		}
	})

	t.Run("唯一索引冲突跳过不计数", func(t *testing.T) {
		contactRepo := &fakeContactRepo{
			cold: []model.Contact{
				{Uuid: "C_racing", WarmthScore: 5, WarmthStatus: warmth_status_enum.DEAD},
				{Uuid: "C_plain", WarmthScore: 20, WarmthStatus: warmth_status_enum.RED},
			},
		}
		// 另一轮生成抢先插入了 C_racing 的提醒
		nudgeRepo := &fakeNudgeRepo{dupContact: "C_racing"}
		svc := newTestNudgeService(&fakeUserRepo{user: activeUser("U1", 5)}, contactRepo, nudgeRepo)

		result, err := svc.GenerateForUser("U1")
		if err != nil {
			t.Fatalf("GenerateForUser() error = %v", err)
		}
		if result.Created != 1 {
			t.Errorf("Created = %d, want 1", result.Created)
		}
		if len(nudgeRepo.created) != 1 || nudgeRepo.created[0].ContactId != "C_plain" {
			t.Errorf("created = %v, want only C_plain", nudgeRepo.created)
		}
	})

	t.Run("用户不存在", func(t *testing.T) {
		svc := newTestNudgeService(&fakeUserRepo{}, &fakeContactRepo{}, &fakeNudgeRepo{})
		_, err := svc.GenerateForUser("U_missing")
		if errorx.GetCode(err) != errorx.CodeUserNotExist {
			t.Errorf("error code = %d, want %d", errorx.GetCode(err), errorx.CodeUserNotExist)
		}
	})
}

// racingNudgeRepo 模拟 (contact_id, open_flag) 唯一索引，
// FindOpenByContactId 恒返回 nil，让并发路径都落到 Create 上
type racingNudgeRepo struct {
	repository.NudgeRepository
	mutex         sync.Mutex
	openByContact map[string]*model.Nudge
}

func (f *racingNudgeRepo) CountCreatedSince(userId string, since time.Time) (int64, error) {
	return 0, nil
}

func (f *racingNudgeRepo) FindOpenByContactId(contactId string) (*model.Nudge, error) {
	return nil, nil
}

func (f *racingNudgeRepo) Create(nudge *model.Nudge) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	if _, ok := f.openByContact[nudge.ContactId]; ok {
		return errorx.ErrDuplicateNudge
	}
	f.openByContact[nudge.ContactId] = nudge
	return nil
}

func TestGenerateForUserConcurrent(t *testing.T) {
	contactRepo := &fakeContactRepo{
		cold: []model.Contact{
			{Uuid: "C1", WarmthScore: 5, WarmthStatus: warmth_status_enum.DEAD},
			{Uuid: "C2", WarmthScore: 20, WarmthStatus: warmth_status_enum.RED},
			{Uuid: "C3", WarmthScore: 45, WarmthStatus: warmth_status_enum.YELLOW},
		},
	}
	nudgeRepo := &racingNudgeRepo{openByContact: make(map[string]*model.Nudge)}
	svc := newTestNudgeService(&fakeUserRepo{user: activeUser("U1", 10)}, contactRepo, nudgeRepo)

	var wg sync.WaitGroup
	results := make([]*respond.GenerateNudgesRespond, 2)
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = svc.GenerateForUser("U1")
		}(i)
	}
	wg.Wait()

	// 两轮并发生成都应正常结束，冲突只是跳过
	total := 0
	for i := 0; i < 2; i++ {
		if errs[i] != nil {
			t.Fatalf("GenerateForUser() #%d error = %v", i, errs[i])
		}
		total += results[i].Created
	}
	// 每个联系人只允许一条提醒落库
	if total != len(contactRepo.cold) {
		t.Errorf("total created = %d, want %d", total, len(contactRepo.cold))
	}
	if len(nudgeRepo.openByContact) != len(contactRepo.cold) {
		t.Errorf("open nudges = %d, want %d", len(nudgeRepo.openByContact), len(contactRepo.cold))
	}
}

func TestSnoozeNudge(t *testing.T) {
	nudgeRepo := &fakeNudgeRepo{
		byUuid: map[string]*model.Nudge{
			"N_open":   {Uuid: "N_open", UserId: "U1", Status: nudge_status_enum.PENDING},
			"N_closed": {Uuid: "N_closed", UserId: "U1", Status: nudge_status_enum.COMPLETED},
		},
	}
	svc := newTestNudgeService(&fakeUserRepo{}, &fakeContactRepo{}, nudgeRepo)
	future := time.Now().Add(24 * time.Hour).Format(time.RFC3339)

	t.Run("正常推迟", func(t *testing.T) {
		err := svc.SnoozeNudge(request.SnoozeNudgeRequest{UserId: "U1", NudgeId: "N_open", SnoozedUntil: future})
		if err != nil {
			t.Fatalf("SnoozeNudge() error = %v", err)
		}
		if nudgeRepo.statusWrites["N_open"] != nudge_status_enum.SNOOZED {
			t.Errorf("status = %d, want SNOOZED", nudgeRepo.statusWrites["N_open"])
		}
	})

	t.Run("推迟时间必须在将来", func(t *testing.T) {
		past := time.Now().Add(-time.Hour).Format(time.RFC3339)
		err := svc.SnoozeNudge(request.SnoozeNudgeRequest{UserId: "U1", NudgeId: "N_open", SnoozedUntil: past})
		if errorx.GetCode(err) != errorx.CodeInvalidParam {
			t.Errorf("error code = %d, want %d", errorx.GetCode(err), errorx.CodeInvalidParam)
		}
	})

	t.Run("时间格式非法", func(t *testing.T) {
		err := svc.SnoozeNudge(request.SnoozeNudgeRequest{UserId: "U1", NudgeId: "N_open", SnoozedUntil: "明天"})
		if errorx.GetCode(err) != errorx.CodeInvalidParam {
			t.Errorf("error code = %d, want %d", errorx.GetCode(err), errorx.CodeInvalidParam)
		}
	})

	t.Run("他人的提醒无权操作", func(t *testing.T) {
		err := svc.SnoozeNudge(request.SnoozeNudgeRequest{UserId: "U2", NudgeId: "N_open", SnoozedUntil: future})
		if errorx.GetCode(err) != errorx.CodeUnauthorized {
			t.Errorf("error code = %d, want %d", errorx.GetCode(err), errorx.CodeUnauthorized)
		}
	})

	t.Run("已关闭的提醒不能推迟", func(t *testing.T) {
		err := svc.SnoozeNudge(request.SnoozeNudgeRequest{UserId: "U1", NudgeId: "N_closed", SnoozedUntil: future})
		if errorx.GetCode(err) != errorx.CodeInvalidParam {
			t.Errorf("error code = %d, want %d", errorx.GetCode(err), errorx.CodeInvalidParam)
		}
	})
}

func TestCloseNudge(t *testing.T) {
	nudgeRepo := &fakeNudgeRepo{
		byUuid: map[string]*model.Nudge{
			"N_dismiss":  {Uuid: "N_dismiss", UserId: "U1", Status: nudge_status_enum.PENDING},
			"N_complete": {Uuid: "N_complete", UserId: "U1", Status: nudge_status_enum.SNOOZED},
		},
	}
	svc := newTestNudgeService(&fakeUserRepo{}, &fakeContactRepo{}, nudgeRepo)

	if err := svc.DismissNudge(request.NudgeActionRequest{UserId: "U1", NudgeId: "N_dismiss"}); err != nil {
		t.Fatalf("DismissNudge() error = %v", err)
	}
	if nudgeRepo.statusWrites["N_dismiss"] != nudge_status_enum.DISMISSED {
		t.Errorf("status = %d, want DISMISSED", nudgeRepo.statusWrites["N_dismiss"])
	}

	if err := svc.CompleteNudge(request.NudgeActionRequest{UserId: "U1", NudgeId: "N_complete"}); err != nil {
		t.Fatalf("CompleteNudge() error = %v", err)
	}
	if nudgeRepo.statusWrites["N_complete"] != nudge_status_enum.COMPLETED {
		t.Errorf("status = %d, want COMPLETED", nudgeRepo.statusWrites["N_complete"])
	}
}

package interaction

import (
	"context"
	"testing"
	"time"

	"warmline_server/internal/dao/mysql/repository"
	"warmline_server/internal/dto/request"
	"warmline_server/internal/model"
	"warmline_server/pkg/enum/interaction/direction_enum"
	"warmline_server/pkg/enum/interaction/interaction_type_enum"
	"warmline_server/pkg/errorx"
)

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
	contacts map[string]*model.Contact
}

func (f *fakeContactRepo) FindByUuid(uuid string) (*model.Contact, error) {
	if c, ok := f.contacts[uuid]; ok {
		return c, nil
	}
	return nil, errorx.New(errorx.CodeNotFound, "联系人不存在")
}

func newTestInteractionService(contacts map[string]*model.Contact) *interactionService {
	return &interactionService{
		repos: &repository.Repositories{Contact: &fakeContactRepo{contacts: contacts}},
		cache: noopCache{},
	}
}

func TestLogInteractionValidation(t *testing.T) {
	contacts := map[string]*model.Contact{
		"C1":       {Uuid: "C1", UserId: "U1"},
		"C_locked": {Uuid: "C_locked", UserId: "U1", IsArchived: 1},
	}
	svc := newTestInteractionService(contacts)

	tests := []struct {
		name     string
		req      request.LogInteractionRequest
		wantCode int
	}{
		{
			name: "非法互动类型",
			req: request.LogInteractionRequest{
				UserId: "U1", ContactId: "C1",
				Type: 99, Direction: direction_enum.OUTBOUND,
			},
			wantCode: errorx.CodeInvalidParam,
		},
		{
			name: "非法互动方向",
			req: request.LogInteractionRequest{
				UserId: "U1", ContactId: "C1",
				Type: interaction_type_enum.MESSAGE, Direction: 99,
			},
			wantCode: errorx.CodeInvalidParam,
		},
		{
			name: "联系人不存在",
			req: request.LogInteractionRequest{
				UserId: "U1", ContactId: "C_missing",
				Type: interaction_type_enum.MESSAGE, Direction: direction_enum.OUTBOUND,
			},
			wantCode: errorx.CodeNotFound,
		},
		{
			name: "非本人联系人",
			req: request.LogInteractionRequest{
				UserId: "U_other", ContactId: "C1",
				Type: interaction_type_enum.MESSAGE, Direction: direction_enum.OUTBOUND,
			},
			wantCode: errorx.CodeUnauthorized,
		},
		{
			name: "联系人已归档",
			req: request.LogInteractionRequest{
				UserId: "U1", ContactId: "C_locked",
				Type: interaction_type_enum.MESSAGE, Direction: direction_enum.OUTBOUND,
			},
			wantCode: errorx.CodeContactArchived,
		},
		{
			name: "互动时间格式错误",
			req: request.LogInteractionRequest{
				UserId: "U1", ContactId: "C1",
				Type: interaction_type_enum.MESSAGE, Direction: direction_enum.OUTBOUND,
				OccurredAt: "2026-08-30 10:00:00",
			},
			wantCode: errorx.CodeInvalidParam,
		},
		{
			name: "互动时间在将来",
			req: request.LogInteractionRequest{
				UserId: "U1", ContactId: "C1",
				Type: interaction_type_enum.MESSAGE, Direction: direction_enum.OUTBOUND,
				OccurredAt: time.Now().Add(48 * time.Hour).Format(time.RFC3339),
			},
			wantCode: errorx.CodeInvalidParam,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.LogInteraction(tt.req)
			if errorx.GetCode(err) != tt.wantCode {
				t.Errorf("LogInteraction() code = %d, want %d", errorx.GetCode(err), tt.wantCode)
			}
		})
	}
}

func TestGetRecentInteractionsDefaultWindow(t *testing.T) {
	var gotSince time.Time
	interactionRepo := &fakeInteractionRepo{onFind: func(contactId string, since time.Time) {
		gotSince = since
	}}
	svc := &interactionService{
		repos: &repository.Repositories{Interaction: interactionRepo},
		cache: noopCache{},
	}

	list, err := svc.GetRecentInteractions(request.GetRecentInteractionsRequest{ContactId: "C1"})
	if err != nil {
		t.Fatalf("GetRecentInteractions() error = %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("len(list) = %d, want 1", len(list))
	}
	if list[0].Topics[0] != "golang" {
		t.Errorf("topics = %v, want [golang]", list[0].Topics)
	}

	wantSince := time.Now().AddDate(0, 0, -30)
	if diff := gotSince.Sub(wantSince); diff < -time.Minute || diff > time.Minute {
		t.Errorf("since = %v, want about %v", gotSince, wantSince)
	}
}

type fakeInteractionRepo struct {
	repository.InteractionRepository
	onFind func(contactId string, since time.Time)
}

func (f *fakeInteractionRepo) FindByContactIdSince(contactId string, since time.Time) ([]model.Interaction, error) {
	if f.onFind != nil {
		f.onFind(contactId, since)
	}
	return []model.Interaction{{
		Uuid:       "I1",
		ContactId:  contactId,
		Type:       interaction_type_enum.CALL,
		Direction:  direction_enum.MUTUAL,
		OccurredAt: time.Now().AddDate(0, 0, -3),
		Topics:     `["golang"]`,
	}}, nil
}

package repository

import (
	"time"

	"gorm.io/gorm"

	"warmline_server/internal/model"
	"warmline_server/pkg/enum/interaction/direction_enum"
)

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository 创建联系人 Repository
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

// FindByUuid 根据 UUID 查找联系人
func (r *contactRepository) FindByUuid(uuid string) (*model.Contact, error) {
	var contact model.Contact
	if err := r.db.Where("uuid = ?", uuid).First(&contact).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询联系人 uuid=%s", uuid)
	}
	return &contact, nil
}

// FindByUserId 查找用户的全部联系人（含已归档）
func (r *contactRepository) FindByUserId(userId string) ([]model.Contact, error) {
	var contacts []model.Contact
	if err := r.db.Where("user_id = ?", userId).
		Order("last_interaction_at DESC").Find(&contacts).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询联系人列表 user_id=%s", userId)
	}
	return contacts, nil
}

// FindActiveByUserId 查找用户的未归档联系人
func (r *contactRepository) FindActiveByUserId(userId string) ([]model.Contact, error) {
	var contacts []model.Contact
	if err := r.db.Where("user_id = ? AND is_archived = ?", userId, 0).
		Find(&contacts).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询未归档联系人 user_id=%s", userId)
	}
	return contacts, nil
}

// FindColdByUserId 查找温度状态在给定集合内的未归档联系人
// 排序规则与提醒生成的选取规则一致：优先级高者先出，同优先级分数低者先出
func (r *contactRepository) FindColdByUserId(userId string, statuses []int8, limit int) ([]model.Contact, error) {
	var contacts []model.Contact
	query := r.db.Where("user_id = ? AND is_archived = ? AND warmth_status IN ?", userId, 0, statuses).
		Order("priority DESC").Order("warmth_score ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&contacts).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询降温联系人 user_id=%s", userId)
	}
	return contacts, nil
}

// FindWithBirthdayByUserId 查找设置了生日的未归档联系人
func (r *contactRepository) FindWithBirthdayByUserId(userId string) ([]model.Contact, error) {
	var contacts []model.Contact
	if err := r.db.Where("user_id = ? AND is_archived = ? AND birthday IS NOT NULL", userId, 0).
		Find(&contacts).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询有生日联系人 user_id=%s", userId)
	}
	return contacts, nil
}

// Create 创建联系人
func (r *contactRepository) Create(contact *model.Contact) error {
	if err := r.db.Create(contact).Error; err != nil {
		return wrapDBError(err, "创建联系人")
	}
	return nil
}

// CreateBatch 批量创建联系人
// 分批写入，避免导入大名单时单条 SQL 过长
func (r *contactRepository) CreateBatch(contacts []model.Contact) error {
	if len(contacts) == 0 {
		return nil
	}
	if err := r.db.CreateInBatches(contacts, 100).Error; err != nil {
		return wrapDBError(err, "批量创建联系人")
	}
	return nil
}

// UpdateFields 按字段更新联系人资料
func (r *contactRepository) UpdateFields(uuid string, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	if err := r.db.Model(&model.Contact{}).Where("uuid = ?", uuid).Updates(updates).Error; err != nil {
		return wrapDBErrorf(err, "更新联系人 uuid=%s", uuid)
	}
	return nil
}

// UpdateWarmth 写回温度分数与状态
// 分数和状态永远成对写入，保证两者不发散
func (r *contactRepository) UpdateWarmth(uuid string, score float64, status int8) error {
	if err := r.db.Model(&model.Contact{}).Where("uuid = ?", uuid).
		Updates(map[string]interface{}{
			"warmth_score":  score,
			"warmth_status": status,
		}).Error; err != nil {
		return wrapDBErrorf(err, "写回温度 uuid=%s", uuid)
	}
	return nil
}

// TouchInteraction 互动路径写回：温度 + 最近互动时间戳
func (r *contactRepository) TouchInteraction(uuid string, score float64, status int8, direction int8, occurredAt time.Time) error {
	updates := map[string]interface{}{
		"warmth_score":        score,
		"warmth_status":       status,
		"last_interaction_at": occurredAt,
	}
	switch direction {
	case direction_enum.OUTBOUND:
		updates["last_outbound_at"] = occurredAt
	case direction_enum.INBOUND:
		updates["last_inbound_at"] = occurredAt
	case direction_enum.MUTUAL:
		updates["last_outbound_at"] = occurredAt
		updates["last_inbound_at"] = occurredAt
	}
	if err := r.db.Model(&model.Contact{}).Where("uuid = ?", uuid).Updates(updates).Error; err != nil {
		return wrapDBErrorf(err, "互动写回 uuid=%s", uuid)
	}
	return nil
}

// Archive 归档联系人
func (r *contactRepository) Archive(userId, contactId string) error {
	if err := r.db.Model(&model.Contact{}).
		Where("user_id = ? AND uuid = ?", userId, contactId).
		Update("is_archived", 1).Error; err != nil {
		return wrapDBErrorf(err, "归档联系人 uuid=%s", contactId)
	}
	return nil
}

// statusCount 按状态统计的扫描结构
type statusCount struct {
	WarmthStatus int8
	Cnt          int64
}

// CountByStatus 按温度状态统计未归档联系人数量
func (r *contactRepository) CountByStatus(userId string) (map[int8]int64, error) {
	var rows []statusCount
	if err := r.db.Model(&model.Contact{}).
		Select("warmth_status, COUNT(*) AS cnt").
		Where("user_id = ? AND is_archived = ?", userId, 0).
		Group("warmth_status").Scan(&rows).Error; err != nil {
		return nil, wrapDBErrorf(err, "统计联系人状态 user_id=%s", userId)
	}
	result := make(map[int8]int64, len(rows))
	for _, row := range rows {
		result[row.WarmthStatus] = row.Cnt
	}
	return result, nil
}

// AverageScore 未归档联系人的平均温度分数
func (r *contactRepository) AverageScore(userId string) (float64, error) {
	var avg *float64
	if err := r.db.Model(&model.Contact{}).
		Select("AVG(warmth_score)").
		Where("user_id = ? AND is_archived = ?", userId, 0).
		Scan(&avg).Error; err != nil {
		return 0, wrapDBErrorf(err, "统计平均温度 user_id=%s", userId)
	}
	if avg == nil { // 没有联系人时 AVG 为 NULL
		return 0, nil
	}
	return *avg, nil
}

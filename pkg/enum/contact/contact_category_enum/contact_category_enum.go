// Package contact_category_enum 定义联系人分类枚举
package contact_category_enum

const (
	FAMILY  int8 = 0 // 家人
	FRIEND  int8 = 1 // 朋友
	WORK    int8 = 2 // 同事
	NETWORK int8 = 3 // 人脉
	OTHER   int8 = 4 // 其他
)

// IsValid 校验分类取值是否合法
func IsValid(category int8) bool {
	return category >= FAMILY && category <= OTHER
}

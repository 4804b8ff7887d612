// Package router 提供 HTTP 路由注册
// 本文件定义联系人相关的路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterContactRoutes 注册联系人相关路由（需要认证）
// 包括联系人档案的增改、归档、批量导入和查询
func (rt *Router) RegisterContactRoutes(rg *gin.RouterGroup) {
	contactGroup := rg.Group("/contact")
	{
		// ===== 档案管理 =====
		contactGroup.POST("/createContact", rt.handlers.Contact.CreateContact)   // 新建联系人
		contactGroup.POST("/importContacts", rt.handlers.Contact.ImportContacts) // 批量导入联系人
		contactGroup.POST("/updateContact", rt.handlers.Contact.UpdateContact)   // 更新联系人档案
		contactGroup.POST("/archiveContact", rt.handlers.Contact.ArchiveContact) // 归档联系人

		// ===== 查询 =====
		contactGroup.GET("/getContactList", rt.handlers.Contact.GetContactList) // 获取联系人列表
		contactGroup.GET("/getContactInfo", rt.handlers.Contact.GetContactInfo) // 获取联系人详情
	}
}

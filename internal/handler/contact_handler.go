package handler

import (
	"github.com/gin-gonic/gin"

	"warmline_server/internal/dto/request"
	"warmline_server/internal/service"
)

// ContactHandler 联系人请求处理器
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler 构造函数
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// CreateContact 创建联系人
// POST /contact/createContact
// 请求体: request.CreateContactRequest
func (h *ContactHandler) CreateContact(c *gin.Context) {
	var req request.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	contactId, err := h.contactService.CreateContact(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"contact_id": contactId})
}

// ImportContacts 批量导入联系人
// POST /contact/importContacts
// 请求体: request.ImportContactsRequest
func (h *ContactHandler) ImportContacts(c *gin.Context) {
	var req request.ImportContactsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	imported, err := h.contactService.ImportContacts(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"imported": imported})
}

// UpdateContact 更新联系人资料
// POST /contact/updateContact
// 请求体: request.UpdateContactRequest
func (h *ContactHandler) UpdateContact(c *gin.Context) {
	var req request.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.contactService.UpdateContact(req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// ArchiveContact 归档联系人
// POST /contact/archiveContact
// 请求体: request.ArchiveContactRequest
func (h *ContactHandler) ArchiveContact(c *gin.Context) {
	var req request.ArchiveContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.contactService.ArchiveContact(req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetContactList 获取联系人列表
// GET /contact/getContactList?userId=xxx
func (h *ContactHandler) GetContactList(c *gin.Context) {
	var req request.OwnListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	list, err := h.contactService.GetContactList(req.UserId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, list)
}

// GetContactInfo 获取联系人详情
// GET /contact/getContactInfo?contactId=xxx
func (h *ContactHandler) GetContactInfo(c *gin.Context) {
	var req request.GetContactInfoRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	rsp, err := h.contactService.GetContactInfo(req.ContactId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, rsp)
}
